package server

import (
	"fmt"
	"net/http"
)

// ErrCategoryRequired indicates a request arrived without a category
type ErrCategoryRequired struct{}

func (e *ErrCategoryRequired) Error() string {
	return "category is required"
}

// ErrRegionNotFound indicates an unknown Texas region was requested
type ErrRegionNotFound struct {
	Region string
}

func (e *ErrRegionNotFound) Error() string {
	return fmt.Sprintf("region not found: %s", e.Region)
}

// ErrCatalogEmpty indicates matching had no catalog entries to draw from
type ErrCatalogEmpty struct{}

func (e *ErrCatalogEmpty) Error() string {
	return "no opportunity data available"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrCategoryRequired, *ErrValidation:
		return http.StatusBadRequest
	case *ErrRegionNotFound:
		return http.StatusNotFound
	case *ErrCatalogEmpty:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
