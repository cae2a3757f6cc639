package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/magician360/opportunity-engine/internal/catalog"
	"github.com/magician360/opportunity-engine/internal/matching"
	"github.com/magician360/opportunity-engine/internal/types"
)

// handleGenerateIdea returns a canned or templated idea for a category.
func (s *Server) handleGenerateIdea(w http.ResponseWriter, r *http.Request) {
	var req types.IdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Category == "" {
		err := &ErrCategoryRequired{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	category := types.Category(req.Category)
	var idea string
	if req.Templated {
		idea = s.templGen.Generate(category)
	} else {
		idea = s.listGen.Generate(category)
	}

	resp := types.IdeaResponse{
		Category: req.Category,
		Idea:     idea,
	}
	if req.Enhance {
		resp.Enhanced = s.aiService.EnhanceIdea(r.Context(), idea, category)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleMatch returns a personalized opportunity match.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Category == "" {
		err := &ErrCategoryRequired{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.matcher.Match(types.Category(req.Category), req.Circumstances)
	if err != nil {
		if errors.Is(err, matching.ErrEmptyCatalog) {
			s.errorResponse(w, HTTPStatus(&ErrCatalogEmpty{}), err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleValidate scores a submission and returns the factor breakdown.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req types.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.CalculateFeasibility(req.Form))
}

// handleGenerateReport scores a submission and renders its agency report.
func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req types.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reportID, result := s.reports.Generate(req.Form)
	s.jsonResponse(w, http.StatusOK, types.ReportResponse{
		ReportID:         reportID,
		Report:           result.Report,
		FeasibilityScore: result.FeasibilityScore,
	})
}

// handleListRegions returns every known Texas region.
func (s *Server) handleListRegions(w http.ResponseWriter, _ *http.Request) {
	regions := catalog.Regions()
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	s.jsonResponse(w, http.StatusOK, map[string]any{"regions": regions})
}

// handleRegionResources returns the support resources for one region.
func (s *Server) handleRegionResources(w http.ResponseWriter, r *http.Request) {
	region := types.TexasRegion(r.PathValue("region"))
	resources := catalog.RegionalResources(region)
	if resources == nil {
		err := &ErrRegionNotFound{Region: string(region)}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"region":    region,
		"resources": resources,
	})
}
