package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magician360/opportunity-engine/internal/types"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "test"}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"age": 30}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "test"}`)

	err := ValidateJSON(filepath.Join(dir, "missing_schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing_doc.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", "{ invalid json }")

	assert.Error(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSONString_MatchResultSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/match_result.schema.json")
	require.NotEmpty(t, schemaPath, "match_result schema should be resolvable from the package directory")
	schemaContent, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	result := types.MatchResult{
		Opportunity: types.Opportunity{
			ID:       "biz-test",
			Category: types.CategoryBusinesses,
			Title:    "Mobile Food Truck",
			Region:   types.RegionSanAntonio,
			Skills:   []string{"Cooking"},
		},
		MatchProbability: 72,
		Resources:        []string{"SBA Office: San Antonio District Office"},
	}
	doc, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONString(string(schemaContent), string(doc)))
}

func TestValidateJSONString_MatchResultSchemaRejectsOutOfRangeProbability(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/match_result.schema.json")
	require.NotEmpty(t, schemaPath)
	schemaContent, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	doc := `{
		"opportunity": {
			"id": "biz-test",
			"category": "businesses",
			"title": "Mobile Food Truck",
			"description": "",
			"region": "san-antonio",
			"skills": ["Cooking"]
		},
		"match_probability": 150,
		"resources": []
	}`

	err = ValidateJSONString(string(schemaContent), doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_FeasibilityResultSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/feasibility_result.schema.json")
	require.NotEmpty(t, schemaPath)
	schemaContent, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	result := types.FeasibilityResult{
		Score:          65,
		Factors:        []string{"Completeness: 100%"},
		Recommendation: "Moderate feasibility",
	}
	doc, err := json.Marshal(result)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONString(string(schemaContent), string(doc)))
}

func TestValidateJSONString_ValidationReportSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/validation_report.schema.json")
	require.NotEmpty(t, schemaPath)
	schemaContent, err := os.ReadFile(schemaPath)
	require.NoError(t, err)

	resp := types.ReportResponse{
		ReportID:         "3f1c8a7e-0000-0000-0000-000000000000",
		Report:           "STATE GRANT PROGRAM APPLICATION JUSTIFICATION\n...",
		FeasibilityScore: 55,
	}
	doc, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.NoError(t, ValidateJSONString(string(schemaContent), string(doc)))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "match_probability", Message: "must be <= 100"},
			{Field: "resources", Message: "is required"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "match_probability")
	assert.Contains(t, errorMsg, "resources")
}
