package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdeaRequest_Validate_RequiresCategory(t *testing.T) {
	req := &IdeaRequest{}
	assert.Error(t, req.Validate())

	req.Category = "jobs"
	assert.NoError(t, req.Validate())
}

func TestMatchRequest_Validate_RequiresCategory(t *testing.T) {
	req := &MatchRequest{}
	assert.Error(t, req.Validate())

	req.Category = "businesses"
	assert.NoError(t, req.Validate())
}

func TestMatchRequest_Validate_CircumstancesOptional(t *testing.T) {
	req := &MatchRequest{Category: "jobs"}
	assert.NoError(t, req.Validate())

	req.Circumstances = &UserCircumstances{IsVeteran: true}
	assert.NoError(t, req.Validate())
}
