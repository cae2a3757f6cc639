package ai

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/magician360/opportunity-engine/internal/types"
)

const enhancePromptTemplate = `You are a business consultant specializing in Texas opportunities.

Based on this business idea: %q

Category: %s

Please enhance this idea by adding:
1. Specific Texas market advantages
2. Potential challenges and solutions
3. Estimated startup requirements
4. Target customer demographics in Texas

Provide a detailed, actionable enhancement to this business idea.`

const conceptReviewPromptTemplate = `You are a business validation expert. Analyze this business concept and provide a feasibility score (0-100) and constructive feedback.

Business Name: %s
Type: %s
Goals: %s
Target Market: %s
Budget: %s

Provide:
1. Feasibility score (0-100)
2. Key strengths
3. Potential risks
4. Recommendations for improvement`

// firstNumber grabs the first integer in a response, taken as the
// model's self-reported score.
var firstNumber = regexp.MustCompile(`\d+`)

// fallbackConceptScore is assumed when the model states no number.
const fallbackConceptScore = 70

// ConceptReview is the model's judgment of a business concept.
type ConceptReview struct {
	Score    int
	Feedback string
}

// EnhanceIdea asks the provider to elaborate a base idea with Texas
// market specifics. On provider failure the mock text comes back, so
// the result is always displayable.
func (s *Service) EnhanceIdea(ctx context.Context, baseIdea string, category types.Category) string {
	resp := s.Generate(ctx, Request{
		Prompt:      fmt.Sprintf(enhancePromptTemplate, baseIdea, category),
		Category:    string(category),
		Temperature: 0.7,
		MaxTokens:   300,
	})
	return resp.Text
}

// ValidateBusinessConcept asks the provider for a scored review of the
// submission. The score is the first number in the response, clamped
// to [0,100], defaulting when the model gives none.
func (s *Service) ValidateBusinessConcept(ctx context.Context, data types.ValidationFormData) ConceptReview {
	resp := s.Generate(ctx, Request{
		Prompt: fmt.Sprintf(conceptReviewPromptTemplate,
			data.BusinessName, data.BusinessType, data.BusinessGoals,
			data.TargetMarket, data.EstimatedBudget),
		Temperature: 0.5,
		MaxTokens:   400,
	})

	score := fallbackConceptScore
	if match := firstNumber.FindString(resp.Text); match != "" {
		if n, err := strconv.Atoi(match); err == nil {
			score = n
		}
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return ConceptReview{Score: score, Feedback: resp.Text}
}
