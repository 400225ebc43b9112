package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationFromMap(t *testing.T) {
	analysis := map[string]interface{}{
		"overall_score": 7.2,
		"detailed_feedback": map[string]interface{}{
			"creativity": map[string]interface{}{
				"score":        8,
				"feedback":     "original framing",
				"strengths":    "lateral thinking",
				"improvements": "quantify ideas",
			},
		},
		"summary":   "recommend: maybe",
		"red_flags": "none",
	}

	result, err := EvaluationFromMap(analysis)

	require.NoError(t, err)
	assert.Equal(t, 7.2, result.OverallScore)
	assert.Equal(t, "recommend: maybe", result.Summary)
	assert.Equal(t, "none", result.RedFlags)

	fb, ok := result.DetailedFeedback[CriterionCreativity]
	require.True(t, ok)
	assert.Equal(t, float64(8), fb.Score)
	assert.Equal(t, "original framing", fb.Feedback)
}

func TestEvaluationFromMap_MissingCriteriaTolerated(t *testing.T) {
	// Presence of the five criteria is a best-effort expectation
	result, err := EvaluationFromMap(map[string]interface{}{
		"overall_score": 3.0,
		"summary":       "no",
	})

	require.NoError(t, err)
	assert.Equal(t, 3.0, result.OverallScore)
	assert.Empty(t, result.DetailedFeedback)
}

func TestEvaluationCriteria_FixedSet(t *testing.T) {
	assert.Equal(t, []string{
		"problem_structuring",
		"quantitative_analysis",
		"business_judgment",
		"communication_clarity",
		"creativity",
	}, EvaluationCriteria)
}

func TestCallEnded(t *testing.T) {
	assert.True(t, (&Call{Status: CallStatusEnded}).Ended())
	assert.False(t, (&Call{Status: CallStatusInProgress}).Ended())
}
