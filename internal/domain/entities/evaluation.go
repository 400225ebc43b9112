package entities

import "encoding/json"

// Evaluation criterion keys as they appear in the model's JSON reply
const (
	CriterionProblemStructuring   = "problem_structuring"
	CriterionQuantitativeAnalysis = "quantitative_analysis"
	CriterionBusinessJudgment     = "business_judgment"
	CriterionCommunicationClarity = "communication_clarity"
	CriterionCreativity           = "creativity"
)

// EvaluationCriteria lists the five fixed rubric criteria in rubric order.
// Presence in a reply is a best-effort expectation, not enforced anywhere.
var EvaluationCriteria = []string{
	CriterionProblemStructuring,
	CriterionQuantitativeAnalysis,
	CriterionBusinessJudgment,
	CriterionCommunicationClarity,
	CriterionCreativity,
}

// CriterionFeedback is the per-criterion record in an evaluation
type CriterionFeedback struct {
	Score        float64 `json:"score"`
	Feedback     string  `json:"feedback"`
	Strengths    string  `json:"strengths"`
	Improvements string  `json:"improvements"`
}

// EvaluationResult represents the structured output of one transcript analysis
type EvaluationResult struct {
	OverallScore     float64                      `json:"overall_score"`
	DetailedFeedback map[string]CriterionFeedback `json:"detailed_feedback"`
	Summary          string                       `json:"summary"`
	RedFlags         string                       `json:"red_flags,omitempty"`
}

// EvaluationFromMap decodes the raw analysis payload into a typed result for
// display. Decoding is best effort: unknown keys are dropped and no score
// range or criterion presence checks are made.
func EvaluationFromMap(analysis map[string]interface{}) (*EvaluationResult, error) {
	b, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}
	var result EvaluationResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
