package dto

import "readiness-engine/internal/domain"

// QuestionOptionResponse is one selectable option with role-resolved text.
type QuestionOptionResponse struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// QuestionResponse is one question with role-resolved text.
type QuestionResponse struct {
	ID        string                   `json:"id"`
	Dimension domain.Dimension         `json:"dimension"`
	Title     string                   `json:"dimension_title"`
	Text      string                   `json:"text"`
	Options   []QuestionOptionResponse `json:"options"`
}

// QuestionsResponse is the full bank in assessment order.
type QuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// NewQuestionsResponse maps the question bank to its wire shape, resolving
// role-specific text variants.
func NewQuestionsResponse(questions []domain.QuizQuestion, role domain.Role) *QuestionsResponse {
	resp := &QuestionsResponse{Questions: make([]QuestionResponse, 0, len(questions))}
	for _, q := range questions {
		options := make([]QuestionOptionResponse, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, QuestionOptionResponse{
				Text:  opt.OptionText(role),
				Score: opt.Score,
			})
		}
		resp.Questions = append(resp.Questions, QuestionResponse{
			ID:        q.ID,
			Dimension: q.Dimension,
			Title:     domain.Dimensions[q.Dimension].Title,
			Text:      q.QuestionText(role),
			Options:   options,
		})
	}
	return resp
}

// ClientContext carries the environment attributes the fingerprint is built
// from. All fields are optional; an empty context still buckets.
type ClientContext struct {
	UserAgent      string `json:"user_agent"`
	Language       string `json:"language"`
	ScreenWidth    int    `json:"screen_width"`
	ScreenHeight   int    `json:"screen_height"`
	TimezoneOffset int    `json:"timezone_offset"`
}

// SubmitAssessmentRequest is the submission payload.
type SubmitAssessmentRequest struct {
	Answers map[string]int `json:"answers"`
	Email   string         `json:"email,omitempty"`
	Role    string         `json:"role,omitempty"`
	Client  ClientContext  `json:"client"`
}

// SubmitAssessmentResponse returns the scored result plus, when the sample
// allows it, the inline company comparison. Queued reports that persistence
// failed and the payload was parked for a later retry.
type SubmitAssessmentResponse struct {
	SubmissionID string                    `json:"submission_id,omitempty"`
	Result       domain.QuizResult         `json:"result"`
	Comparison   *domain.CompanyComparison `json:"comparison,omitempty"`
	Queued       bool                      `json:"queued,omitempty"`
}

// RollupResponse wraps a company rollup.
type RollupResponse struct {
	Rollup *domain.CompanyRollup `json:"rollup"`
}

// EligibleCompaniesResponse lists rollup-eligible domains.
type EligibleCompaniesResponse struct {
	Companies []domain.CompanyCount `json:"companies"`
}

// AdminStatsResponse wraps the admin-wide statistics.
type AdminStatsResponse struct {
	Stats *domain.AdminStats `json:"stats"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
