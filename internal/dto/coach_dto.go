package dto

import "pageant-coach-be/pkg/refiner"

// RefineAnswerRequest is the payload for one full coaching run.
type RefineAnswerRequest struct {
	Question    string `json:"question" validate:"required"`
	RawAnswer   string `json:"raw_answer" validate:"required"`
	TimeLimit   int    `json:"time_limit" validate:"omitempty,oneof=20 30 40"`
	StylePreset string `json:"style_preset" validate:"omitempty,oneof=structured_narrative values_shared_agency"`
	InputMode   string `json:"input_mode" validate:"omitempty,oneof=text voice"`
	PersonaID   string `json:"persona_id" validate:"omitempty"`
	QuestionID  string `json:"question_id" validate:"omitempty"`
}

// RefineAnswerResponse returns the full pipeline output. Critique and
// analysis are included so a frontend can show the working, not just
// the results.
type RefineAnswerResponse struct {
	Question         string                   `json:"question"`
	QuestionAnalysis string                   `json:"question_analysis"`
	DraftAnswer      string                   `json:"draft_answer"`
	Critique         string                   `json:"critique"`
	RefinedAnswer    string                   `json:"refined_answer"`
	CoachReport      string                   `json:"coach_report"`
	ExemplarAnswer   string                   `json:"exemplar_answer"`
	CriticScores     *refiner.StructuredScore `json:"critic_scores,omitempty"`
	ExemplarRef      *refiner.ExemplarRef     `json:"exemplar_ref,omitempty"`
	Iterations       int                      `json:"iterations"`
	TimeLimit        int                      `json:"time_limit"`
	StylePreset      string                   `json:"style_preset"`
}
