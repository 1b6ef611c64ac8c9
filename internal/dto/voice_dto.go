package dto

type TranscriptionResponse struct {
	Text string `json:"text"`
}

type SynthesizeRequest struct {
	Text  string `json:"text" validate:"required"`
	Voice string `json:"voice" validate:"omitempty"`
}
