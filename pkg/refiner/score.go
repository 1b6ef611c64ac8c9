package refiner

// DimensionScore is the critic's score for a single rubric dimension.
// Order follows the rubric dimension order.
type DimensionScore struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Fix is one concrete, actionable edit suggested by the critic.
type Fix struct {
	Type        string `json:"type"`   // e.g. "rewrite_sentence", "add_anchor", "strengthen_close"
	Target      string `json:"target"` // which dimension or part of the answer this addresses
	Instruction string `json:"instruction"`
}

// StructuredScore is the critic's fixed-schema output. The generator is
// asked to make OverallScore the weighted mean of the dimension scores;
// the parser validates ranges but does not re-verify that consistency.
type StructuredScore struct {
	OverallScore         float64          `json:"overall_score"`
	DimensionScores      []DimensionScore `json:"dimension_scores"`
	TimeFitEstimateWords int              `json:"time_fit_estimate_words"`
	TopFixes             []Fix            `json:"top_fixes"`
	GenericnessFlags     []string         `json:"genericness_flags"`
	RiskFlags            []string         `json:"risk_flags"`
}

// valid checks field ranges. A structurally-valid-but-out-of-range
// payload is treated the same as a parse failure.
func (s *StructuredScore) valid() bool {
	if s.OverallScore < 0 || s.OverallScore > 10 {
		return false
	}
	for _, d := range s.DimensionScores {
		if d.Score < 0 || d.Score > 10 {
			return false
		}
	}
	return true
}
