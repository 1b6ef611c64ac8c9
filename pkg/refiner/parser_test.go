package refiner

import (
	"testing"
)

func TestParseStructuredScore(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantNil     bool
		wantOverall float64
	}{
		{
			name:        "clean json",
			raw:         `{"overall_score": 7.5, "dimension_scores": [{"name": "Directness & Clarity", "score": 8, "reason": "answers immediately"}]}`,
			wantOverall: 7.5,
		},
		{
			name: "fenced json block after prose",
			raw: "The answer is solid but generic in places.\n\n```json\n" +
				`{"overall_score": 6.0, "dimension_scores": [{"name": "Structure & Flow", "score": 6, "reason": "ok"}]}` +
				"\n```",
			wantOverall: 6.0,
		},
		{
			name:        "fence without language tag",
			raw:         "```\n{\"overall_score\": 4.5, \"dimension_scores\": []}\n```",
			wantOverall: 4.5,
		},
		{
			name:        "trailing comma repaired",
			raw:         `{"overall_score": 8.0, "dimension_scores": [{"name": "Closing Strength", "score": 9, "reason": "quotable"},],}`,
			wantOverall: 8.0,
		},
		{
			name:    "no json at all",
			raw:     "Overall score: 7.5. Good directness, weak close.",
			wantNil: true,
		},
		{
			name:    "overall score out of range",
			raw:     `{"overall_score": 12.0, "dimension_scores": []}`,
			wantNil: true,
		},
		{
			name:    "dimension score out of range",
			raw:     `{"overall_score": 7.0, "dimension_scores": [{"name": "x", "score": -1, "reason": ""}]}`,
			wantNil: true,
		},
		{
			name:    "unrelated json object",
			raw:     `{"message": "done", "status": "ok"}`,
			wantNil: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantNil: true,
		},
		{
			name:        "zero overall with dimensions present",
			raw:         `{"overall_score": 0, "dimension_scores": [{"name": "Directness & Clarity", "score": 0, "reason": "dodged the question"}]}`,
			wantOverall: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStructuredScore(tt.raw)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a score, got nil")
			}
			if got.OverallScore != tt.wantOverall {
				t.Errorf("overall = %v, want %v", got.OverallScore, tt.wantOverall)
			}
		})
	}
}

func TestParseStructuredScoreFullPayload(t *testing.T) {
	raw := "Strong draft overall.\n```json\n" + `{
  "overall_score": 7.8,
  "dimension_scores": [
    {"name": "Directness & Clarity", "score": 9, "reason": "first sentence answers"},
    {"name": "Authenticity & Specificity", "score": 6, "reason": "anchor is thin"}
  ],
  "time_fit_estimate_words": 72,
  "top_fixes": [
    {"type": "add_anchor", "target": "Authenticity & Specificity", "instruction": "name the actual program"},
    {"type": "strengthen_close", "target": "Closing Strength", "instruction": "end on the vision line"},
    {"type": "rewrite_sentence", "target": "sentence 3", "instruction": "cut the filler opener"}
  ],
  "genericness_flags": ["be the change"],
  "risk_flags": []
}` + "\n```"

	got := ParseStructuredScore(raw)
	if got == nil {
		t.Fatal("expected a score, got nil")
	}
	if len(got.DimensionScores) != 2 {
		t.Errorf("dimension count = %d, want 2", len(got.DimensionScores))
	}
	if got.TimeFitEstimateWords != 72 {
		t.Errorf("time fit = %d, want 72", got.TimeFitEstimateWords)
	}
	if len(got.TopFixes) != 3 {
		t.Errorf("fixes = %d, want 3", len(got.TopFixes))
	}
	if len(got.GenericnessFlags) != 1 || got.GenericnessFlags[0] != "be the change" {
		t.Errorf("genericness flags = %v", got.GenericnessFlags)
	}
}
