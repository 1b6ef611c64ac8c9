package refiner

import "testing"

func TestDecideAfterRewrite(t *testing.T) {
	tests := []struct {
		name string
		st   State
		want Stage
	}{
		{
			name: "iteration cap reached",
			st: State{
				IterationCount: MaxIterations,
				CriticScores:   &StructuredScore{OverallScore: 2.0},
			},
			want: StageCoachReport,
		},
		{
			name: "structured score below threshold loops",
			st: State{
				IterationCount: 1,
				CriticScores:   &StructuredScore{OverallScore: 4.9},
			},
			want: StageCritic,
		},
		{
			name: "structured score at threshold proceeds",
			st: State{
				IterationCount: 1,
				CriticScores:   &StructuredScore{OverallScore: 5.0},
			},
			want: StageCoachReport,
		},
		{
			name: "structured score wins over text score",
			st: State{
				IterationCount: 1,
				CriticScores:   &StructuredScore{OverallScore: 8.0},
				Critique:       "Overall score: 2.0 — this needs work",
			},
			want: StageCoachReport,
		},
		{
			name: "text fallback below threshold loops",
			st: State{
				IterationCount: 1,
				Critique:       "Weak close. **Overall score**: 3.5",
			},
			want: StageCritic,
		},
		{
			name: "text fallback above threshold proceeds",
			st: State{
				IterationCount: 1,
				Critique:       "Overall score: 7",
			},
			want: StageCoachReport,
		},
		{
			name: "nothing extractable proceeds",
			st: State{
				IterationCount: 1,
				Critique:       "Solid answer with a memorable close.",
			},
			want: StageCoachReport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decideAfterRewrite(&tt.st); got != tt.want {
				t.Errorf("decideAfterRewrite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractTextScore(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{"plain label", "Overall score: 6.5", 6.5, true},
		{"bold label", "**Overall score**: 4", 4, true},
		{"case insensitive", "OVERALL SCORE 8.25", 8.25, true},
		{"no score", "great answer", 0, false},
		{"score without label", "I'd give this a 9", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractTextScore(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("extractTextScore(%q) = (%v, %v), want (%v, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNextStageTopology(t *testing.T) {
	st := &State{IterationCount: 1, CriticScores: &StructuredScore{OverallScore: 8}}

	transitions := map[Stage]Stage{
		StageQuestionUnderstanding: StageDrafting,
		StageDrafting:              StageCritic,
		StageCritic:                StageRewrite,
		StageRewrite:               StageCoachReport,
		StageCoachReport:           StageGenerateExemplar,
		StageGenerateExemplar:      StageDone,
	}

	for from, want := range transitions {
		if got := nextStage(from, st); got != want {
			t.Errorf("nextStage(%s) = %s, want %s", from, got, want)
		}
	}
}
