package refiner

import (
	"regexp"
	"strconv"
)

// MaxIterations is the hard cap on critic passes per run. This is the
// pipeline's only resource-control guarantee.
const MaxIterations = 2

// reloopThreshold: answers scoring below this go back to the critic.
const reloopThreshold = 5.0

// overallScorePattern extracts an overall score from free critique text.
// Tolerates markdown emphasis around the label. Best-effort only: this
// is brittle to generation-format drift and must not be relied on to
// catch low scores in all phrasings.
var overallScorePattern = regexp.MustCompile(`(?i)\*{0,2}overall score\*{0,2}[:\s]*([0-9]+(?:\.[0-9]+)?)`)

// decideAfterRewrite is the branch point after the rewrite stage:
// loop back to the critic or proceed to the coach report.
//
// Policy, in priority order:
//  1. iteration cap reached            -> coach_report (always bounded)
//  2. structured score present         -> critic iff overall < 5.0
//  3. numeric score found in raw text  -> critic iff < 5.0
//  4. nothing extractable              -> coach_report
func decideAfterRewrite(st *State) Stage {
	if st.IterationCount >= MaxIterations {
		return StageCoachReport
	}

	if st.CriticScores != nil {
		if st.CriticScores.OverallScore < reloopThreshold {
			return StageCritic
		}
		return StageCoachReport
	}

	if score, ok := extractTextScore(st.Critique); ok && score < reloopThreshold {
		return StageCritic
	}
	return StageCoachReport
}

// extractTextScore pulls a numeric overall score out of critique prose.
func extractTextScore(critique string) (float64, bool) {
	m := overallScorePattern.FindStringSubmatch(critique)
	if m == nil {
		return 0, false
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return score, true
}
