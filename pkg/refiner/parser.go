package refiner

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStructuredScore attempts to decode a critic response as a
// StructuredScore. It tolerates a markdown code-fence wrapper and
// near-JSON artifacts (trailing commas, single quotes) via repair.
// Any decode or validation failure returns nil, an expected outcome
// the caller handles by falling back to text-pattern scoring.
func ParseStructuredScore(raw string) *StructuredScore {
	content := stripCodeFence(raw)
	content = extractJSON(content)
	if content == "" {
		return nil
	}

	var score StructuredScore
	if err := json.Unmarshal([]byte(content), &score); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return nil
		}
		if err := json.Unmarshal([]byte(repaired), &score); err != nil {
			return nil
		}
	}

	if !score.valid() {
		return nil
	}
	if score.OverallScore == 0 && len(score.DimensionScores) == 0 {
		// Decoded an unrelated object
		return nil
	}
	return &score
}

// stripCodeFence removes a leading/trailing fenced code block wrapper,
// a common generation artifact (```json ... ```).
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx != -1 {
		// Drop the language tag line ("json", "JSON", or empty)
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.LastIndex(trimmed, "```"); idx != -1 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

// extractJSON isolates the outermost JSON object from surrounding prose.
func extractJSON(s string) string {
	startIdx := strings.Index(s, "{")
	endIdx := strings.LastIndex(s, "}")
	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}
	return s[startIdx : endIdx+1]
}
