package rubric

// Dimension is a single scoring dimension. Order is prompt-significant
// and must be preserved as loaded.
type Dimension struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// CapRule caps the overall score when one dimension scores too low.
type CapRule struct {
	IfDimension    string  `json:"if_dimension"`
	Below          float64 `json:"below"`
	ThenMaxOverall float64 `json:"then_max_overall"`
}

// Rubric is an immutable scoring definition loaded fresh per critic pass.
type Rubric struct {
	PageantName        string      `json:"pageant"`
	Version            string      `json:"version"`
	Dimensions         []Dimension `json:"dimensions"`
	CapRules           []CapRule   `json:"cap_rules"`
	GenericnessSignals []string    `json:"genericness_signals"`
}
