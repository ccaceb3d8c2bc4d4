package evaluate

// RiskLevel is the coarse classification of an evaluation. Levels are ordered
// low < medium < high.
type RiskLevel string

const (
	LevelLow    RiskLevel = "low"
	LevelMedium RiskLevel = "medium"
	LevelHigh   RiskLevel = "high"
)

// Rank returns the position of l in the ordering low < medium < high, or -1 for
// an unknown level.
func (l RiskLevel) Rank() int {
	switch l {
	case LevelLow:
		return 0
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	}
	return -1
}

// Valid reports whether l is one of the known levels.
func (l RiskLevel) Valid() bool {
	return l.Rank() >= 0
}

// IdentifiedRisk is one risk factor found in the instructions.
type IdentifiedRisk struct {
	Step string `json:"step"`
	Risk string `json:"risk"`
}

// EvaluationResult is the full report for one piece of instruction text.
type EvaluationResult struct {
	RiskLevel                RiskLevel        `json:"risk_level"`
	Confidence               float64          `json:"confidence"`
	RiskScore                int              `json:"risk_score"`
	IdentifiedRisks          []IdentifiedRisk `json:"identified_risks"`
	MissingSafeguards        []string         `json:"missing_safeguards"`
	MitigationConsiderations []string         `json:"mitigation_considerations"`
	RiskLevelExplanation     string           `json:"risk_level_explanation"`

	// Triggered lists the ids of the detectors that fired, in evaluation order.
	Triggered []string `json:"-"`
}
