// Package evaluate scores free-text procedural instructions for the risk that a
// reader misunderstands them or is harmed by following them.
//
// Evaluation is rule based: a fixed, ordered battery of detectors runs over the
// lower-cased text, each triggered detector adds a weight to a risk score, and
// the score and risk count decide the level. The battery and the level catalog
// are loaded from an embedded YAML document. An Evaluator is immutable after
// construction and safe for concurrent use.
package evaluate

import (
	"fmt"
	"strings"
)

const (
	highScoreThreshold   = 6
	highCountThreshold   = 4
	mediumScoreThreshold = 3
	mediumCountThreshold = 2
)

// Evaluator runs a detector battery over instruction text.
type Evaluator struct {
	detectors []Detector
	catalog   *Catalog
}

// New builds an Evaluator from a rules document.
func New(raw []byte) (*Evaluator, error) {
	rf, err := parseRules(raw)
	if err != nil {
		return nil, err
	}
	if err := validateRules(rf); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	detectors := make([]Detector, len(rf.Detectors))
	copy(detectors, rf.Detectors)
	return &Evaluator{
		detectors: detectors,
		catalog:   newCatalog(rf.Levels),
	}, nil
}

var defaultEvaluator = mustDefault()

func mustDefault() *Evaluator {
	e, err := New(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("load embedded rules.yaml: %v", err))
	}
	return e
}

// Default returns the evaluator built from the embedded rules.
func Default() *Evaluator {
	return defaultEvaluator
}

// Evaluate scores text with the embedded rules.
func Evaluate(text string) EvaluationResult {
	return defaultEvaluator.Evaluate(text)
}

// Catalog returns the level catalog the evaluator reports against.
func (e *Evaluator) Catalog() *Catalog {
	return e.catalog
}

// Detectors returns a copy of the battery in evaluation order.
func (e *Evaluator) Detectors() []Detector {
	out := make([]Detector, len(e.detectors))
	copy(out, e.detectors)
	return out
}

// Evaluate runs every detector over text and aggregates the result. It accepts
// any string, including the empty string.
func (e *Evaluator) Evaluate(text string) EvaluationResult {
	lowered := strings.ToLower(text)
	steps := StepCount(text)

	out := EvaluationResult{
		IdentifiedRisks:          []IdentifiedRisk{},
		MissingSafeguards:        []string{},
		MitigationConsiderations: []string{},
		Triggered:                []string{},
	}
	for _, d := range e.detectors {
		if !d.matches(lowered, steps) {
			continue
		}
		if d.IsSafeguard() {
			out.MissingSafeguards = append(out.MissingSafeguards, d.Safeguard)
		} else {
			out.IdentifiedRisks = append(out.IdentifiedRisks, IdentifiedRisk{Step: d.Label, Risk: d.Risk})
		}
		out.MitigationConsiderations = append(out.MitigationConsiderations, d.Mitigation)
		out.RiskScore += d.Weight
		out.Triggered = append(out.Triggered, d.ID)
	}

	out.RiskLevel = classify(out.RiskScore, len(out.IdentifiedRisks))
	info, _ := e.catalog.Lookup(out.RiskLevel)
	out.Confidence = info.Confidence
	out.RiskLevelExplanation = info.Description
	return out
}

// classify maps the accumulated score and the number of identified risks to a
// level. The high check runs first.
func classify(score, risks int) RiskLevel {
	switch {
	case score >= highScoreThreshold || risks >= highCountThreshold:
		return LevelHigh
	case score >= mediumScoreThreshold || risks >= mediumCountThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

// StepCount estimates how many steps the text describes: every period and
// newline counts as one, and every two commas count as one more.
func StepCount(text string) int {
	return strings.Count(text, ".") + strings.Count(text, "\n") + strings.Count(text, ",")/2
}
