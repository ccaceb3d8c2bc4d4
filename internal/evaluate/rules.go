package evaluate

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const rulesVersion = "instructrisk_rules_v1"

//go:embed rules.yaml
var defaultRules []byte

// Detector is one declarative rule of the battery. A detector reports either a
// Risk or a Safeguard, never both.
type Detector struct {
	ID         string   `yaml:"id"`
	Label      string   `yaml:"label"`
	Any        []string `yaml:"any"`
	Requires   []string `yaml:"requires"`
	Unless     []string `yaml:"unless"`
	MaxSteps   int      `yaml:"max_steps"`
	Weight     int      `yaml:"weight"`
	Risk       string   `yaml:"risk"`
	Safeguard  string   `yaml:"safeguard"`
	Mitigation string   `yaml:"mitigation"`
}

// IsSafeguard reports whether the detector flags a missing safeguard rather
// than an identified risk.
func (d Detector) IsSafeguard() bool {
	return d.Safeguard != ""
}

// matches evaluates the detector against lower-cased text. steps is the step
// count of the input text.
func (d Detector) matches(lowered string, steps int) bool {
	if len(d.Any) > 0 && !containsAny(lowered, d.Any) {
		return false
	}
	for _, p := range d.Requires {
		if !strings.Contains(lowered, p) {
			return false
		}
	}
	if containsAny(lowered, d.Unless) {
		return false
	}
	if d.MaxSteps > 0 && steps <= d.MaxSteps {
		return false
	}
	return true
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

type ruleFile struct {
	Version   string      `yaml:"version"`
	Levels    []LevelInfo `yaml:"levels"`
	Detectors []Detector  `yaml:"detectors"`
}

func parseRules(raw []byte) (ruleFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var rf ruleFile
	if err := dec.Decode(&rf); err != nil {
		if errors.Is(err, io.EOF) {
			return ruleFile{}, fmt.Errorf("rules document is empty")
		}
		return ruleFile{}, fmt.Errorf("invalid rules YAML: %w", err)
	}
	var extra ruleFile
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ruleFile{}, fmt.Errorf("rules must be a single YAML document")
	}
	return rf, nil
}

func validateRules(rf ruleFile) error {
	if rf.Version != rulesVersion {
		return fmt.Errorf("version must be %s", rulesVersion)
	}
	if err := validateLevels(rf.Levels); err != nil {
		return err
	}
	if len(rf.Detectors) == 0 {
		return fmt.Errorf("detectors must be non-empty")
	}
	seen := make(map[string]struct{}, len(rf.Detectors))
	for i, d := range rf.Detectors {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return fmt.Errorf("detector %d: id must be non-empty", i)
		}
		if id != d.ID {
			return fmt.Errorf("detector %s: id must not include leading/trailing whitespace", d.ID)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("duplicate detector id: %s", id)
		}
		seen[id] = struct{}{}
		if err := validateDetector(d); err != nil {
			return fmt.Errorf("detector %s: %w", id, err)
		}
	}
	return nil
}

func validateDetector(d Detector) error {
	if strings.TrimSpace(d.Label) == "" {
		return fmt.Errorf("label must be non-empty")
	}
	if d.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if d.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative")
	}
	hasRisk := strings.TrimSpace(d.Risk) != ""
	hasSafeguard := strings.TrimSpace(d.Safeguard) != ""
	if hasRisk == hasSafeguard {
		return fmt.Errorf("exactly one of risk or safeguard must be set")
	}
	if strings.TrimSpace(d.Mitigation) == "" {
		return fmt.Errorf("mitigation must be non-empty")
	}
	if len(d.Any) == 0 && len(d.Requires) == 0 && len(d.Unless) == 0 && d.MaxSteps == 0 {
		return fmt.Errorf("at least one trigger condition is required")
	}
	for _, list := range [][]string{d.Any, d.Requires, d.Unless} {
		for _, p := range list {
			if p == "" {
				return fmt.Errorf("phrases must be non-empty")
			}
			// Matching runs on lower-cased text, so an upper-case phrase could never fire.
			if p != strings.ToLower(p) {
				return fmt.Errorf("phrase %q must be lower case", p)
			}
		}
	}
	return nil
}

func validateLevels(levels []LevelInfo) error {
	want := []RiskLevel{LevelLow, LevelMedium, LevelHigh}
	if len(levels) != len(want) {
		return fmt.Errorf("levels must list low, medium and high")
	}
	for i, l := range levels {
		if l.Level != want[i] {
			return fmt.Errorf("levels[%d] must be %s, got %q", i, want[i], l.Level)
		}
		if l.Confidence <= 0 || l.Confidence > 1 {
			return fmt.Errorf("level %s: confidence must be in (0, 1]", l.Level)
		}
		if strings.TrimSpace(l.Description) == "" {
			return fmt.Errorf("level %s: description must be non-empty", l.Level)
		}
		if strings.TrimSpace(l.Recommendation) == "" {
			return fmt.Errorf("level %s: recommendation must be non-empty", l.Level)
		}
	}
	return nil
}
