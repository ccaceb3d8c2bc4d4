package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"instructrisk/internal/evaluate"
)

func TestText_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, evaluate.Evaluate("Tap the blue button."), Options{}); err != nil {
		t.Fatalf("Text error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Risk level: MEDIUM (confidence 0.78, score 3)",
		"Identified risks:",
		"  • visual dependency: ",
		"  • device assumption: ",
		"Missing safeguards:\n  • No success or failure confirmation described",
		"Mitigations:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output must not contain ANSI escapes:\n%s", out)
	}
}

func TestText_EmptySections(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, evaluate.Evaluate("Done."), Options{}); err != nil {
		t.Fatalf("Text error: %v", err)
	}
	if got := strings.Count(buf.String(), "(none)"); got != 3 {
		t.Fatalf("expected 3 empty sections, got %d:\n%s", got, buf.String())
	}
}

func TestLevels_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := Levels(&buf, evaluate.Levels(), Options{}); err != nil {
		t.Fatalf("Levels error: %v", err)
	}
	out := buf.String()
	low := strings.Index(out, "LOW")
	medium := strings.Index(out, "MEDIUM")
	high := strings.Index(out, "HIGH")
	if low < 0 || medium < low || high < medium {
		t.Fatalf("expected levels in order low, medium, high:\n%s", out)
	}
	if strings.Count(out, "Recommendation:") != 3 {
		t.Fatalf("expected 3 recommendations:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, evaluate.Evaluate("")); err != nil {
		t.Fatalf("JSON error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["risk_level"] != "low" {
		t.Fatalf("expected low, got %v", got["risk_level"])
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Fatalf("expected trailing newline")
	}
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(nil) {
		t.Fatalf("NO_COLOR must disable colour")
	}
}
