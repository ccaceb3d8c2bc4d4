// Package render formats evaluation results for terminals and pipes.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"instructrisk/internal/evaluate"
)

var (
	colorLow    = lipgloss.Color("#2CD7C7")
	colorMedium = lipgloss.Color("#F4D03F")
	colorHigh   = lipgloss.Color("#E74C3C")
	colorMuted  = lipgloss.Color("#7F8C8D")
)

// Options controls text rendering.
type Options struct {
	// Color enables ANSI styling. Use ColorEnabled to decide it for a file.
	Color bool
}

// ColorEnabled reports whether output to f should be styled: f must be a
// terminal and NO_COLOR must be unset.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type styler struct {
	color bool
}

func (s styler) level(l evaluate.RiskLevel) string {
	text := strings.ToUpper(string(l))
	if !s.color {
		return text
	}
	c := colorLow
	switch l {
	case evaluate.LevelMedium:
		c = colorMedium
	case evaluate.LevelHigh:
		c = colorHigh
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(text)
}

func (s styler) heading(text string) string {
	if !s.color {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

func (s styler) muted(text string) string {
	if !s.color {
		return text
	}
	return lipgloss.NewStyle().Foreground(colorMuted).Render(text)
}

// Text writes a human-readable report of r.
func Text(w io.Writer, r evaluate.EvaluationResult, opts Options) error {
	s := styler{color: opts.Color}
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", s.heading("Risk level:"), s.level(r.RiskLevel),
		s.muted(fmt.Sprintf("(confidence %.2f, score %d)", r.Confidence, r.RiskScore)))
	b.WriteString(r.RiskLevelExplanation)
	b.WriteString("\n")

	risks := make([]string, 0, len(r.IdentifiedRisks))
	for _, ir := range r.IdentifiedRisks {
		risks = append(risks, ir.Step+": "+ir.Risk)
	}
	writeSection(&b, s, "Identified risks", risks)
	writeSection(&b, s, "Missing safeguards", r.MissingSafeguards)
	writeSection(&b, s, "Mitigations", r.MitigationConsiderations)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, s styler, title string, items []string) {
	b.WriteString("\n")
	b.WriteString(s.heading(title + ":"))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString("  " + s.muted("(none)") + "\n")
		return
	}
	for _, item := range items {
		b.WriteString("  • " + item + "\n")
	}
}

// Levels writes the risk level catalog.
func Levels(w io.Writer, levels []evaluate.LevelInfo, opts Options) error {
	s := styler{color: opts.Color}
	var b strings.Builder
	for i, l := range levels {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", s.level(l.Level), s.muted(fmt.Sprintf("(confidence %.2f)", l.Confidence)))
		b.WriteString("  " + l.Description + "\n")
		b.WriteString("  " + s.heading("Recommendation:") + " " + l.Recommendation + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
