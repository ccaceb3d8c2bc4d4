package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"instructrisk/internal/evaluate"
)

const smokeText = "Go to settings and reset your Wi-Fi password."

func newSmokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Run a built-in sanity evaluation and exit non-zero on failure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := evaluate.Evaluate(smokeText)
			if !r.RiskLevel.Valid() {
				return fmt.Errorf("smoke: invalid risk level %q", r.RiskLevel)
			}
			if len(r.IdentifiedRisks) < 2 {
				return fmt.Errorf("smoke: expected at least 2 identified risks, got %d", len(r.IdentifiedRisks))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Local evaluation test passed.")
			fmt.Fprintln(out, "Risk level:", r.RiskLevel)
			for _, ir := range r.IdentifiedRisks {
				fmt.Fprintf(out, "- %s : %s\n", ir.Step, ir.Risk)
			}
			return nil
		},
	}
}
