package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"instructrisk/internal/evaluate"
	"instructrisk/internal/render"
)

func newLevelsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the risk level catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return render.JSON(out, evaluate.Levels())
			case "text":
				return render.Levels(out, evaluate.Levels(), render.Options{Color: stdoutIsTerminal(out)})
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}
