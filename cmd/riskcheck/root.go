package main

import (
	"github.com/spf13/cobra"

	"instructrisk/internal/config"
	"instructrisk/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "riskcheck",
		Short: "Assess how likely readers are to misunderstand written instructions",
		Long: "riskcheck runs the rule-based instruction evaluator locally and prints the risk level,\n" +
			"identified risks, missing safeguards and suggested mitigations.",
		Version:      version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			_ = config.Load()
			logging.Init(logging.ParseLevel(config.LogLevel()), config.LogFormat(), cmd.ErrOrStderr())
		},
	}
	root.AddCommand(newEvaluateCmd(), newLevelsCmd(), newSmokeCmd())
	return root
}
