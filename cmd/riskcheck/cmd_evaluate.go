package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"instructrisk/internal/evaluate"
	"instructrisk/internal/logging"
	"instructrisk/internal/render"
)

type evaluateOptions struct {
	files   []string
	format  string
	noColor bool
}

func newEvaluateCmd() *cobra.Command {
	opts := &evaluateOptions{}
	cmd := &cobra.Command{
		Use:   "evaluate [text...]",
		Short: "Evaluate instruction text from arguments, files, or stdin",
		Long: `Evaluate scores instruction text. Text is taken from the arguments (joined with
spaces), from one or more --file paths, or from stdin when neither is given.
Several files are read and evaluated concurrently and reported in the order given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, args, opts)
		},
	}
	f := cmd.Flags()
	f.StringArrayVarP(&opts.files, "file", "f", nil, "Read instructions from file (repeatable)")
	f.StringVar(&opts.format, "format", "text", "Output format: text or json")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	return cmd
}

// source is one piece of instruction text and where it came from.
type source struct {
	Name string `json:"source"`
	Text string `json:"-"`
}

type sourceResult struct {
	source
	Result evaluate.EvaluationResult `json:"result"`
}

func runEvaluate(cmd *cobra.Command, args []string, opts *evaluateOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}
	sources, err := collectSources(cmd, args, opts.files)
	if err != nil {
		return err
	}
	for _, s := range sources {
		if strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("%s: instructions cannot be empty", s.Name)
		}
	}

	texts := make([]string, len(sources))
	for i, s := range sources {
		texts[i] = s.Text
	}
	results, err := evaluate.Default().EvaluateAll(cmd.Context(), texts)
	if err != nil {
		return err
	}
	logging.New("cli").Debug("evaluated instructions", "sources", len(sources))

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		if len(results) == 1 {
			return render.JSON(out, results[0])
		}
		combined := make([]sourceResult, len(results))
		for i, r := range results {
			combined[i] = sourceResult{source: sources[i], Result: r}
		}
		return render.JSON(out, combined)
	}

	ropts := render.Options{Color: !opts.noColor && stdoutIsTerminal(out)}
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", sources[i].Name)
		}
		if err := render.Text(out, r, ropts); err != nil {
			return err
		}
	}
	return nil
}

// collectSources resolves where the instruction text comes from. Files win over
// arguments; stdin is read only when it is not a terminal.
func collectSources(cmd *cobra.Command, args, files []string) ([]source, error) {
	if len(files) > 0 {
		if len(args) > 0 {
			return nil, errors.New("pass text as arguments or with --file, not both")
		}
		return readFiles(cmd, files)
	}
	if len(args) > 0 {
		return []source{{Name: "args", Text: strings.Join(args, " ")}}, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil, errors.New("no instructions given (pass text, --file, or pipe to stdin)")
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []source{{Name: "stdin", Text: string(b)}}, nil
}

func readFiles(cmd *cobra.Command, paths []string) ([]source, error) {
	out := make([]source, len(paths))
	g, _ := errgroup.WithContext(cmd.Context())
	for i, p := range paths {
		g.Go(func() error {
			b, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("read %s: %w", p, err)
			}
			out[i] = source{Name: p, Text: string(b)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func stdoutIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && render.ColorEnabled(f)
}
