package evaluate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateAll scores every text concurrently and returns the results in input
// order. It only fails when ctx is cancelled before all texts are scored.
func (e *Evaluator) EvaluateAll(ctx context.Context, texts []string) ([]EvaluationResult, error) {
	out := make([]EvaluationResult, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = e.Evaluate(text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
