package evaluate

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvaluateAll_PreservesOrder(t *testing.T) {
	texts := []string{
		"",
		"Tap the blue button.",
		"Go to settings and reset your Wi-Fi password.",
		highScenarioText,
	}
	got, err := Default().EvaluateAll(context.Background(), texts)
	if err != nil {
		t.Fatalf("EvaluateAll error: %v", err)
	}
	want := make([]EvaluationResult, 0, len(texts))
	for _, text := range texts {
		want = append(want, Evaluate(text))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("batch results differ from sequential (-want +got):\n%s", diff)
	}
}

func TestEvaluateAll_Empty(t *testing.T) {
	got, err := Default().EvaluateAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("EvaluateAll error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestEvaluateAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Default().EvaluateAll(ctx, []string{"a", "b"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
