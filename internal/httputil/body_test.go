package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestIsBodyTooLarge(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "max bytes error", err: &http.MaxBytesError{Limit: 1}, want: true},
		{name: "wrapped max bytes error", err: fmt.Errorf("decode: %w", &http.MaxBytesError{Limit: 1}), want: true},
		{name: "http too large string", err: errors.New("http: request body too large"), want: true},
		{name: "other error", err: errors.New("boom"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBodyTooLarge(tc.err); got != tc.want {
				t.Fatalf("IsBodyTooLarge(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestDecodeErrorStatus(t *testing.T) {
	if code, _ := DecodeErrorStatus(&http.MaxBytesError{Limit: 1}); code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", code)
	}
	code, msg := DecodeErrorStatus(errors.New("unexpected EOF"))
	if code != http.StatusBadRequest || msg != "invalid JSON body" {
		t.Fatalf("expected 400 invalid JSON body, got %d %q", code, msg)
	}
}
