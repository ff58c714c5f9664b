package services_test

import (
	"errors"
	"testing"

	"hansard/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrValidation, "parse", "split", "no boundaries", base)

	if !errors.Is(err, services.ErrValidation) {
		t.Fatal("expected validation marker")
	}
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped cause")
	}
	want := "validation error: parse: split: no boundaries: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := services.Wrap(nil, "fetch", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatal("expected transient marker")
	}
}

func TestSkipDate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation", services.Wrap(services.ErrValidation, "parse", "", "", nil), true},
		{"source", services.Wrap(services.ErrSource, "fetch", "", "", nil), true},
		{"not found", services.ErrNotFound, true},
		{"transient", services.Wrap(services.ErrTransient, "store", "", "", nil), false},
		{"plain", errors.New("other"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.SkipDate(tt.err); got != tt.want {
				t.Errorf("SkipDate() = %v, want %v", got, tt.want)
			}
		})
	}
}
