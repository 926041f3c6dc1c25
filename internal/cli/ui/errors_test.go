package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/overload-dev/overload/pkg/dispatch"
)

func TestFormatFailure(t *testing.T) {
	scope := dispatch.ModuleScope("main")
	err := dispatch.NewNoMatchingOverload(scope, "multiply",
		[]dispatch.Kind{dispatch.KindInt, dispatch.KindFloat},
		[]dispatch.Candidate{
			{Signature: dispatch.Sig(dispatch.KindInt, dispatch.KindInt)},
			{Signature: dispatch.Sig(dispatch.KindFloat, dispatch.KindFloat)},
		})

	out := FormatFailure(err, FailureOptions{NoColor: true})

	for _, want := range []string{
		"DSP102",
		"module:main.multiply",
		"Attempted:  (int, float)",
		"(int, int), (float, float)",
		"→",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatFailurePlainError(t *testing.T) {
	err := errors.New("not a dispatch failure")
	if got := FormatFailure(err, FailureOptions{NoColor: true}); got != err.Error() {
		t.Errorf("plain errors must pass through, got %q", got)
	}
}

func TestFormatFailureWrapped(t *testing.T) {
	inner := dispatch.NewNotOverloaded(dispatch.ModuleScope("main"), "ghost")
	wrapped := &wrapError{inner}

	out := FormatFailure(wrapped, FailureOptions{NoColor: true})
	if !strings.Contains(out, "DSP101") {
		t.Errorf("wrapped failures must still render structurally:\n%s", out)
	}
}

type wrapError struct{ err error }

func (w *wrapError) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapError) Unwrap() error { return w.err }
