// Package ui renders dispatch failures and registry contents for terminal
// output.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/overload-dev/overload/pkg/dispatch"
)

// FailureOptions configures failure rendering.
type FailureOptions struct {
	NoColor bool
}

// FormatFailure creates a standardized rendering of a dispatch failure
// with the attempted argument kinds, the registered signatures, and the
// fix suggestion.
//
// Example output:
//
//	✖ DSP102 no overload matches the argument types: module:main.multiply
//	  Attempted:  (int, float)
//	  Registered: (int, int), (float, float)
//
//	  → argument types must exactly equal one registered signature
func FormatFailure(err error, opts FailureOptions) string {
	var de *dispatch.Error
	if !errors.As(err, &de) {
		return err.Error()
	}

	headerColor := color.New(color.FgRed, color.Bold)
	dimColor := color.New(color.FgHiBlack)
	hintColor := color.New(color.FgCyan)
	if opts.NoColor {
		headerColor.DisableColor()
		dimColor.DisableColor()
		hintColor.DisableColor()
	}

	var b strings.Builder
	headerColor.Fprintf(&b, "✖ %s %s: %s.%s\n", de.Code, de.Message, de.Scope, de.Name)

	if de.Attempted != "" {
		fmt.Fprintf(&b, "  Attempted:  %s\n", de.Attempted)
	}
	if len(de.Candidates) > 0 {
		dimColor.Fprintf(&b, "  Registered: %s\n", strings.Join(de.Candidates, ", "))
	}
	if de.Suggestion != "" {
		b.WriteString("\n")
		hintColor.Fprintf(&b, "  → %s\n", de.Suggestion)
	}

	return b.String()
}
