package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is the unique code of a dispatch failure.
type ErrorCode string

const (
	// ErrDuplicateSignature indicates two overloads registered for the same
	// name and scope with identical signatures (DSP001, registration time).
	ErrDuplicateSignature ErrorCode = "DSP001"
	// ErrNotOverloaded indicates dispatch on a name with no registered
	// overloads (DSP101). Callers may recover by falling back to a plain
	// call.
	ErrNotOverloaded ErrorCode = "DSP101"
	// ErrNoMatchingOverload indicates that no registered signature matched
	// the runtime argument kinds (DSP102).
	ErrNoMatchingOverload ErrorCode = "DSP102"
	// ErrAmbiguousOverload indicates that more than one signature matched
	// under the AmbiguityError policy (DSP103).
	ErrAmbiguousOverload ErrorCode = "DSP103"
	// ErrInvalidImplementation indicates a value that could not be adapted
	// into a dispatchable implementation (DSP002, registration time).
	ErrInvalidImplementation ErrorCode = "DSP002"
)

// Error is a structured dispatch failure. It identifies the callable by
// scope and name and carries enough context to diagnose the failure
// without re-running the call: the attempted argument kinds and every
// signature registered for the name.
type Error struct {
	// Code is the unique failure code (e.g. "DSP102").
	Code ErrorCode `json:"code"`
	// Type is a machine-readable failure type identifier.
	Type string `json:"type"`
	// Message is the primary failure message.
	Message string `json:"message"`
	// Scope identifies the namespace the callable was resolved in.
	Scope string `json:"scope"`
	// Name is the callable name.
	Name string `json:"name"`
	// Attempted is the signature formed by the runtime argument kinds, if
	// the failure happened at dispatch time.
	Attempted string `json:"attempted,omitempty"`
	// Candidates lists every signature registered for the name.
	Candidates []string `json:"candidates,omitempty"`
	// Suggestion provides a hint for fixing the failure.
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface with a human-readable message.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s.%s", e.Code, e.Message, e.Scope, e.Name)
	if e.Attempted != "" {
		fmt.Fprintf(&b, "%s", e.Attempted)
	}
	if len(e.Candidates) > 0 {
		fmt.Fprintf(&b, " (registered: %s)", strings.Join(e.Candidates, ", "))
	}
	return b.String()
}

// ToJSON returns the failure as an indented JSON document.
func (e *Error) ToJSON() (string, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WithSuggestion sets a hint for fixing the failure.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

func signatureStrings(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Signature.String()
	}
	return out
}

// NewDuplicateSignature creates a DSP001 registration error.
func NewDuplicateSignature(scope Scope, name string, sig Signature) *Error {
	return &Error{
		Code:      ErrDuplicateSignature,
		Type:      "duplicate_signature",
		Message:   "duplicate overload signature",
		Scope:     scope.String(),
		Name:      name,
		Attempted: sig.String(),
		Suggestion: "each overload of a name must declare a distinct parameter list; " +
			"remove or retype one of the definitions",
	}
}

// NewInvalidImplementation creates a DSP002 registration error.
func NewInvalidImplementation(scope Scope, name, reason string) *Error {
	return &Error{
		Code:    ErrInvalidImplementation,
		Type:    "invalid_implementation",
		Message: "invalid overload implementation: " + reason,
		Scope:   scope.String(),
		Name:    name,
	}
}

// NewNotOverloaded creates a DSP101 dispatch failure.
func NewNotOverloaded(scope Scope, name string) *Error {
	return &Error{
		Code:       ErrNotOverloaded,
		Type:       "not_overloaded",
		Message:    "no overloads registered",
		Scope:      scope.String(),
		Name:       name,
		Suggestion: "register at least one overload before dispatching, or fall back to a plain call",
	}
}

// NewNoMatchingOverload creates a DSP102 dispatch failure carrying the
// attempted argument kinds and all registered signatures.
func NewNoMatchingOverload(scope Scope, name string, kinds []Kind, candidates []Candidate) *Error {
	return &Error{
		Code:       ErrNoMatchingOverload,
		Type:       "no_matching_overload",
		Message:    "no overload matches the argument types",
		Scope:      scope.String(),
		Name:       name,
		Attempted:  Signature(kinds).String(),
		Candidates: signatureStrings(candidates),
		Suggestion: "argument types must exactly equal one registered signature; there is no implicit conversion",
	}
}

// NewAmbiguousOverload creates a DSP103 dispatch failure listing every
// signature that matched.
func NewAmbiguousOverload(scope Scope, name string, kinds []Kind, matched []Candidate) *Error {
	return &Error{
		Code:       ErrAmbiguousOverload,
		Type:       "ambiguous_overload",
		Message:    "multiple overloads match the argument types",
		Scope:      scope.String(),
		Name:       name,
		Attempted:  Signature(kinds).String(),
		Candidates: signatureStrings(matched),
		Suggestion: "narrow the unconstrained parameters of the colliding overloads, " +
			"or use the FirstMatchWins policy",
	}
}

func hasCode(err error, code ErrorCode) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}

// IsDuplicateSignature reports whether err is a DSP001 failure.
func IsDuplicateSignature(err error) bool { return hasCode(err, ErrDuplicateSignature) }

// IsNotOverloaded reports whether err is a DSP101 failure.
func IsNotOverloaded(err error) bool { return hasCode(err, ErrNotOverloaded) }

// IsNoMatchingOverload reports whether err is a DSP102 failure.
func IsNoMatchingOverload(err error) bool { return hasCode(err, ErrNoMatchingOverload) }

// IsAmbiguousOverload reports whether err is a DSP103 failure.
func IsAmbiguousOverload(err error) bool { return hasCode(err, ErrAmbiguousOverload) }
