package dispatch

import "strings"

// Signature is the ordered list of declared parameter kinds for one
// overload, receiver excluded. Two overloads of the same name are
// distinguished only by their signatures.
type Signature []Kind

// Sig builds a signature from the given kinds.
func Sig(kinds ...Kind) Signature {
	return Signature(kinds)
}

// Arity returns the number of positional parameters.
func (s Signature) Arity() int {
	return len(s)
}

// Equal checks if two signatures have the same arity and the same kind at
// every position.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i, k := range s {
		if k != other[i] {
			return false
		}
	}
	return true
}

// Matches reports whether an argument list with the given runtime kinds
// satisfies this signature: the arity must be identical and the declared
// kind at each position must accept the runtime kind at that position.
// There is no subtype or numeric widening; an int argument never matches
// a float parameter.
func (s Signature) Matches(kinds []Kind) bool {
	if len(s) != len(kinds) {
		return false
	}
	for i, k := range s {
		if !k.Accepts(kinds[i]) {
			return false
		}
	}
	return true
}

// String returns the human-readable form of the signature, e.g.
// "(int, string)".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, k := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	b.WriteByte(')')
	return b.String()
}
