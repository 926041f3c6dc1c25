// Package dispatch implements a runtime multiple-dispatch resolver.
// Callables are registered under a (scope, name) pair with one signature
// per overload; at call time the dispatcher selects the single registered
// implementation whose declared parameter kinds match the runtime kinds of
// the arguments, and invokes it.
package dispatch

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Kind is the semantic kind of a runtime value. Signatures are built from
// kinds, and matching compares the declared kind at each position against
// the runtime kind of the argument.
type Kind int

const (
	// KindAny is the unconstrained kind: a parameter declared KindAny
	// accepts an argument of any runtime kind.
	KindAny Kind = iota
	// KindNil is the kind of an untyped nil argument.
	KindNil
	// KindBool is the kind of boolean values.
	KindBool
	// KindInt is the kind of all integer values, regardless of width or
	// signedness.
	KindInt
	// KindFloat is the kind of floating-point values. An integer argument
	// never matches a KindFloat parameter; matching is strict, not coercive.
	KindFloat
	// KindString is the kind of text values.
	KindString
	// KindBytes is the kind of raw byte slices.
	KindBytes
	// KindTime is the kind of time.Time values.
	KindTime
	// KindUUID is the kind of uuid.UUID values.
	KindUUID
	// KindList is the kind of slice and array values other than []byte.
	KindList
	// KindMap is the kind of map values.
	KindMap
	// KindObject is the kind of every other value: structs, pointers,
	// channels, functions.
	KindObject
)

var kindNames = map[Kind]string{
	KindAny:    "any",
	KindNil:    "nil",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindBytes:  "bytes",
	KindTime:   "timestamp",
	KindUUID:   "uuid",
	KindList:   "list",
	KindMap:    "map",
	KindObject: "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Accepts reports whether a parameter declared with kind k accepts an
// argument of runtime kind other. KindAny accepts everything; every other
// kind accepts only itself.
func (k Kind) Accepts(other Kind) bool {
	return k == KindAny || k == other
}

// KindOf returns the semantic kind of a runtime value.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNil
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case []byte:
		return KindBytes
	case time.Time:
		return KindTime
	case uuid.UUID:
		return KindUUID
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindList
	case reflect.Map:
		return KindMap
	default:
		return KindObject
	}
}

// KindsOf returns the kinds of an argument list, in order.
func KindsOf(args []any) []Kind {
	kinds := make([]Kind, len(args))
	for i, arg := range args {
		kinds[i] = KindOf(arg)
	}
	return kinds
}

// kindOfType maps a declared Go type to the kind used in a derived
// signature. The empty interface is the unconstrained parameter.
func kindOfType(t reflect.Type) Kind {
	if t == reflect.TypeOf((*any)(nil)).Elem() {
		return KindAny
	}

	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	}

	switch t {
	case reflect.TypeOf(time.Time{}):
		return KindTime
	case reflect.TypeOf(uuid.UUID{}):
		return KindUUID
	}

	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}
		return KindList
	case reflect.Array:
		return KindList
	case reflect.Map:
		return KindMap
	default:
		return KindObject
	}
}
