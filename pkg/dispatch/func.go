package dispatch

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Fn adapts a plain Go function into a dispatchable implementation,
// deriving its signature from the declared parameter types. A parameter of
// type any becomes the unconstrained kind. The function may return
// nothing, a single value, a single error, or a (value, error) pair.
// Variadic functions are rejected; the resolver has no variadic matching.
func Fn(fn any) (Signature, Func, error) {
	return adapt(fn, false)
}

// Method adapts a Go function whose first parameter is the receiver. The
// receiver is excluded from the derived signature and is supplied by the
// caller at dispatch time.
func Method(fn any) (Signature, Func, error) {
	return adapt(fn, true)
}

// RegisterFunc derives the signature of fn and registers it as a free
// function under (scope, name).
func (r *Registry) RegisterFunc(scope Scope, name string, fn any) error {
	sig, impl, err := Fn(fn)
	if err != nil {
		return NewInvalidImplementation(scope, name, err.Error())
	}
	return r.RegisterBound(scope, name, sig, impl, BindFree)
}

// RegisterStatic derives the signature of fn and registers it as a static
// method under (scope, name): owned by a type, called without a receiver.
func (r *Registry) RegisterStatic(scope Scope, name string, fn any) error {
	sig, impl, err := Fn(fn)
	if err != nil {
		return NewInvalidImplementation(scope, name, err.Error())
	}
	return r.RegisterBound(scope, name, sig, impl, BindStatic)
}

// RegisterMethod derives the signature of a receiver-first fn and
// registers it under (scope, name) with the given binding kind.
func (r *Registry) RegisterMethod(scope Scope, name string, fn any, bind BindKind) error {
	sig, impl, err := Method(fn)
	if err != nil {
		return NewInvalidImplementation(scope, name, err.Error())
	}
	return r.RegisterBound(scope, name, sig, impl, bind)
}

func adapt(fn any, hasReceiver bool) (Signature, Func, error) {
	if fn == nil {
		return nil, nil, fmt.Errorf("nil function")
	}

	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, nil, fmt.Errorf("%s is not a function", t)
	}
	if t.IsVariadic() {
		return nil, nil, fmt.Errorf("variadic functions are not supported")
	}
	if hasReceiver && t.NumIn() == 0 {
		return nil, nil, fmt.Errorf("method must declare a receiver parameter")
	}
	if err := checkResults(t); err != nil {
		return nil, nil, err
	}

	first := 0
	if hasReceiver {
		first = 1
	}

	sig := make(Signature, 0, t.NumIn()-first)
	for i := first; i < t.NumIn(); i++ {
		sig = append(sig, kindOfType(t.In(i)))
	}

	impl := func(recv any, args []any) (any, error) {
		if len(args) != t.NumIn()-first {
			return nil, fmt.Errorf("implementation expects %d arguments, got %d", t.NumIn()-first, len(args))
		}

		in := make([]reflect.Value, 0, t.NumIn())
		if hasReceiver {
			rv, err := argValue(recv, t.In(0))
			if err != nil {
				return nil, fmt.Errorf("receiver: %w", err)
			}
			in = append(in, rv)
		}
		for i, arg := range args {
			av, err := argValue(arg, t.In(i+first))
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			in = append(in, av)
		}

		return results(v.Call(in))
	}

	return sig, impl, nil
}

// checkResults enforces the supported result shapes: none, one value, one
// error, or (value, error).
func checkResults(t reflect.Type) error {
	switch t.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if !t.Out(1).Implements(errorType) {
			return fmt.Errorf("second result must be an error, got %s", t.Out(1))
		}
		return nil
	default:
		return fmt.Errorf("too many results: %d", t.NumOut())
	}
}

func argValue(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", want)
		}
	}

	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	// Same semantic kind but a different Go type, e.g. an int32 argument
	// for an int parameter.
	if v.Type().ConvertibleTo(want) {
		return v.Convert(want), nil
	}
	return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), want)
}

func results(out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if out[0].Type().Implements(errorType) {
			if err, ok := out[0].Interface().(error); ok && err != nil {
				return nil, err
			}
			return nil, nil
		}
		return out[0].Interface(), nil
	default:
		var err error
		if e, ok := out[1].Interface().(error); ok && e != nil {
			err = e
		}
		if err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}
}
