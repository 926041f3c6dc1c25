// Package demo builds the showcase registry used by the overload CLI: a
// set of overloaded free functions, instance methods, type-bound methods,
// and statics exercising every resolver path.
package demo

import (
	"fmt"
	"io"

	"github.com/overload-dev/overload/pkg/dispatch"
)

// Scope names used by the showcase registry.
var (
	Main       = dispatch.ModuleScope("main")
	Printer    = dispatch.TypeScope("Printer")
	Greeter    = dispatch.TypeScope("Greeter")
	Calculator = dispatch.TypeScope("Calculator")
)

// PrinterValue is the receiver type for the Printer instance methods.
type PrinterValue struct {
	// Prefix is prepended to every rendered value.
	Prefix string
}

// Build registers the showcase overloads and returns the registry.
func Build() (*dispatch.Registry, error) {
	r := dispatch.NewRegistry()

	type registration struct {
		scope dispatch.Scope
		name  string
		fn    any
		bind  dispatch.BindKind
	}

	regs := []registration{
		// Free functions.
		{Main, "add", func(a, b int) int { return a + b }, dispatch.BindFree},
		{Main, "add", func(a, b string) string { return a + b }, dispatch.BindFree},
		{Main, "echo", func(v int) int { return v }, dispatch.BindFree},
		{Main, "echo", func(v string) string { return v }, dispatch.BindFree},

		// Instance methods on Printer.
		{Printer, "print_value", func(p *PrinterValue, v int) string {
			return fmt.Sprintf("%sNumber: %d", p.Prefix, v)
		}, dispatch.BindInstance},
		{Printer, "print_value", func(p *PrinterValue, v string) string {
			return fmt.Sprintf("%sText: %s", p.Prefix, v)
		}, dispatch.BindInstance},

		// Type-bound methods on Greeter: the receiver is the type name.
		{Greeter, "greet", func(cls string, name string) string {
			return "Hello " + name
		}, dispatch.BindClass},
		{Greeter, "greet", func(cls string, n int) string {
			return fmt.Sprintf("Number %d", n)
		}, dispatch.BindClass},
	}

	for _, reg := range regs {
		var err error
		switch reg.bind {
		case dispatch.BindFree:
			err = r.RegisterFunc(reg.scope, reg.name, reg.fn)
		default:
			err = r.RegisterMethod(reg.scope, reg.name, reg.fn, reg.bind)
		}
		if err != nil {
			return nil, fmt.Errorf("building demo registry: %w", err)
		}
	}

	// Statics on Calculator: no receiver.
	statics := []struct {
		name string
		fn   any
	}{
		{"multiply", func(a, b int) int { return a * b }},
		{"multiply", func(a, b float64) float64 { return a * b }},
	}
	for _, s := range statics {
		if err := r.RegisterStatic(Calculator, s.name, s.fn); err != nil {
			return nil, fmt.Errorf("building demo registry: %w", err)
		}
	}

	return r, nil
}

// Scenario is one runnable demonstration of the resolver.
type Scenario struct {
	Name        string
	Description string
	Run         func(d *dispatch.Dispatcher, out io.Writer) error
}

func call(d *dispatch.Dispatcher, out io.Writer, scope dispatch.Scope, name string, recv any, args ...any) error {
	result, err := d.Dispatch(scope, name, recv, args...)
	if err != nil {
		return err
	}
	_, werr := fmt.Fprintf(out, "%s.%s%v => %v\n", scope, name, args, result)
	return werr
}

// Scenarios returns the demonstrations run by the demo command, in display
// order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "free-functions",
			Description: "add(int,int) and add(string,string) free-function overloads",
			Run: func(d *dispatch.Dispatcher, out io.Writer) error {
				if err := call(d, out, Main, "add", nil, 1, 2); err != nil {
					return err
				}
				return call(d, out, Main, "add", nil, "x", "y")
			},
		},
		{
			Name:        "instance-methods",
			Description: "Printer.print_value(int|string) instance-method overloads",
			Run: func(d *dispatch.Dispatcher, out io.Writer) error {
				recv := &PrinterValue{}
				if err := call(d, out, Printer, "print_value", recv, 10); err != nil {
					return err
				}
				return call(d, out, Printer, "print_value", recv, "Go")
			},
		},
		{
			Name:        "class-methods",
			Description: "Greeter.greet(string|int) type-bound overloads",
			Run: func(d *dispatch.Dispatcher, out io.Writer) error {
				if err := call(d, out, Greeter, "greet", "Greeter", "Alice"); err != nil {
					return err
				}
				return call(d, out, Greeter, "greet", "Greeter", 10)
			},
		},
		{
			Name:        "static-methods",
			Description: "Calculator.multiply(int,int|float,float) static overloads",
			Run: func(d *dispatch.Dispatcher, out io.Writer) error {
				if err := call(d, out, Calculator, "multiply", nil, 2, 3); err != nil {
					return err
				}
				return call(d, out, Calculator, "multiply", nil, 2.5, 4.0)
			},
		},
		{
			Name:        "no-match",
			Description: "mixed argument kinds resolve to a NoMatchingOverload failure",
			Run: func(d *dispatch.Dispatcher, out io.Writer) error {
				_, err := d.Dispatch(Calculator, "multiply", nil, 2, 4.0)
				if !dispatch.IsNoMatchingOverload(err) {
					return fmt.Errorf("expected a NoMatchingOverload failure, got %v", err)
				}
				_, werr := fmt.Fprintf(out, "%v\n", err)
				return werr
			},
		},
	}
}

// Find returns the named scenario.
func Find(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
