package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overload-dev/overload/pkg/dispatch"
)

func TestBuildRegistersEveryScope(t *testing.T) {
	r, err := Build()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"add", "echo"}, r.Names(Main))
	assert.Equal(t, []string{"print_value"}, r.Names(Printer))
	assert.Equal(t, []string{"greet"}, r.Names(Greeter))
	assert.Equal(t, []string{"multiply"}, r.Names(Calculator))
}

func TestShowcaseDispatch(t *testing.T) {
	r, err := Build()
	require.NoError(t, err)
	d := dispatch.NewDispatcher(r)

	tests := []struct {
		name  string
		scope dispatch.Scope
		fn    string
		recv  any
		args  []any
		want  any
	}{
		{"add ints", Main, "add", nil, []any{1, 2}, 3},
		{"add strings", Main, "add", nil, []any{"x", "y"}, "xy"},
		{"echo int", Main, "echo", nil, []any{42}, 42},
		{"echo string", Main, "echo", nil, []any{"hello"}, "hello"},
		{"print int", Printer, "print_value", &PrinterValue{}, []any{10}, "Number: 10"},
		{"print string", Printer, "print_value", &PrinterValue{}, []any{"Go"}, "Text: Go"},
		{"greet string", Greeter, "greet", "Greeter", []any{"Alice"}, "Hello Alice"},
		{"greet int", Greeter, "greet", "Greeter", []any{10}, "Number 10"},
		{"multiply ints", Calculator, "multiply", nil, []any{2, 3}, 6},
		{"multiply floats", Calculator, "multiply", nil, []any{2.5, 4.0}, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Dispatch(tt.scope, tt.fn, tt.recv, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShowcaseFailures(t *testing.T) {
	r, err := Build()
	require.NoError(t, err)
	d := dispatch.NewDispatcher(r)

	_, err = d.Dispatch(Calculator, "multiply", nil, 2, 4.0)
	assert.True(t, dispatch.IsNoMatchingOverload(err), "mixed kinds must not match")

	_, err = d.Dispatch(Main, "echo", nil, true)
	assert.True(t, dispatch.IsNoMatchingOverload(err), "no boolean overload exists")

	_, err = d.Dispatch(Main, "unknown", nil, 1)
	assert.True(t, dispatch.IsNotOverloaded(err))
}

func TestScenariosRunCleanly(t *testing.T) {
	r, err := Build()
	require.NoError(t, err)
	d := dispatch.NewDispatcher(r)

	scenarios := Scenarios()
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, s.Run(d, &out))
			assert.NotEmpty(t, out.String())
		})
	}
}

func TestFind(t *testing.T) {
	s, ok := Find("free-functions")
	require.True(t, ok)
	assert.Equal(t, "free-functions", s.Name)

	_, ok = Find("nope")
	assert.False(t, ok)
}
