package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/overload-dev/overload/pkg/dispatch"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Scope", "Name", "Signature"}, &TableOptions{NoColor: true})

	table.AddRow("module:main", "add", "(int, int)")
	table.AddRow("module:main", "add", "(string, string)")

	table.Render()
	output := buf.String()

	for _, want := range []string{"Scope", "Name", "Signature", "(int, int)", "(string, string)"} {
		if !strings.Contains(output, want) {
			t.Errorf("table output missing %q", want)
		}
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 { // header + separator + 2 rows
		t.Errorf("expected 4 lines, got %d:\n%s", len(lines), output)
	}
}

func TestRenderSignatures(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	r := dispatch.NewRegistry()
	scope := dispatch.ModuleScope("main")
	impl := func(recv any, args []any) (any, error) { return nil, nil }

	if err := r.Register(scope, "add", dispatch.Sig(dispatch.KindInt, dispatch.KindInt), impl); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.RegisterBound(dispatch.TypeScope("Greeter"), "greet",
		dispatch.Sig(dispatch.KindString), impl, dispatch.BindClass); err != nil {
		t.Fatalf("register: %v", err)
	}

	var buf bytes.Buffer
	RenderSignatures(&buf, r, &TableOptions{NoColor: true})
	output := buf.String()

	for _, want := range []string{"module:main", "add", "(int, int)", "type:Greeter", "greet", "(string)", "class", "free"} {
		if !strings.Contains(output, want) {
			t.Errorf("signatures output missing %q:\n%s", want, output)
		}
	}
}
