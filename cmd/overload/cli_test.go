package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v\nOutput: %s", err, output)
	}

	for _, want := range []string{"Overload version:", "Git commit:", "Go version:"} {
		if !strings.Contains(output, want) {
			t.Errorf("version output missing %q:\n%s", want, output)
		}
	}
}

func TestDemoCommandRunsAllScenarios(t *testing.T) {
	output, err := execute(t, "demo")
	if err != nil {
		t.Fatalf("demo command failed: %v\nOutput: %s", err, output)
	}

	for _, want := range []string{
		"=> 3",
		"=> xy",
		"Number: 10",
		"Hello Alice",
		"=> 10",
		"DSP102",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("demo output missing %q:\n%s", want, output)
		}
	}
}

func TestDemoCommandSingleScenario(t *testing.T) {
	output, err := execute(t, "demo", "free-functions")
	if err != nil {
		t.Fatalf("demo command failed: %v\nOutput: %s", err, output)
	}

	if !strings.Contains(output, "=> 3") {
		t.Errorf("expected the add(int,int) result:\n%s", output)
	}
	if strings.Contains(output, "Hello Alice") {
		t.Errorf("single scenario ran other scenarios:\n%s", output)
	}
}

func TestDemoCommandUnknownScenario(t *testing.T) {
	_, err := execute(t, "demo", "nope")
	if err == nil {
		t.Fatal("expected an error for an unknown scenario")
	}
}

func TestSignaturesCommand(t *testing.T) {
	output, err := execute(t, "signatures")
	if err != nil {
		t.Fatalf("signatures command failed: %v\nOutput: %s", err, output)
	}

	for _, want := range []string{
		"module:main",
		"type:Calculator",
		"(int, int)",
		"(float, float)",
		"static",
		"instance",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("signatures output missing %q:\n%s", want, output)
		}
	}
}
