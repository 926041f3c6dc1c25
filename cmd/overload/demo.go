package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/overload-dev/overload/internal/cli/config"
	"github.com/overload-dev/overload/internal/cli/ui"
	"github.com/overload-dev/overload/internal/demo"
	"github.com/overload-dev/overload/pkg/dispatch"
)

var (
	demoInteractive bool
	demoTrace       bool
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [scenario]",
		Short: "Run the overload resolution demonstrations",
		Long: `Run the built-in demonstrations: free-function, instance-method,
class-method, and static-method overloads, plus a deliberate resolution
failure. With no arguments every scenario runs in order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDemo,
	}

	cmd.Flags().BoolVarP(&demoInteractive, "interactive", "i", false, "pick a scenario interactively")
	cmd.Flags().BoolVar(&demoTrace, "trace", false, "log resolution decisions")

	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Output.NoColor {
		color.NoColor = true
	}

	registry, err := demo.Build()
	if err != nil {
		return err
	}

	opts := []dispatch.Option{dispatch.WithPolicy(cfg.Policy())}
	if cfg.Dispatch.Cache {
		opts = append(opts, dispatch.WithCache())
	}
	if demoTrace {
		logger, lerr := zap.NewDevelopment()
		if lerr != nil {
			return fmt.Errorf("failed to create trace logger: %w", lerr)
		}
		defer logger.Sync()
		opts = append(opts, dispatch.WithLogger(logger))
	}
	dispatcher := dispatch.NewDispatcher(registry, opts...)

	scenarios, err := selectScenarios(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	heading := color.New(color.Bold, color.FgCyan)
	if cfg.Output.NoColor {
		heading.DisableColor()
	}

	for _, s := range scenarios {
		heading.Fprintf(out, "===== %s =====\n", s.Description)
		if err := s.Run(dispatcher, out); err != nil {
			if failure := ui.FormatFailure(err, ui.FailureOptions{NoColor: cfg.Output.NoColor}); failure != err.Error() {
				fmt.Fprint(out, failure)
				return fmt.Errorf("scenario %s failed", s.Name)
			}
			return err
		}
		fmt.Fprintln(out)
	}

	return nil
}

func selectScenarios(args []string) ([]demo.Scenario, error) {
	if demoInteractive {
		all := demo.Scenarios()
		names := make([]string, len(all))
		for i, s := range all {
			names[i] = s.Name
		}

		var selected int
		prompt := &survey.Select{
			Message: "Select a scenario:",
			Options: names,
		}
		if err := survey.AskOne(prompt, &selected); err != nil {
			return nil, err
		}
		return []demo.Scenario{all[selected]}, nil
	}

	if len(args) == 1 {
		s, ok := demo.Find(args[0])
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q; run without arguments to see all", args[0])
		}
		return []demo.Scenario{s}, nil
	}

	return demo.Scenarios(), nil
}
