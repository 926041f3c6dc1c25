package main

import (
	"github.com/spf13/cobra"

	"github.com/overload-dev/overload/internal/cli/config"
	"github.com/overload-dev/overload/internal/cli/ui"
	"github.com/overload-dev/overload/internal/demo"
)

func newSignaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signatures",
		Short: "List every registered overload signature",
		Long:  "Render the demo registry as a scope/name/signature/binding table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			registry, err := demo.Build()
			if err != nil {
				return err
			}

			ui.RenderSignatures(cmd.OutOrStdout(), registry, &ui.TableOptions{NoColor: cfg.Output.NoColor})
			return nil
		},
	}
}
