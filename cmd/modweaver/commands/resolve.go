package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/modweaver/modweaver/pkg/config"
	"github.com/modweaver/modweaver/pkg/resolve"
	"github.com/modweaver/modweaver/pkg/telemetry"
)

func newResolveCommand() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Replay conflict-group scenarios",
		Long: `Replay conflict-group scenarios against capability declarations.

Each group in the scenario is run through the conflict resolver chain and
the surviving candidates are reported. A configuration contradiction (two
capabilities disagreeing on the preferred module) aborts with a diagnostic.`,
		Example: `  # Replay scenario.yaml against capabilities.yaml
  modweaver resolve --scenario scenario.yaml

  # Use specific declaration and scenario files
  modweaver resolve -c caps.yaml -s conflicts.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().
				Str("capabilities", capabilitiesPath).
				Str("scenario", scenarioPath).
				Msg("Replaying conflict scenario")

			loader := config.NewLoader()

			registry, err := loader.LoadCapabilities(capabilitiesPath)
			if err != nil {
				return err
			}

			scenario, err := loader.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}

			logCfg := telemetry.LoggingConfig{Level: "info", Format: "console", Output: "stderr"}
			if verbose {
				logCfg.Level = "debug"
			}
			logger := telemetry.NewLogger(logCfg)

			chain := resolve.NewChain(logger, nil,
				resolve.NewCapabilityConflictResolver(registry, logger, nil),
			)

			for _, decl := range scenario.Groups {
				group, err := decl.BuildGroup()
				if err != nil {
					return err
				}

				before := group.Len()
				if err := chain.Resolve(cmd.Context(), group); err != nil {
					if resolve.IsContradiction(err) {
						return fmt.Errorf("group %q: %w", decl.Name, err)
					}
					return err
				}

				fmt.Printf("group %s: %d -> %d candidates\n", decl.Name, before, group.Len())
				for _, c := range group.Candidates() {
					if vc, ok := c.(*resolve.VersionCandidate); ok {
						fmt.Printf("  %s\n", vc)
					} else {
						fmt.Printf("  %s\n", c.Module())
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "scenario.yaml", "scenario file path")

	return cmd
}
