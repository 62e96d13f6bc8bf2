package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/modweaver/modweaver/pkg/config"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate capability declaration files",
		Long: `Validate a capability declaration file.

This command checks:
  - YAML syntax validity
  - Required fields and module coordinate syntax
  - That every preferred module is a declared provider of its capability`,
		Example: `  # Validate the default capabilities.yaml
  modweaver validate

  # Validate a specific file
  modweaver validate -c ./declarations/capabilities.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().
				Str("capabilities", capabilitiesPath).
				Msg("Validating capability declarations")

			registry, err := config.NewLoader().LoadCapabilities(capabilitiesPath)
			if err != nil {
				return err
			}

			fmt.Printf("OK: %d capabilities declared\n", registry.Len())
			if verbose {
				for _, id := range registry.IDs() {
					cap, _ := registry.Get(id)
					if cap.HasPreferred() {
						fmt.Printf("  %s: %d providers, prefers %s\n", id, len(cap.ProvidedBy), cap.Preferred)
					} else {
						fmt.Printf("  %s: %d providers, no preference\n", id, len(cap.ProvidedBy))
					}
				}
			}

			return nil
		},
	}

	return cmd
}
