package cli

import (
	"github.com/spf13/cobra"

	"sitectl/internal/config"
	"sitectl/internal/output"
)

var enableCmd = &cobra.Command{
	Use:   "enable <domain>",
	Short: "Enable a site",
	Long: `Enable a site by creating its symlink in sites-enabled.

Examples:
  sitectl enable example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runEnable,
}

func init() {
	enableCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload nginx")

	rootCmd.AddCommand(enableCmd)
}

func runEnable(cmd *cobra.Command, args []string) error {
	domain := args[0]

	if err := config.ValidateDomain(domain); err != nil {
		return err
	}
	if err := requireRoot(); err != nil {
		return err
	}

	reg, _, err := loadRegistry()
	if err != nil {
		return err
	}

	output.Info("Enabling site...")
	if err := reg.Enable(domain); err != nil {
		return err
	}

	if err := verifyAndReload(!noReload); err != nil {
		return err
	}

	return outputResult(
		CommandResult{Success: true, Domain: domain, Action: "enable"},
		"Site %s enabled", domain,
	)
}
