package cli

import (
	"github.com/spf13/cobra"

	"sitectl/internal/config"
	"sitectl/internal/output"
)

var disableCmd = &cobra.Command{
	Use:   "disable <domain>",
	Short: "Disable a site",
	Long: `Disable a site by removing its symlink from sites-enabled. The
config file in sites-available is kept.

Examples:
  sitectl disable example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runDisable,
}

func init() {
	disableCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload nginx")

	rootCmd.AddCommand(disableCmd)
}

func runDisable(cmd *cobra.Command, args []string) error {
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

	output.Info("Disabling site...")
	if err := reg.Disable(domain); err != nil {
		return err
	}

	if err := verifyAndReload(!noReload); err != nil {
		return err
	}

	return outputResult(
		CommandResult{Success: true, Domain: domain, Action: "disable"},
		"Site %s disabled", domain,
	)
}
