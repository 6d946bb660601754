package cli

import (
	"github.com/spf13/cobra"

	"sitectl/internal/config"
	"sitectl/internal/output"
	"sitectl/internal/ssl"
)

var renewCmd = &cobra.Command{
	Use:   "renew <domain>",
	Short: "Renew a site's certificate",
	Long: `Renew the Let's Encrypt certificate for a site through certbot.
Certbot reloads nginx itself when the renewal changes the installed
certificate.

Examples:
  sitectl renew example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runRenew,
}

func init() {
	rootCmd.AddCommand(renewCmd)
}

func runRenew(cmd *cobra.Command, args []string) error {
	domain := args[0]

	if err := config.ValidateDomain(domain); err != nil {
		return err
	}
	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Renewing certificate for %s...", domain)
	if err := ssl.Renew(domain); err != nil {
		return err
	}

	return outputResult(
		CommandResult{Success: true, Domain: domain, Action: "renew"},
		"Certificate renewed for %s", domain,
	)
}
