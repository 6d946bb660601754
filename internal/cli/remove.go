package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"sitectl/internal/config"
	"sitectl/internal/errors"
	"sitectl/internal/output"
)

var forceRemove bool

var removeCmd = &cobra.Command{
	Use:     "remove <domain>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a site",
	Long: `Delete a site's config file and its enabled symlink.

Examples:
  sitectl remove example.com
  sitectl rm example.com --force`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "Skip the confirmation prompt")
	removeCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload nginx")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	domain := args[0]

	if err := config.ValidateDomain(domain); err != nil {
		return err
	}

	if !forceRemove {
		output.Prompt("Are you sure you want to remove site '%s'? [y/N]: ", domain)
		answer, _ := deps.StdinReader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			output.Info("Removal cancelled")
			return nil
		}
	}

	return removeSite(domain, !noReload)
}

// removeSite deletes the symlink and config file, then verifies and reloads.
// An unknown site is reported and nothing changes.
func removeSite(domain string, reload bool) error {
	if err := requireRoot(); err != nil {
		return err
	}

	reg, _, err := loadRegistry()
	if err != nil {
		return err
	}

	output.Info("Removing site configuration...")
	if err := reg.Remove(domain); err != nil {
		if errors.Is(err, errors.ErrSiteNotFound) {
			output.Warn("Site %s not found, nothing to remove", domain)
			return nil
		}
		return err
	}

	if err := verifyAndReload(reload); err != nil {
		// The site is already gone; a failing check concerns other configs
		output.Warn("Post-removal check failed: %v", err)
	}

	return outputResult(
		CommandResult{Success: true, Domain: domain, Action: "remove"},
		"Site %s removed", domain,
	)
}
