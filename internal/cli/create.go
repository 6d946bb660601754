package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sitectl/internal/config"
	"sitectl/internal/output"
	"sitectl/internal/ssl"
	"sitectl/internal/template"
)

var (
	siteType   string
	siteRoot   string
	sitePHP    string
	sitePort   int
	withSSL    bool
	sslEmail   string
	withWWW    bool
	wwwPrimary bool
	noReload   bool
)

var createCmd = &cobra.Command{
	Use:   "create <domain>",
	Short: "Create and enable a site",
	Long: `Render a virtual-host configuration from the template for the site
type, write it to sites-available, and enable it.

Examples:
  sitectl create example.com --type static --root /var/www/example.com
  sitectl create example.com --type laravel --root /var/www/app --php 8.2
  sitectl create api.example.com --type node --port 3000
  sitectl create example.com --type wordpress --root /var/www/wp --ssl --email admin@example.com
  sitectl create example.com --type static --root /var/www/html --www --www-primary`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&siteType, "type", "t", config.TypeStatic, "Site type (static, laravel, node, wordpress, spa, proxy)")
	createCmd.Flags().StringVarP(&siteRoot, "root", "r", "", "Document root path")
	createCmd.Flags().StringVar(&sitePHP, "php", "", "PHP version (e.g., 8.2)")
	createCmd.Flags().IntVarP(&sitePort, "port", "p", 0, "Backend port (for node and proxy types)")
	createCmd.Flags().BoolVar(&withSSL, "ssl", false, "Request a Let's Encrypt certificate (requires certbot)")
	createCmd.Flags().StringVarP(&sslEmail, "email", "e", "", "Email for Let's Encrypt (required with --ssl)")
	createCmd.Flags().BoolVar(&withWWW, "www", false, "Also serve the www. host")
	createCmd.Flags().BoolVar(&wwwPrimary, "www-primary", false, "Make the www. host canonical (implies --www)")
	createCmd.Flags().BoolVar(&noReload, "no-reload", false, "Don't reload nginx")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	site := &config.Site{
		Domain:     args[0],
		Type:       siteType,
		Root:       siteRoot,
		PHPVersion: sitePHP,
		Port:       sitePort,
		SSL:        withSSL,
		Email:      sslEmail,
		WWW:        withWWW || wwwPrimary,
		WWWPrimary: wwwPrimary,
	}

	if err := validateRoot(site.Root); err != nil {
		return err
	}
	if config.NeedsRoot(site.Type) && site.Root == "" && config.IsValidType(site.Type) {
		site.Root = "/var/www/" + site.Domain
	}

	return createSite(site, !noReload)
}

// createSite is the create flow shared by the command and the menu:
// validate, render, write+enable, verify, reload, then optionally issue a
// certificate. The template is rendered before anything touches the disk so
// a missing template aborts cleanly.
func createSite(site *config.Site, reload bool) error {
	reg, settings, err := loadRegistry()
	if err != nil {
		return err
	}

	if site.PHPVersion == "" && config.NeedsPHP(site.Type) {
		site.PHPVersion = settings.DefaultPHP
	}
	if site.Email == "" && site.SSL {
		site.Email = settings.Email
	}

	if err := site.Validate(); err != nil {
		return err
	}

	content, err := template.Render(site)
	if err != nil {
		return err
	}

	if err := requireRoot(); err != nil {
		return err
	}

	if reg.Exists(site.Domain) {
		output.Warn("Site %s already exists, overwriting", site.Domain)
	}

	// Create the document root so nginx does not fail on a missing path
	if site.Root != "" {
		if err := os.MkdirAll(site.Root, 0755); err != nil {
			return fmt.Errorf("failed to create document root: %w", err)
		}
	}

	output.Info("Writing site configuration...")
	if err := reg.Write(site.Domain, content); err != nil {
		return err
	}

	// On a failed syntax check the file and symlink stay in place for
	// manual correction; nothing below runs.
	if err := verifyAndReload(reload); err != nil {
		return err
	}

	if site.SSL {
		issueCertificate(site)
	}

	return outputResult(
		CommandResult{Success: true, Domain: site.Domain, Action: "create"},
		"Site %s created and enabled", site.Domain,
	)
}

// issueCertificate runs certbot for the site. Both a missing certbot and a
// failed issuance leave the site enabled without TLS; neither aborts the
// flow.
func issueCertificate(site *config.Site) {
	if !ssl.IsInstalled() {
		output.Warn("certbot is not installed, skipping certificate; %s", ssl.InstallHint)
		return
	}

	output.Info("Requesting certificate for %s...", site.Domain)
	if err := ssl.Issue(site.Domain, site.Email, site.WWW); err != nil {
		output.Warn("Certificate issuance failed, site stays enabled without TLS: %v", err)
		return
	}
	output.Success("Certificate installed for %s", site.Domain)
}
