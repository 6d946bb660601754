package cli

import (
	"os"

	"github.com/spf13/cobra"

	"sitectl/internal/logger"
	"sitectl/internal/output"
)

var (
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command. Invoked without arguments it enters
// the interactive menu; with an unrecognized argument it prints usage and
// exits without error.
var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Nginx site management CLI",
	Long: `sitectl generates nginx virtual-host configurations from templates,
toggles sites on and off through sites-enabled symlinks, provisions
Let's Encrypt certificates via certbot, and reloads nginx.

Run without arguments for the interactive menu, or use the subcommands
directly.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			// Informational, not an error: unknown input changes nothing
			return cmd.Usage()
		}
		return runMenu()
	},
}

// Execute runs the root command. It exits 1 when nginx is missing, which is
// the one fatal pre-flight condition, and otherwise maps command errors to
// exit code 1 after printing them.
func Execute() {
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if !deps.Server.IsInstalled() {
		output.Error("nginx is not installed or not on PATH")
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
