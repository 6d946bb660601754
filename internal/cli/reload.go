package cli

import (
	"github.com/spf13/cobra"

	"sitectl/internal/output"
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload nginx",
	Long: `Ask the running nginx to reload its configuration, via systemctl
with a fallback to nginx -s reload.

Examples:
  sitectl reload`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reloadServer()
	},
}

func init() {
	rootCmd.AddCommand(reloadCmd)
}

// reloadServer reloads nginx. Failure is reported but the tool keeps
// running; a missed reload never invalidates the files on disk.
func reloadServer() error {
	if err := requireRoot(); err != nil {
		return err
	}

	output.Info("Reloading nginx...")
	if err := deps.Server.Reload(); err != nil {
		output.Warn("Reload failed: %v", err)
		return nil
	}

	return outputResult(
		map[string]interface{}{"success": true, "action": "reload"},
		"nginx reloaded",
	)
}
