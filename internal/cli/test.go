package cli

import (
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the nginx configuration syntax",
	Long: `Run the nginx syntax check and report the result.

Examples:
  sitectl test`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return testConfiguration()
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}

// testConfiguration runs the syntax check and reports the outcome.
func testConfiguration() error {
	if err := deps.Server.Test(); err != nil {
		return err
	}
	return outputResult(
		map[string]interface{}{"success": true, "action": "test"},
		"nginx configuration syntax is OK",
	)
}
