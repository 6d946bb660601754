package cli

import (
	"github.com/spf13/cobra"

	"sitectl/internal/output"
	"sitectl/internal/registry"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all sites",
	Long: `List every site in sites-available with its enabled state.

Examples:
  sitectl list
  sitectl list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSites()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// listSites prints the registry contents, sorted by site name.
func listSites() error {
	reg, _, err := loadRegistry()
	if err != nil {
		return err
	}

	entries, err := reg.List()
	if err != nil {
		return err
	}

	if jsonOutput {
		if entries == nil {
			entries = []registry.Entry{}
		}
		return output.JSON(entries)
	}

	if len(entries) == 0 {
		output.Info("No sites configured")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		state := "disabled"
		if e.Enabled {
			state = "enabled"
		}
		rows = append(rows, []string{e.Name, state})
	}
	output.Table([]string{"SITE", "STATE"}, rows)
	return nil
}
