package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about edgectl",
		RunE: func(cmd *cobra.Command, args []string) error {
			type versionInfo struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit"  yaml:"commit"`
				Built   string `json:"built"   yaml:"built"`
			}

			info := versionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			structured, err := renderStructured(info)
			if structured || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Version", version)
			_ = table.Append("Commit", commit)
			_ = table.Append("Built", date)

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
