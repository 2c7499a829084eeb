package cmd

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print client version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return loadApp().Version()
	},
}
