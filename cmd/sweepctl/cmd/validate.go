package cmd

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the sweep configuration and specs file",
	Long: `Validate the sweep configuration and specs file. All configuration
violations are reported together, before any task would run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return loadApp().Validate()
	},
}
