package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	planCmd.Flags().Bool("yaml", false, "Output the plan as yaml instead of text")
	viper.BindPFlag("planYaml", planCmd.Flags().Lookup("yaml"))
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the sweep grid declared by the configured specs file",
	Long: `Show the sweep grid declared by the configured specs file: the iterated
variables with their value ladders, the total number of grid points, and the
column width array-task indices are decomposed by.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return loadApp().Plan(viper.GetBool("planYaml"))
	},
}
