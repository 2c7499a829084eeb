package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	runCmd.Flags().Int("parallelism", 1, "Number of tasks to run concurrently")
	viper.BindPFlag("parallelism", runCmd.Flags().Lookup("parallelism"))
}

var runCmd = &cobra.Command{
	Use:   "run <firstIndex> <lastIndex>",
	Short: "Run a contiguous range of sweep tasks locally",
	Long: `Run a contiguous range of sweep tasks locally, standing in for the
cluster scheduler's array declaration. Tasks are independent: failures are
reported at the end and never retried.

Example:

sweepctl run 1000 10000 --parallelism 8
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		first, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Errorf("first index %q is not an integer", args[0])
		}
		last, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Errorf("last index %q is not an integer", args[1])
		}
		return loadApp().Run(cmd.Context(), first, last)
	},
}
