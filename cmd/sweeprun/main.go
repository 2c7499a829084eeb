package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sweepproject/sweeprunner/internal/common"
	"github.com/sweepproject/sweeprunner/internal/common/sweeperrors"
	"github.com/sweepproject/sweeprunner/internal/runner"
	"github.com/sweepproject/sweeprunner/internal/runner/configuration"
	"github.com/sweepproject/sweeprunner/internal/sweep"
)

const CustomConfigLocation string = "config"

func init() {
	pflag.String(CustomConfigLocation, "", "Fully qualified path to application configuration file")
	pflag.Int("index", -1, "Task index to run; when omitted the scheduler's array-task environment variable is used")
	pflag.Parse()
}

// sweeprun is the per-task shim of an array job: it resolves the task index,
// decomposes it into a sweep coordinate and hands off to the configured
// analysis handler. Its exit status is the handler's exit status.
func main() {
	common.ConfigureLogging()
	common.BindCommandlineArguments()

	viper.SetDefault("columnWidth", sweep.DefaultColumnWidth)

	var config configuration.SweepConfig
	userSpecifiedConfig := viper.GetString(CustomConfigLocation)
	common.LoadConfig(&config, "./config/sweeprun", userSpecifiedConfig)

	if err := config.Validate(); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	index := viper.GetInt("index")
	if index < 0 {
		var err error
		index, err = runner.TaskIndexFromEnv(os.LookupEnv)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
	}

	run, err := runner.New(&config).Run(context.Background(), index)
	if err != nil {
		os.Exit(sweeperrors.ExitCodeFromError(err))
	}
	log.Infof("task %d finished at coordinate (%d, %d)", run.TaskIndex, run.Coordinate.Row, run.Coordinate.Col)
}
