package cmd

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sweepproject/sweeprunner/internal/runner/configuration"
	"github.com/sweepproject/sweeprunner/internal/sweep"
	"github.com/sweepproject/sweeprunner/internal/sweepctl"
)

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sweepctl.yaml)")
	rootCmd.PersistentFlags().String("specsFile", "", "identifier of the sweep specification file")
	rootCmd.PersistentFlags().String("dataDir", "", "data directory containing the specs/ folder; empty keeps the spec identifier opaque")
	rootCmd.PersistentFlags().Int("columnWidth", sweep.DefaultColumnWidth, "width of the fastest-moving sweep dimension")
	rootCmd.PersistentFlags().String("handlerCommand", "", "analysis handler command, invoked as: command args... <specsFile> <row> <col>")
	rootCmd.PersistentFlags().StringSlice("handlerArgs", nil, "leading arguments for the analysis handler")
	rootCmd.PersistentFlags().String("outputFile", "", "append-mode sink for decomposed coordinates")
	viper.BindPFlag("specsFile", rootCmd.PersistentFlags().Lookup("specsFile"))
	viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("dataDir"))
	viper.BindPFlag("columnWidth", rootCmd.PersistentFlags().Lookup("columnWidth"))
	viper.BindPFlag("handler.command", rootCmd.PersistentFlags().Lookup("handlerCommand"))
	viper.BindPFlag("handler.args", rootCmd.PersistentFlags().Lookup("handlerArgs"))
	viper.BindPFlag("outputFile", rootCmd.PersistentFlags().Lookup("outputFile"))

	rootCmd.AddCommand(
		planCmd,
		validateCmd,
		runCmd,
		versionCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "sweepctl command",
	Short: "sweepctl inspects and runs parameter-sweep array jobs.",
	Long: `sweepctl inspects and runs parameter-sweep array jobs.

Persistent config can be saved in a config file so it doesn't have to be
specified on every command.

Example structure:

specsFile: example
dataDir: /data
handler:
  command: python
  args: [scripts/CS_run.py]

The location of this file can be passed in using --config argument or picked
from $HOME/.sweepctl.yaml.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".sweepctl")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
		default:
			fmt.Println("Can't read config:", err)
			os.Exit(1)
		}
	}
}

// loadApp builds the application from the merged flag/file/env configuration.
func loadApp() *sweepctl.App {
	app := sweepctl.New()
	config := &configuration.SweepConfig{}
	if err := viper.Unmarshal(config); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	app.Config = config
	return app
}
