package common

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoadConfig reads the application configuration from the default path,
// overridden by a user-specified file when given, and unmarshals it into
// config. Configuration errors are fatal at startup.
func LoadConfig(config interface{}, defaultPath string, userSpecifiedPath string) {
	if userSpecifiedPath != "" {
		viper.SetConfigFile(userSpecifiedPath)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(defaultPath)
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || userSpecifiedPath != "" {
			log.Error(err)
			os.Exit(-1)
		}
	}
	if err := viper.Unmarshal(config); err != nil {
		log.Error(err)
		os.Exit(-1)
	}
}

// BindCommandlineArguments makes every registered pflag overridable via
// viper, so flags, config file and environment resolve through one path.
func BindCommandlineArguments() {
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Error(err)
		os.Exit(-1)
	}
}

func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
}

// ConfigureCommandLineLogging keeps CLI output clean: messages only, no
// timestamps, written to stderr so command output stays parseable.
func ConfigureCommandLineLogging() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)
}
