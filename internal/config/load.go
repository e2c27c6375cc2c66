package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"listprof/internal/container"
)

// EnvPrefix is prepended to every environment override, e.g.
// LISTPROF_LENGTH or LISTPROF_HISTORY_TYPE.
const EnvPrefix = "LISTPROF"

// SetDefaults installs the default value of every key.
func SetDefaults() {
	var kinds []string
	for _, k := range container.Kinds() {
		kinds = append(kinds, string(k))
	}

	viper.SetDefault("length", 100000)
	viper.SetDefault("containers", kinds)
	viper.SetDefault("format", "console")
	viper.SetDefault("talkative.output", "stdout")
	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.type", "file")
	viper.SetDefault("history.dsn", "")
	viper.SetDefault("compare.threshold", 10.0)
	viper.SetDefault("metrics.addr", "")
	viper.SetDefault("metrics.textfile", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
}

// Load initializes the configuration from file and environment variables.
// A missing config file is not an error; an unreadable one is.
func Load(cfgFile string) error {
	// explicit .env loading, a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if cfgFile == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}
