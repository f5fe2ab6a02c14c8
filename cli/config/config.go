// Copyright (c) PolicyOps, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/policyops/gporeport/logger"
)

/*
	Configuration is loaded in this order:
	ENV -> --config file -> ./gporeport.yml -> $HOME/.config/gporeport/gporeport.yml -> defaults
*/

const configSourceBase64 = "$GPOREPORT_CONFIG_BASE64"

var (
	// DefaultConfigFile is the name of the config file that is probed in
	// the well-known locations
	DefaultConfigFile = "gporeport.yml"

	// Path is the currently loaded config location or default if no config exists
	Path             string
	Source           string
	UserProvidedPath string
	LoadedConfig     bool

	AppFs = afero.NewOsFs()
)

// Init registers the config flag and hooks config loading into cobra
func Init(rootCmd *cobra.Command) {
	cobra.OnInitialize(InitViperConfig)
	// persistent flags are global for the application
	rootCmd.PersistentFlags().StringVar(&UserProvidedPath, "config", "", "Set config file path (default $HOME/.config/gporeport/gporeport.yml)")
}

func InitViperConfig() {
	viper.SetConfigType("yaml")

	Path = strings.TrimSpace(UserProvidedPath)
	// base 64 config env setting has always precedence
	if len(os.Getenv("GPOREPORT_CONFIG_BASE64")) > 0 {
		Source = configSourceBase64
		decodedData, err := base64.StdEncoding.DecodeString(os.Getenv("GPOREPORT_CONFIG_BASE64"))
		if err != nil {
			log.Fatal().Err(err).Msg("could not parse base64 config")
		}
		err = viper.ReadConfig(bytes.NewBuffer(decodedData))
		if err != nil {
			log.Fatal().Err(err).Msg("could not read base64 config")
		}
	} else if len(Path) == 0 && len(os.Getenv("GPOREPORT_CONFIG_PATH")) > 0 {
		// fallback to env variable if provided, but only if --config is not used
		Source = "$GPOREPORT_CONFIG_PATH"
		Path = os.Getenv("GPOREPORT_CONFIG_PATH")
	} else if len(Path) != 0 {
		Source = "--config"
	} else {
		Source = "default"
	}

	// check if the default config file is available
	if Path == "" && Source != configSourceBase64 {
		Path = autodetectConfig()
	}

	if Source != configSourceBase64 {
		// we set this here, so that sub commands that rely on writing config, can use the default config
		viper.SetConfigFile(Path)

		// if the file exists, load it
		_, err := AppFs.Stat(Path)
		if err == nil {
			log.Debug().Str("configfile", viper.ConfigFileUsed()).Msg("try to load local config file")
			if err := viper.ReadInConfig(); err == nil {
				LoadedConfig = true
			} else {
				LoadedConfig = false
				log.Error().Err(err).Str("path", Path).Msg("could not read config file")
			}
		}
	}

	// by default it uses console output, for production we may want to set it to json output
	if viper.GetString("log.format") == "json" {
		logger.UseJSONLogging(logger.LogOutputWriter)
	}

	// override values with env variables
	viper.SetEnvPrefix("gporeport")
	// to parse env variables properly we need to replace some chars
	// all hyphens need to be underscores
	// all dots need to be underscores
	replacer := strings.NewReplacer("-", "_", ".", "_")
	viper.SetEnvKeyReplacer(replacer)

	// read in environment variables that match
	viper.AutomaticEnv()
}

func autodetectConfig() string {
	// try config option in current directory
	if _, err := AppFs.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFile
	}
	return filepath.Join(home, ".config", "gporeport", DefaultConfigFile)
}

func DisplayUsedConfig() {
	if !LoadedConfig && len(UserProvidedPath) > 0 {
		log.Warn().Msg("could not load configuration file " + UserProvidedPath)
	} else if LoadedConfig {
		log.Info().Msg("loaded configuration from " + viper.ConfigFileUsed() + " using source " + Source)
	} else if Source == configSourceBase64 {
		log.Info().Msg("loaded configuration from environment using source " + Source)
	} else {
		log.Debug().Msg("no configuration file provided, using defaults")
	}
}

// Read loads the viper config into a struct
func Read() (*Config, error) {
	var opts Config
	err := viper.Unmarshal(&opts)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode into config struct")
	}

	return &opts, nil
}

type Config struct {
	// directory connection
	Domain       string `json:"domain,omitempty" mapstructure:"domain"`
	LdapURL      string `json:"ldap-url,omitempty" mapstructure:"ldap-url"`
	LdapBaseDN   string `json:"ldap-base-dn,omitempty" mapstructure:"ldap-base-dn"`
	LdapUser     string `json:"ldap-user,omitempty" mapstructure:"ldap-user"`
	LdapPassword string `json:"ldap-password,omitempty" mapstructure:"ldap-password"`
	StartTLS     bool   `json:"starttls,omitempty" mapstructure:"starttls"`
	Insecure     bool   `json:"insecure,omitempty" mapstructure:"insecure"`

	// report generation
	Workers int `json:"workers,omitempty" mapstructure:"workers"`

	// output defaults
	Output string `json:"output,omitempty" mapstructure:"output"`
}
