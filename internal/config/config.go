// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvironmentPrefix namespaces every environment variable read by allfiles.
	EnvironmentPrefix = "ALLFILES"

	logLevelKey = "log_level"
	maxDepthKey = "max_depth"

	// DefaultLogLevel is used when ALLFILES_LOG_LEVEL is not set.
	DefaultLogLevel = "info"
	// DefaultMaxDepth is used when ALLFILES_MAX_DEPTH is not set.
	DefaultMaxDepth = 512

	errorDecodeFormat   = "decode environment configuration: %w"
	errorLogLevelFormat = "invalid %s_LOG_LEVEL %q: %w"
	errorMaxDepthFormat = "invalid %s_MAX_DEPTH %d: must be positive"
)

// ApplicationConfiguration holds settings that tune diagnostics and traversal limits.
type ApplicationConfiguration struct {
	LogLevel string `mapstructure:"log_level"`
	MaxDepth int    `mapstructure:"max_depth"`
}

// LoadApplicationConfiguration reads ALLFILES_* environment variables over the defaults.
// There is no configuration file.
func LoadApplicationConfiguration() (ApplicationConfiguration, error) {
	reader := viper.New()
	reader.SetEnvPrefix(EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	reader.SetDefault(logLevelKey, DefaultLogLevel)
	reader.SetDefault(maxDepthKey, DefaultMaxDepth)
	for _, key := range []string{logLevelKey, maxDepthKey} {
		if bindError := reader.BindEnv(key); bindError != nil {
			return ApplicationConfiguration{}, fmt.Errorf(errorDecodeFormat, bindError)
		}
	}

	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf(errorDecodeFormat, decodeError)
	}
	configuration.LogLevel = strings.ToLower(strings.TrimSpace(configuration.LogLevel))
	if validationError := configuration.Validate(); validationError != nil {
		return ApplicationConfiguration{}, validationError
	}
	return configuration, nil
}

// Validate reports settings that cannot be applied.
func (configuration ApplicationConfiguration) Validate() error {
	if _, parseError := zapcore.ParseLevel(configuration.LogLevel); parseError != nil {
		return fmt.Errorf(errorLogLevelFormat, EnvironmentPrefix, configuration.LogLevel, parseError)
	}
	if configuration.MaxDepth <= 0 {
		return fmt.Errorf(errorMaxDepthFormat, EnvironmentPrefix, configuration.MaxDepth)
	}
	return nil
}
