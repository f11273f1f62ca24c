package utils

import (
	stderrors "errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/gi4nks/wrap-pkg-config/internal/errors"
)

const (
	// DefaultTool is the conventional name of the configuration-lookup tool.
	DefaultTool = "pkg-config"

	// DefaultLogLevel is used when no level, or an unknown one, is configured.
	DefaultLogLevel = "warn"

	// EnvPrefix is the prefix of the wrapper's own environment variables.
	EnvPrefix = "WRAP_PKG_CONFIG"

	configName = ".wrap-pkg-config"
)

type Configuration struct {
	Tool       string
	Platform   string
	LogLevel   string
	DebugMode  bool
	ConfigFile string

	// problems holds settings that were ignored in favour of defaults.
	problems []error
}

// NewConfiguration loads the configuration from the environment and the
// optional $HOME/.wrap-pkg-config.yaml file.
func NewConfiguration() *Configuration {
	return LoadConfiguration(viper.New())
}

// LoadConfiguration fills a Configuration from v. Defaults and environment
// bindings are registered on v before reading. Bad settings never fail the
// load: they fall back to defaults and are reported by Problems.
func LoadConfiguration(v *viper.Viper) *Configuration {
	v.SetDefault("tool", DefaultTool)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)

	// The tool name is never taken from PKG_CONFIG.
	v.SetEnvPrefix(EnvPrefix)
	_ = v.BindEnv("tool")
	_ = v.BindEnv("debug")
	_ = v.BindEnv("log_level")

	c := &Configuration{Platform: runtime.GOOS}

	if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(home)

		if err := v.ReadInConfig(); err == nil {
			c.ConfigFile = v.ConfigFileUsed()
		} else {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				c.problems = append(c.problems,
					errors.NewError(errors.ErrConfigInvalid, "ignoring config file "+v.ConfigFileUsed(), err))
			}
		}
	}

	c.Tool = strings.TrimSpace(v.GetString("tool"))
	if c.Tool == "" {
		c.Tool = DefaultTool
		c.problems = append(c.problems,
			errors.NewError(errors.ErrConfigInvalid, "tool must not be empty, using "+DefaultTool, nil))
	}

	c.LogLevel = strings.TrimSpace(v.GetString("log_level"))
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		c.problems = append(c.problems,
			errors.NewError(errors.ErrConfigInvalid, "unknown log level "+c.LogLevel+", using "+DefaultLogLevel, err))
		c.LogLevel = DefaultLogLevel
	}

	c.DebugMode = v.GetBool("debug")

	return c
}

// Problems returns the settings that were replaced by defaults.
func (c *Configuration) Problems() []error {
	return c.problems
}

// IsWindows reports whether the configured platform is the one on which the
// tool is never run.
func (c *Configuration) IsWindows() bool {
	return c.Platform == "windows"
}

func (c *Configuration) String() string {
	return fmt.Sprintf(`{
	"tool": "%s",
	"platform": "%s",
	"logLevel": "%s",
	"debugMode": %t,
	"configFile": "%s"
}`, c.Tool, c.Platform, c.LogLevel, c.DebugMode, c.ConfigFile)
}
