// Package conf loads application settings from defaults, an optional YAML
// config file and GONOTIFY_* environment variables via viper.
package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tphakala/gonotify/internal/errors"
)

// Settings holds the full application configuration.
type Settings struct {
	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug"`

	// AppID identifies this application to notification services; it is
	// used as the desktop application id and the HTTP User-Agent.
	AppID string `mapstructure:"appid"`

	Asset AssetSettings `mapstructure:"asset"`
	Log   LogSettings   `mapstructure:"log"`

	// URLs are the default notification targets used when a command is
	// invoked without explicit --url flags.
	URLs []string `mapstructure:"urls"`
}

// AssetSettings configures icon asset lookup for desktop notifiers.
type AssetSettings struct {
	// Dir is the directory holding icon assets. Empty disables icons.
	Dir string `mapstructure:"dir"`
	// Theme selects the asset theme file prefix.
	Theme string `mapstructure:"theme"`
	// CacheTTL bounds how long resolved icon paths are memoized.
	CacheTTL time.Duration `mapstructure:"cachettl"`
}

// LogSettings configures the optional delivery log file.
type LogSettings struct {
	// File is the path of the delivery log. Empty disables file logging.
	File string `mapstructure:"file"`
	// Rotation is daily, weekly or size.
	Rotation string `mapstructure:"rotation"`
	// MaxSizeMB applies to size-based rotation.
	MaxSizeMB int `mapstructure:"maxsizemb"`
}

// Load reads settings from the given config file, or from the default
// search paths when configFile is empty.
func Load(configFile string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("gonotify")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("gonotify")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/gonotify")
		v.AddConfigPath("/etc/gonotify")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			// No config file is fine; defaults apply.
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return settings, nil
}
