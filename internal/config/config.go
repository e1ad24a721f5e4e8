package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/kyaoi/swipeview/internal/arbiter"
	"github.com/kyaoi/swipeview/internal/swipe"
)

// Config holds application configuration.
type Config struct {
	Swipe SwipeConfig `mapstructure:"swipe"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
}

// SwipeConfig holds the row control settings.
type SwipeConfig struct {
	Offset              float64       `mapstructure:"offset"`
	ValidationThreshold float64       `mapstructure:"validation_threshold"`
	OpenOnTap           bool          `mapstructure:"open_on_tap"`
	CloseOnTap          bool          `mapstructure:"close_on_tap"`
	DeadZone            float64       `mapstructure:"dead_zone"`
	SettleDuration      time.Duration `mapstructure:"settle_duration"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Arbitration   string `mapstructure:"arbitration"`
	PullToRefresh bool   `mapstructure:"pull_to_refresh"`
	RowHeight     int    `mapstructure:"row_height"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Debug bool   `mapstructure:"debug"`
}

// Load reads configuration from file and env. Env var overrides use prefix SWIPEVIEW_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("swipe.offset", swipe.DefaultSwipeOffset)
	v.SetDefault("swipe.validation_threshold", swipe.DefaultValidationThreshold)
	v.SetDefault("swipe.open_on_tap", false)
	v.SetDefault("swipe.close_on_tap", false)
	v.SetDefault("swipe.dead_zone", 0.5)
	v.SetDefault("swipe.settle_duration", "180ms")
	v.SetDefault("ui.arbitration", "intercept")
	v.SetDefault("ui.pull_to_refresh", true)
	v.SetDefault("ui.row_height", 3)
	v.SetDefault("log.file", "")
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SWIPEVIEW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "swipeview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SWIPEVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if _, err := c.Control(); err != nil {
		return Config{}, err
	}
	if _, err := arbiter.ParseMode(c.UI.Arbitration); err != nil {
		return Config{}, err
	}
	if c.UI.RowHeight < 1 {
		c.UI.RowHeight = 1
	}
	return c, nil
}

// Control converts the swipe settings to a control configuration.
func (c Config) Control() (swipe.Config, error) {
	sc := swipe.Config{
		SwipeOffset:         c.Swipe.Offset,
		ValidationThreshold: c.Swipe.ValidationThreshold,
		OpenOnTap:           c.Swipe.OpenOnTap,
		CloseOnTap:          c.Swipe.CloseOnTap,
	}
	if err := sc.Validate(); err != nil {
		return swipe.Config{}, errors.Wrap(err, "swipe config")
	}
	return sc, nil
}

// Mode returns the configured arbitration mode.
func (c Config) Mode() arbiter.Mode {
	m, err := arbiter.ParseMode(c.UI.Arbitration)
	if err != nil {
		return arbiter.ModeIntercept
	}
	return m
}
