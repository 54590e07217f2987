package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log LogConfig
	UI  UIConfig
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File  string
	Level string
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Mouse     bool
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		UI:  UIConfig{AltScreen: true, Mouse: true},
	}
}

// DefaultPath is the config file location used when CATBOT_CONFIG is unset.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "catbot", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix CATBOT_.
// path overrides CATBOT_CONFIG; a missing file at the default location is not an error.
func Load(path string) (Config, error) {
	def := Default()
	v := viper.New()

	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.mouse", def.UI.Mouse)

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("CATBOT_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}

	v.SetEnvPrefix("CATBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" && (explicit || fileExists(path)) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return c, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
