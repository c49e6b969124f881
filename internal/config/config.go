package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds settings that may come from a config file, PANGFA_*
// environment variables or command-line flags, in increasing priority.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Contract ContractConfig `mapstructure:"contract"`
	Anchors  AnchorsConfig  `mapstructure:"anchors"`
	Share    ShareConfig    `mapstructure:"share"`
	Output   OutputConfig   `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EffectiveLevel is Level lower-cased, or "info" when it is not a known level.
func (c LogConfig) EffectiveLevel() string {
	switch l := strings.ToLower(c.Level); l {
	case "debug", "info", "warn", "error":
		return l
	}
	return "info"
}

// EffectiveFormat is Format, or "console" when it is not a known format.
func (c LogConfig) EffectiveFormat() string {
	if c.Format == "json" {
		return "json"
	}
	return "console"
}

type ContractConfig struct {
	ComplementEdges bool `mapstructure:"complement_edges"`
}

type AnchorsConfig struct {
	Rank int `mapstructure:"rank"`
}

type ShareConfig struct {
	Sensitivity float64 `mapstructure:"sensitivity"`
}

type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

// Keys shared with flag bindings.
const (
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyComplementEdges = "contract.complement_edges"
	KeyAnchorRank      = "anchors.rank"
	KeySensitivity     = "share.sensitivity"
	KeyPretty          = "output.pretty"
)

// NewViper returns a viper instance with defaults and environment lookup
// configured. PANGFA_LOG_LEVEL maps to log.level and so on.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyComplementEdges, false)
	v.SetDefault(KeyAnchorRank, -1)
	v.SetDefault(KeySensitivity, 1.0)
	v.SetDefault(KeyPretty, false)

	v.SetEnvPrefix("PANGFA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if non-empty) into v and decodes the merged settings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &cfg, nil
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Log.EffectiveLevel() != strings.ToLower(c.Log.Level) {
		warnings = append(warnings, fmt.Sprintf("unknown log level %q, using info", c.Log.Level))
	}
	if c.Log.EffectiveFormat() != c.Log.Format {
		warnings = append(warnings, fmt.Sprintf("unknown log format %q, using console", c.Log.Format))
	}
	if c.Share.Sensitivity < 0 || c.Share.Sensitivity > 1 {
		warnings = append(warnings, fmt.Sprintf("share sensitivity %.2f is outside [0, 1]", c.Share.Sensitivity))
	}
	if c.Anchors.Rank < -1 {
		warnings = append(warnings, fmt.Sprintf("anchor rank %d is below -1 and disables nothing", c.Anchors.Rank))
	}
	return warnings
}
