package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings holds runtime options. Env var overrides use prefix TXNREPORT_.
type Settings struct {
	Log    LogSettings    `mapstructure:"log"`
	Report ReportSettings `mapstructure:"report"`
}

// LogSettings controls diagnostics written to stderr.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportSettings controls report presentation.
type ReportSettings struct {
	Color string `mapstructure:"color"`
}

var (
	logFormats  = []string{"console", "json"}
	colorModes  = []string{"auto", "always", "never"}
	flagsByKeys = map[string]string{
		"log.level":    "log-level",
		"log.format":   "log-format",
		"report.color": "color",
	}
)

// LoadSettings resolves settings from defaults, TXNREPORT_* environment
// variables and, when flags is non-nil, the matching command-line flags.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("report.color", "auto")

	v.SetEnvPrefix("TXNREPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagsByKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
	s.Report.Color = strings.ToLower(strings.TrimSpace(s.Report.Color))
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects unknown levels, formats and colour modes.
func (s Settings) Validate() error {
	if _, err := zerolog.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if !slices.Contains(logFormats, s.Log.Format) {
		return fmt.Errorf("log.format: %q is not one of %s", s.Log.Format, strings.Join(logFormats, ", "))
	}
	if !slices.Contains(colorModes, s.Report.Color) {
		return fmt.Errorf("report.color: %q is not one of %s", s.Report.Color, strings.Join(colorModes, ", "))
	}
	return nil
}
