package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/schedlint/internal/rules"
)

// Config is the top-level schedlint configuration.
type Config struct {
	AutoValidate bool                    `mapstructure:"auto_validate"`
	Planner      Planner                 `mapstructure:"planner"`
	Output       Output                  `mapstructure:"output"`
	Rules        map[string]RuleOverride `mapstructure:"rules"`
}

// Planner defines the default placement policy.
type Planner struct {
	DayStart      string `mapstructure:"day_start"`
	BufferMinutes int    `mapstructure:"buffer_minutes"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// RuleOverride is a per-rule user override, keyed by rule ID in the config
// file. Pointer fields distinguish "not set" from explicit zero values.
type RuleOverride struct {
	Enabled              *bool   `mapstructure:"enabled"`
	Severity             *string `mapstructure:"severity"`
	BufferMinutes        int     `mapstructure:"buffer_minutes"`
	MaxEventsPerDay      int     `mapstructure:"max_events_per_day"`
	MinDurationMinutes   int     `mapstructure:"min_duration_minutes"`
	MaxDurationMinutes   int     `mapstructure:"max_duration_minutes"`
	MaxGapMinutes        int     `mapstructure:"max_gap_minutes"`
	WorkMinutesThreshold int     `mapstructure:"work_minutes_threshold"`
	RequiredBreakMinutes int     `mapstructure:"required_break_minutes"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing config file is
// not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("auto_validate", true)
	v.SetDefault("planner.day_start", DefaultPlanner.DayStart)
	v.SetDefault("planner.buffer_minutes", DefaultPlanner.BufferMinutes)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// EffectiveRules merges the configured overrides onto the default rule set.
// The merge is a strict superset: overrides for unknown rule IDs are
// ignored, and rules without an override keep their defaults.
func (c *Config) EffectiveRules() []rules.Rule {
	ruleset := rules.DefaultRules()
	if len(c.Rules) == 0 {
		return ruleset
	}

	for i, r := range ruleset {
		ov, ok := c.Rules[r.ID]
		if !ok {
			continue
		}
		if ov.Enabled != nil {
			r.Enabled = *ov.Enabled
		}
		if ov.Severity != nil {
			switch rules.Severity(*ov.Severity) {
			case rules.SeverityInfo, rules.SeverityWarning, rules.SeverityError:
				r.Severity = rules.Severity(*ov.Severity)
			}
		}
		if ov.BufferMinutes > 0 {
			r.Params.BufferMinutes = ov.BufferMinutes
		}
		if ov.MaxEventsPerDay > 0 {
			r.Params.MaxEventsPerDay = ov.MaxEventsPerDay
		}
		if ov.MinDurationMinutes > 0 {
			r.Params.MinDurationMinutes = ov.MinDurationMinutes
		}
		if ov.MaxDurationMinutes > 0 {
			r.Params.MaxDurationMinutes = ov.MaxDurationMinutes
		}
		if ov.MaxGapMinutes > 0 {
			r.Params.MaxGapMinutes = ov.MaxGapMinutes
		}
		if ov.WorkMinutesThreshold > 0 {
			r.Params.WorkMinutesThreshold = ov.WorkMinutesThreshold
		}
		if ov.RequiredBreakMinutes > 0 {
			r.Params.RequiredBreakMinutes = ov.RequiredBreakMinutes
		}
		ruleset[i] = r
	}
	return ruleset
}

// DBPath returns the full path to the SQLite history database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}
