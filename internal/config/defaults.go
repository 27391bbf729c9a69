// Package config provides configuration loading and defaults for schedlint.
package config

// DefaultConfigDir is the default location for schedlint configuration.
const DefaultConfigDir = "~/.config/schedlint"

// DefaultDBName is the filename for the SQLite history database.
const DefaultDBName = "schedlint.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultPlanner holds the default placement policy values.
var DefaultPlanner = Planner{
	DayStart:      "09:00",
	BufferMinutes: 15,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
