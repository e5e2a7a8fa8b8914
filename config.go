// Package strem ties together the compiler, symbolizer, spatial monitor,
// and matcher into a single entrypoint: compile a pattern once, then run it
// offline or online against a datastream according to a merged
// Configuration.
package strem

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/kballard/go-shellquote"

	"github.com/cps-atlas/strem/internal/errs"
	"github.com/cps-atlas/strem/internal/util"
)

// Configuration holds every option that shapes a run: the pattern to
// search, which algorithm to run, and the importer's channel/skip/export
// behavior. It is assembled by merging, lowest precedence first: built-in
// defaults, an optional TOML config file, the STREM_CHANNELS environment
// variable, and finally CLI flags.
type Configuration struct {
	Pattern string

	Online   bool
	Channels util.StringSet
	MaxCount int // 0 means unlimited
	Export   bool
	Quiet    bool
	Skip     int
}

// fileConfig mirrors the recognized keys of $XDG_CONFIG_HOME/strem/config.toml.
type fileConfig struct {
	Online   bool     `toml:"online"`
	Channels []string `toml:"channels"`
	MaxCount int      `toml:"max_count"`
	Export   bool     `toml:"export"`
	Quiet    bool     `toml:"quiet"`
	Skip     int      `toml:"skip"`
}

// Default returns the built-in defaults: no channel filter, no limit,
// offline, verbose, nothing skipped.
func Default() Configuration {
	return Configuration{Channels: util.StringSet{}}
}

// LoadConfigFile reads $XDG_CONFIG_HOME/strem/config.toml (resolved via
// xdg, which falls back to the platform default when the environment
// variable is unset) and merges its values over cfg. A missing file is not
// an error; a malformed one is.
func LoadConfigFile(cfg Configuration) (Configuration, error) {
	// xdg reads the environment once at start-up; re-read it so the current
	// value of XDG_CONFIG_HOME is the one used.
	xdg.Reload()
	path, err := xdg.ConfigFile(filepath.Join("strem", "config.toml"))
	if err != nil {
		return cfg, errs.Wrap(errs.IO, "", err, "resolve config file path")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, errs.Wrap(errs.IO, "", err, "malformed config file %s", path)
	}

	cfg.Online = fc.Online
	cfg.MaxCount = fc.MaxCount
	cfg.Export = fc.Export
	cfg.Quiet = fc.Quiet
	cfg.Skip = fc.Skip
	for _, c := range fc.Channels {
		cfg.Channels.Add(c)
	}

	return cfg, nil
}

// MergeEnvChannels unions channels named in the STREM_CHANNELS environment
// variable (a shell-quoted string, so a channel name containing spaces can
// be quoted) into cfg's channel set.
func MergeEnvChannels(cfg Configuration) (Configuration, error) {
	raw, ok := os.LookupEnv("STREM_CHANNELS")
	if !ok || raw == "" {
		return cfg, nil
	}

	names, err := shellquote.Split(raw)
	if err != nil {
		return cfg, errs.Wrap(errs.IO, "", err, "parse STREM_CHANNELS")
	}

	for _, c := range names {
		cfg.Channels.Add(c)
	}
	return cfg, nil
}

// ApplyFlagChannels replaces (rather than unions) cfg's channel set with
// channels, matching the CLI's flag-silences-default behavior: -c given on
// the command line always wins over the config file and environment.
func ApplyFlagChannels(cfg Configuration, channels []string) Configuration {
	if len(channels) == 0 {
		return cfg
	}
	cfg.Channels = util.StringSetOf(channels)
	return cfg
}
