/*
Strem searches a stream of per-frame object-detection records for
occurrences of a spatio-temporal regular expression (SpRE): a regular
expression whose atomic letters are spatial formulas evaluated against one
frame of detections.

Usage:

	strem PATTERN [DATASTREAM...]

With no DATASTREAM arguments, a single stream is read from standard input.
Exit code 0 means at least one match was found across all inputs, 1 means
none was, and 2 means an error aborted the run.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/cps-atlas/strem"
	"github.com/cps-atlas/strem/internal/version"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage())
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *flagVersion {
		fmt.Println(version.Current)
		os.Exit(exitOK)
	}

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "strem: a PATTERN argument is required")
		pflag.Usage()
		os.Exit(exitError)
	}
	pattern := args[0]
	paths := args[1:]

	cfg, err := buildConfig(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "strem: %s\n", err.Error())
		os.Exit(exitError)
	}

	os.Exit(newApp().run(pattern, paths, cfg))
}

// buildConfig merges configuration layers lowest-precedence first: built-in
// defaults, the TOML config file, the STREM_CHANNELS environment variable,
// and finally the CLI flags, which always win.
func buildConfig(pattern string) (strem.Configuration, error) {
	cfg := strem.Default()

	cfg, err := strem.LoadConfigFile(cfg)
	if err != nil {
		return cfg, err
	}

	cfg, err = strem.MergeEnvChannels(cfg)
	if err != nil {
		return cfg, err
	}

	cfg = strem.ApplyFlagChannels(cfg, *flagChannels)
	cfg.Pattern = pattern

	if pflag.Lookup("online").Changed {
		cfg.Online = *flagOnline
	}
	if pflag.Lookup("max-count").Changed {
		cfg.MaxCount = *flagMaxCount
	}
	if pflag.Lookup("export").Changed {
		cfg.Export = *flagExport
	}
	if pflag.Lookup("quiet").Changed {
		cfg.Quiet = *flagQuiet
	}
	if pflag.Lookup("skip").Changed {
		cfg.Skip = *flagSkip
	}

	return cfg, nil
}
