package main

import "github.com/spf13/pflag"

var (
	flagChannels = pflag.StringArrayP("channel", "c", nil, "Restrict matching to this channel (repeatable); replaces config/env channels.")
	flagOnline   = pflag.BoolP("online", "o", false, "Use the horizon-bounded online algorithm instead of offline batch search.")
	flagMaxCount = pflag.IntP("max-count", "m", 0, "Stop after this many matches (0 means unlimited).")
	flagExport   = pflag.BoolP("export", "x", false, "Emit the matched frames as @stremf JSON alongside each match line.")
	flagQuiet    = pflag.BoolP("quiet", "q", false, "Suppress match output; only the exit code reports whether a match was found.")
	flagSkip     = pflag.IntP("skip", "s", 0, "Ignore the first N frames of every input stream.")
	flagNoColor  = pflag.Bool("no-color", false, "Disable colorized output even on a terminal.")
	flagVersion  = pflag.BoolP("version", "v", false, "Print the version and exit.")
)
