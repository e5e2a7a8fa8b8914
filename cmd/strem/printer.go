package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/rosed"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/cps-atlas/strem"
	"github.com/cps-atlas/strem/datastream/frame"
	stremio "github.com/cps-atlas/strem/datastream/io"
)

const helpWrapWidth = 80

// printer formats a single match line, per spec.md §6:
// [PATH ":"]? START ".." END [ ":" JSON_EXPORT ]?
type printer struct {
	out    io.Writer
	path   string
	color  bool
	export bool
}

func newPrinter(out io.Writer, path string) *printer {
	color := !*flagNoColor && isatty.IsTerminal(os.Stdout.Fd())
	return &printer{out: out, path: path, color: color, export: *flagExport}
}

func (p *printer) print(matched []frame.Frame, cfg strem.Configuration) error {
	if len(matched) == 0 {
		return nil
	}

	start := matched[0].Index
	end := matched[len(matched)-1].Index + 1

	interval := fmt.Sprintf("%d..%d", start, end)
	if p.color {
		interval = pterm.NewStyle(pterm.FgGreen).Sprint(interval)
	}

	line := interval
	if p.path != "" {
		path := p.path
		if p.color {
			path = pterm.NewStyle(pterm.FgCyan).Sprint(path)
		}
		line = path + ":" + line
	}

	if cfg.Export {
		exported, err := json.Marshal(stremio.Exporter{}.Export(matched))
		if err != nil {
			return err
		}
		payload := string(exported)
		if p.color {
			payload = pterm.NewStyle(pterm.FgYellow).Sprint(payload)
		}
		line = line + ":" + payload
	}

	_, err := fmt.Fprintln(p.out, line)
	return err
}

// usage renders the CLI's help text wrapped to a fixed width, mirroring the
// original's terminal-width-aware help formatting.
func usage() string {
	const text = `strem PATTERN [DATASTREAM...]

Search a stream of per-frame object-detection records for occurrences of a
spatio-temporal regular expression. With no DATASTREAM arguments, reads a
single stream from standard input.`

	return rosed.Edit(text).Wrap(helpWrapWidth).String()
}
