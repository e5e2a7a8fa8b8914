package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/cps-atlas/strem"
	stremio "github.com/cps-atlas/strem/datastream/io"
	"github.com/cps-atlas/strem/internal/errs"
)

const (
	exitOK            = 0
	exitMatchFound    = 0
	exitMatchNotFound = 1
	exitError         = 2
)

// app runs the full CLI pipeline for one invocation and returns the process
// exit code. Every error surfaced to the top level carries this run's
// correlation id, per SPEC_FULL's ambient error-handling layer.
type app struct {
	runID string
}

func newApp() *app {
	return &app{runID: uuid.NewString()}
}

func (a *app) run(pattern string, paths []string, cfg strem.Configuration) int {
	controller := strem.Controller{Config: cfg}
	controller.Config.Pattern = pattern

	anyMatch := false

	if len(paths) == 0 {
		status, err := a.runStream(&controller, os.Stdin, "")
		if err != nil {
			a.reportError(err)
			return exitError
		}
		anyMatch = anyMatch || status == strem.MatchFound
	} else {
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				a.reportError(errs.Wrap(errs.IO, a.runID, err, "open %s", path))
				return exitError
			}

			status, err := a.runStream(&controller, f, path)
			f.Close()
			if err != nil {
				a.reportError(err)
				return exitError
			}
			anyMatch = anyMatch || status == strem.MatchFound
		}
	}

	if anyMatch {
		return exitMatchFound
	}
	return exitMatchNotFound
}

func (a *app) runStream(controller *strem.Controller, r io.Reader, path string) (strem.Status, error) {
	var data stremio.DataStream
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return strem.MatchNotFound, errs.Wrap(errs.Import, a.runID, err, "decode datastream")
	}

	imp := &stremio.Importer{Skip: controller.Config.Skip, Channels: controller.Config.Channels}
	frames, err := imp.Import(data)
	if err != nil {
		return strem.MatchNotFound, errs.Wrap(errs.Import, a.runID, err, "import frames")
	}

	if err := controller.Compile(); err != nil {
		return strem.MatchNotFound, err
	}

	if !controller.Config.Quiet {
		p := newPrinter(os.Stdout, path)
		controller.Callback = p.print
	}

	return controller.Run(frames)
}

func (a *app) reportError(err error) {
	fmt.Fprintf(os.Stderr, "strem: %s (run %s)\n", err.Error(), a.runID)
}
