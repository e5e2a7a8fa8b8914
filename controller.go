package strem

import (
	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/compiler/parser"
	"github.com/cps-atlas/strem/datastream/frame"
	stremio "github.com/cps-atlas/strem/datastream/io"
	"github.com/cps-atlas/strem/internal/errs"
	"github.com/cps-atlas/strem/matcher"
	"github.com/cps-atlas/strem/symbolizer"
)

// Status reports whether a Controller run found at least one match.
type Status int

const (
	MatchNotFound Status = iota
	MatchFound
)

// Callback is invoked with the frames spanned by each match found during a
// run, in the order they are found.
type Callback func(matched []frame.Frame, cfg Configuration) error

// Controller compiles a pattern once and drives either the offline or the
// online algorithm over a supplied source of frames, according to its
// Configuration.
type Controller struct {
	Config   Configuration
	Callback Callback

	symbolic *ir.AST
	table    *symbolizer.Table
	eng      *matcher.Engine
}

// Compile parses and symbolizes the controller's configured pattern and
// builds the regex engine to search with. It must be called before Run.
func (c *Controller) Compile() error {
	parsed, err := parser.Parse(c.Config.Pattern)
	if err != nil {
		return err
	}

	symbolic, table := symbolizer.Symbolize(parsed)
	c.symbolic = symbolic
	c.table = table

	eng, err := matcher.Compile(symbolic)
	if err != nil {
		return err
	}
	c.eng = eng

	return nil
}

// Run dispatches to the online or offline algorithm according to
// c.Config.Online.
func (c *Controller) Run(frames []frame.Frame) (Status, error) {
	if c.Config.Online {
		return c.runOnline(frames)
	}
	return c.runOffline(frames)
}

func (c *Controller) runOffline(frames []frame.Frame) (Status, error) {
	status := MatchNotFound

	found, err := matcher.Offline(frames, c.table, c.eng, c.Config.MaxCount, func(m matcher.Match) error {
		status = MatchFound
		if c.Callback == nil {
			return nil
		}
		return c.Callback(frames[m.Start:m.End], c.Config)
	})
	if err != nil {
		return status, errs.Wrap(errs.Monitor, "", err, "offline run")
	}
	if found {
		status = MatchFound
	}

	return status, nil
}

func (c *Controller) runOnline(frames []frame.Frame) (Status, error) {
	status := MatchNotFound

	i := 0
	source := func() (frame.Frame, bool) {
		if i >= len(frames) {
			return frame.Frame{}, false
		}
		f := frames[i]
		i++
		return f, true
	}

	var buffered []frame.Frame
	found, err := matcher.Online(c.symbolic, c.table, c.eng, c.Config.MaxCount, source, func(m matcher.Match) error {
		status = MatchFound
		if c.Callback == nil {
			return nil
		}
		buffered = append(buffered[:0], frames[m.Start:m.End]...)
		return c.Callback(buffered, c.Config)
	})
	if err != nil {
		return status, errs.Wrap(errs.Monitor, "", err, "online run")
	}
	if found {
		status = MatchFound
	}

	return status, nil
}

// ImportAll drains importer over data, producing the full frame slice. It
// is the offline-mode frame loader: the original's "load everything before
// searching" behavior.
func ImportAll(imp *stremio.Importer, data stremio.DataStream) ([]frame.Frame, error) {
	return imp.Import(data)
}
