package matcher

import (
	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/symbolizer"
)

// Online drives an incremental, buffered search: source yields frames one at
// a time (returning ok=false when the stream is exhausted). After every
// appended frame, the whole live buffer is re-searched from its start for a
// leftmost match, and emit is invoked whenever one is found. When the
// pattern's horizon is finite, the buffer evicts its oldest frame once it
// would otherwise exceed the horizon, a fixed-capacity sliding window;
// an unbounded pattern (a bare Kleene star or at-least-n range anywhere)
// disables eviction and the whole stream accumulates in memory.
//
// Searching from the buffer's start on every frame, rather than resuming
// past a prior match, means a match that stays within the live window keeps
// being reported as later frames arrive, until eviction finally age it out;
// this mirrors the reference algorithm's behavior rather than deduplicating
// after the fact.
func Online(symbolic *ir.AST, table *symbolizer.Table, engine *Engine, limit int, source func() (frame.Frame, bool), emit func(Match) error) (bool, error) {
	horizonFrames, bounded := Horizon(symbolic)

	var buffer []frame.Frame
	base := 0 // absolute frame index of buffer[0]
	found := false
	count := 0

	for {
		f, ok := source()
		if !ok {
			break
		}

		if bounded && len(buffer) >= horizonFrames && horizonFrames > 0 {
			buffer = buffer[1:]
			base++
		}
		buffer = append(buffer, f)

		w, err := Symbolize(buffer, table)
		if err != nil {
			return found, err
		}

		m, ok := engine.Leftmost(w, 0)
		if !ok {
			continue
		}

		found = true
		count++
		if limit > 0 && count > limit {
			break
		}

		if err := emit(Match{Start: base + m.Start, End: base + m.End}); err != nil {
			return found, err
		}
	}

	return found, nil
}
