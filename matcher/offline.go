package matcher

import (
	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/symbolizer"
)

// Offline searches a complete, already-loaded frame buffer for every
// non-overlapping leftmost-greedy match, invoking emit for each. Search
// resumes from a match's end; when no match is found at offset, offset
// advances by one. Emission stops once limit matches have been emitted (a
// non-positive limit means unlimited).
func Offline(frames []frame.Frame, table *symbolizer.Table, engine *Engine, limit int, emit func(Match) error) (bool, error) {
	w, err := Symbolize(frames, table)
	if err != nil {
		return false, err
	}

	found := false
	count := 0
	offset := 0

	for offset < len(frames) {
		m, ok := engine.Leftmost(w, offset)
		if !ok {
			offset++
			continue
		}

		found = true
		count++
		if limit > 0 && count > limit {
			break
		}

		if err := emit(m); err != nil {
			return found, err
		}

		offset = m.End
	}

	return found, nil
}
