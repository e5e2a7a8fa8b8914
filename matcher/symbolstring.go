package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/monitor/s4"
	"github.com/cps-atlas/strem/monitor/s4u"
	"github.com/cps-atlas/strem/symbolizer"
)

// Window is the per-frame symbolization of a contiguous run of frames: the
// concatenated symbol string, a prefix-sum byte offset per frame (so a
// search can start exactly at a given frame), and a parallel frame index
// for every byte of the string (continuation bytes of a multi-byte letter
// share their rune's frame), so a regex byte-offset match can be
// translated back to the frame interval it denotes.
type Window struct {
	Symbols    string
	ByteOffset []int // len(frames)+1; ByteOffset[i] is where frame i's emissions begin
	FrameOf    []int // len(Symbols); FrameOf[b] is the frame that produced byte b
}

// Symbolize evaluates every table entry against every frame, in table
// order, building the Window the regex engine searches over. A frame
// contributes zero, one, or several letters depending on how many of its
// spatial formulas are satisfied.
func Symbolize(frames []frame.Frame, table *symbolizer.Table) (Window, error) {
	var b strings.Builder
	offsets := make([]int, len(frames)+1)
	var frameOf []int

	for i, f := range frames {
		offsets[i] = b.Len()
		detections := s4.Detections(f.Detections())

		for _, entry := range table.Entries() {
			ok, err := s4u.Eval(detections, nil, entry.Formula)
			if err != nil {
				return Window{}, err
			}
			if !ok {
				continue
			}

			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], entry.Letter)
			b.Write(buf[:n])
			for j := 0; j < n; j++ {
				frameOf = append(frameOf, i)
			}
		}
	}
	offsets[len(frames)] = b.Len()

	return Window{Symbols: b.String(), ByteOffset: offsets, FrameOf: frameOf}, nil
}
