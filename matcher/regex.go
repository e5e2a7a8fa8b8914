package matcher

import (
	"fmt"
	"regexp"

	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/internal/errs"
)

// Engine wraps a compiled regular expression over the symbolic alphabet.
// Matching is delegated to the standard library's regexp (RE2) rather than
// a hand-rolled automaton: the alphabet is a handful of single-byte
// letters, the grammar needs only concatenation/alternation/star/counted
// range, and RE2's Longest mode already gives the canonical
// leftmost-longest semantics the spec calls for, so hand-writing an NFA
// would just reimplement what the standard library already does well.
type Engine struct {
	re *regexp.Regexp
}

// Compile builds an Engine from a symbolized AST (see symbolizer.Symbolize).
// A nil root compiles to a pattern that matches nothing.
func Compile(ast *ir.AST) (*Engine, error) {
	pattern := regexify(ast)
	if pattern == "" {
		// An empty pattern has no matches by definition; [^\s\S] requires
		// consuming one character that is simultaneously whitespace and
		// non-whitespace, so it can never match anything.
		pattern = `[^\s\S]`
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errs.New(errs.Monitor, "regex: failed to compile %q: %s", pattern, err)
	}
	re.Longest()

	return &Engine{re: re}, nil
}

// Leftmost finds the leftmost, longest match in w starting at or after the
// frame-slice index offset, returning it as a frame interval. A match that
// decodes to zero frames (an empty regex match, e.g. from a bare Kleene
// star with nothing to consume) is reported as not-found: the half-open
// invariant requires end > start, and the caller's own advance-by-one loop
// already does the right thing when this returns false.
func (e *Engine) Leftmost(w Window, offset int) (Match, bool) {
	if offset < 0 || offset >= len(w.ByteOffset) {
		return Match{}, false
	}

	start := w.ByteOffset[offset]
	loc := e.re.FindStringIndex(w.Symbols[start:])
	if loc == nil {
		return Match{}, false
	}

	matchStart := start + loc[0]
	matchEnd := start + loc[1]
	if matchEnd <= matchStart {
		return Match{}, false
	}

	return Match{Start: w.FrameOf[matchStart], End: w.FrameOf[matchEnd-1] + 1}, true
}

// regexify compiles a symbolic AST into an RE2 pattern string, mirroring
// the reference implementation's letter-by-letter recursive build.
func regexify(ast *ir.AST) string {
	if ast == nil || ast.Root == nil {
		return ""
	}
	return regexit(ast.Root)
}

func regexit(node *ir.Node) string {
	if node == nil {
		return ""
	}

	switch node.Kind {
	case ir.OperandNode:
		return regexp.QuoteMeta(node.Operand.Symbol)

	case ir.UnaryNode:
		child := regexit(node.Child)

		switch node.Op.Regex {
		case ir.KleeneStar:
			return fmt.Sprintf("(?:%s*)", child)
		case ir.RangeOp:
			switch node.Op.Range.Kind {
			case ir.Exactly:
				return fmt.Sprintf("(?:%s{%d})", child, node.Op.Range.Min)
			case ir.AtLeast:
				return fmt.Sprintf("(?:%s{%d,})", child, node.Op.Range.Min)
			default:
				return fmt.Sprintf("(?:%s{%d,%d})", child, node.Op.Range.Min, node.Op.Range.Max)
			}
		default:
			return ""
		}

	case ir.BinaryNode:
		lhs := regexit(node.Lhs)
		rhs := regexit(node.Rhs)

		switch node.Op.Regex {
		case ir.Concatenation:
			return fmt.Sprintf("(?:%s%s)", lhs, rhs)
		case ir.Alternation:
			return fmt.Sprintf("(?:%s|%s)", lhs, rhs)
		default:
			return ""
		}

	default:
		return ""
	}
}
