package matcher

import "github.com/cps-atlas/strem/compiler/ir"

// Horizon computes the maximum number of frames any match of ast can span.
// ast must be the symbolized AST (its spatial letters collapsed to single
// Operand leaves by symbolizer.Symbolize), not the parsed tree: a bare
// operand node is the base case below, and a parsed S4u subtree root would
// instead be a Unary/Binary node with Op.Regex == ir.NoRegexOp, which falls
// through to the unbounded default and breaks horizon computation for any
// letter more complex than a class reference. The second return value is
// false when the span is unbounded (an unbounded Kleene star or at-least-n
// range appears anywhere), in which case the online matcher must buffer
// without eviction.
func Horizon(ast *ir.AST) (int, bool) {
	if ast == nil {
		return 0, true
	}
	return horizon(ast.Root)
}

func horizon(node *ir.Node) (int, bool) {
	if node == nil {
		return 0, true
	}

	switch node.Kind {
	case ir.OperandNode:
		return 1, true

	case ir.UnaryNode:
		child, finite := horizon(node.Child)

		switch node.Op.Regex {
		case ir.KleeneStar:
			return 0, false
		case ir.RangeOp:
			switch node.Op.Range.Kind {
			case ir.Exactly:
				if !finite {
					return 0, false
				}
				return child * node.Op.Range.Min, true
			case ir.AtLeast:
				return 0, false
			default: // Between
				if !finite {
					return 0, false
				}
				return child * node.Op.Range.Max, true
			}
		default:
			return 0, false
		}

	case ir.BinaryNode:
		lhs, lfin := horizon(node.Lhs)
		rhs, rfin := horizon(node.Rhs)

		switch node.Op.Regex {
		case ir.Concatenation:
			if !lfin || !rfin {
				return 0, false
			}
			return lhs + rhs, true
		case ir.Alternation:
			if !lfin || !rfin {
				return 0, false
			}
			if lhs > rhs {
				return lhs, true
			}
			return rhs, true
		default:
			return 0, false
		}

	default:
		return 0, false
	}
}
