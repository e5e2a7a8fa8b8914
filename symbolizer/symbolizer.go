// Package symbolizer replaces every maximal spatial formula in a parsed SpRE
// with a single alphabet letter, producing a symbol-only AST the regex
// engine can compile and a table mapping each letter back to the formula
// the spatial monitor must evaluate per frame.
package symbolizer

import "github.com/cps-atlas/strem/compiler/ir"

// firstLetter is the first rune assigned; runes increment from there. Any
// rune works since the regex compiler escapes letters via QuoteMeta, so
// there is no need to dodge regex metacharacters here.
const firstLetter = 'a'

// Entry associates one alphabet letter with the spatial formula it stands
// in for.
type Entry struct {
	Letter  rune
	Formula *ir.Node
}

// Table is the symbol alphabet produced by symbolization, preserving the
// order letters were first assigned (insertion order), which is the order
// the spatial monitor must evaluate them in for a given frame.
type Table struct {
	entries []Entry
}

// Entries returns the table's entries in insertion order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Formula looks up the spatial formula a letter stands for.
func (t *Table) Formula(letter rune) (*ir.Node, bool) {
	for _, e := range t.entries {
		if e.Letter == letter {
			return e.Formula, true
		}
	}
	return nil, false
}

// Len returns the alphabet size.
func (t *Table) Len() int {
	return len(t.entries)
}

type symbolizer struct {
	table Table
	next  rune
}

// Symbolize walks ast, replacing each maximal S4u subtree with a fresh (or
// reused, when structurally identical to one already seen) letter. It
// returns the symbol-only AST and the letter -> formula table.
func Symbolize(ast *ir.AST) (*ir.AST, *Table) {
	s := &symbolizer{next: firstLetter}
	root := s.walk(ast.Root)
	return &ir.AST{Root: root}, &s.table
}

// walk descends only through regex-tagged combinators (concatenation,
// alternation, Kleene star, counted range); the first node it encounters
// that is not regex-tagged is, by construction of the parser, the root of
// a maximal S4u subtree — a single letter of the compiled alphabet.
func (s *symbolizer) walk(node *ir.Node) *ir.Node {
	if node == nil {
		return nil
	}

	if node.Op.Regex != ir.NoRegexOp {
		switch node.Kind {
		case ir.UnaryNode:
			return ir.Unary(node.Op, s.walk(node.Child))
		case ir.BinaryNode:
			return ir.Binary(node.Op, s.walk(node.Lhs), s.walk(node.Rhs))
		}
	}

	return ir.Leaf(ir.Operand{Kind: ir.LetterOperand, Symbol: string(s.letterFor(node))})
}

// letterFor returns the letter standing in for formula, assigning a fresh
// one the first time a structurally-distinct formula is seen and reusing
// the existing letter for structurally-identical repeats.
func (s *symbolizer) letterFor(formula *ir.Node) rune {
	for _, e := range s.table.entries {
		if e.Formula.Equal(formula) {
			return e.Letter
		}
	}

	letter := s.next
	s.next++
	s.table.entries = append(s.table.entries, Entry{Letter: letter, Formula: formula})
	return letter
}
