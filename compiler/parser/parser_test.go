package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cps-atlas/strem/compiler/ir"
)

func Test_Parse_singleClass(t *testing.T) {
	ast, err := Parse("[:car:]")
	require.NoError(t, err)

	want := ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"})
	assert.True(t, want.Equal(ast.Root))
}

func Test_Parse_alternationAndStar(t *testing.T) {
	ast, err := Parse("([:car:]|[:bus:])*")
	require.NoError(t, err)

	car := ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"})
	bus := ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "bus"})
	alt := ir.Binary(ir.Operator{Regex: ir.Alternation}, car, bus)
	want := ir.Unary(ir.Operator{Regex: ir.KleeneStar}, alt)

	assert.True(t, want.Equal(ast.Root))
}

func Test_Parse_range(t *testing.T) {
	ast, err := Parse("[:car:]{2,3}")
	require.NoError(t, err)

	assert.Equal(t, ir.UnaryNode, ast.Root.Kind)
	assert.Equal(t, ir.RangeOp, ast.Root.Op.Regex)
	assert.Equal(t, ir.Range{Kind: ir.Between, Min: 2, Max: 3}, ast.Root.Op.Range)
}

func Test_Parse_existsAndComparison(t *testing.T) {
	ast, err := Parse("[E(a:=[:car:], b:=[:car:]) @dist(a,b) < 50]")
	require.NoError(t, err)

	require.Equal(t, ir.UnaryNode, ast.Root.Kind)
	require.Equal(t, ir.ExistsOp, ast.Root.Op.S4u)
	require.Len(t, ast.Root.Op.Bindings, 2)
	assert.Contains(t, ast.Root.Op.Bindings, "a")
	assert.Contains(t, ast.Root.Op.Bindings, "b")

	cmp := ast.Root.Child
	require.Equal(t, ir.BinaryNode, cmp.Kind)
	assert.Equal(t, ir.LessThan, cmp.Op.Fol)
}

func Test_Parse_nonEmptyIntersection(t *testing.T) {
	ast, err := Parse("[NonEmpty([:car:] & [:road:])]")
	require.NoError(t, err)

	require.Equal(t, ir.UnaryNode, ast.Root.Kind)
	assert.Equal(t, ir.NonEmpty, ast.Root.Op.S4u)

	inter := ast.Root.Child
	require.Equal(t, ir.BinaryNode, inter.Kind)
	assert.Equal(t, ir.Intersection, inter.Op.S4)
}

func Test_Parse_determinism(t *testing.T) {
	const src = "[:car:]{1,}|([:bus:] [:pedestrian:])*"

	first, err := Parse(src)
	require.NoError(t, err)
	second, err := Parse(src)
	require.NoError(t, err)

	assert.True(t, first.Root.Equal(second.Root))
}

func Test_Parse_expectedButFound(t *testing.T) {
	_, err := Parse("[:car:")

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Code)
}

func Test_Parse_genericSyntaxError(t *testing.T) {
	_, err := Parse("&")

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Code)
}
