package symbolizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/compiler/parser"
)

func Test_Symbolize_distinctFormulasGetDistinctLetters(t *testing.T) {
	ast, err := parser.Parse("[:car:]|[:bus:]")
	require.NoError(t, err)

	symbolic, table := Symbolize(ast)

	require.Equal(t, ir.BinaryNode, symbolic.Root.Kind)
	require.Equal(t, ir.Alternation, symbolic.Root.Op.Regex)

	lhs := symbolic.Root.Lhs.Operand
	rhs := symbolic.Root.Rhs.Operand
	assert.Equal(t, ir.LetterOperand, lhs.Kind)
	assert.Equal(t, ir.LetterOperand, rhs.Kind)
	assert.NotEqual(t, lhs.Symbol, rhs.Symbol)
	assert.Equal(t, 2, table.Len())
}

func Test_Symbolize_identicalFormulasShareLetter(t *testing.T) {
	ast, err := parser.Parse("[:car:] [:car:]")
	require.NoError(t, err)

	symbolic, table := Symbolize(ast)

	lhs := symbolic.Root.Lhs.Operand
	rhs := symbolic.Root.Rhs.Operand
	assert.Equal(t, lhs.Symbol, rhs.Symbol)
	assert.Equal(t, 1, table.Len())
}

func Test_Symbolize_tableRoundTrip(t *testing.T) {
	ast, err := parser.Parse("[NonEmpty([:car:] & [:road:])]")
	require.NoError(t, err)

	symbolic, table := Symbolize(ast)

	letter := []rune(symbolic.Root.Operand.Symbol)[0]
	formula, ok := table.Formula(letter)
	require.True(t, ok)
	assert.Equal(t, ir.NonEmpty, formula.Op.S4u)
}
