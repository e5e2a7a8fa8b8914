package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Node_Equal_structuralIdentity(t *testing.T) {
	a := Binary(Operator{S4: Intersection},
		Leaf(Operand{Kind: SymbolOperand, Symbol: "car"}),
		Leaf(Operand{Kind: SymbolOperand, Symbol: "road"}))
	b := Binary(Operator{S4: Intersection},
		Leaf(Operand{Kind: SymbolOperand, Symbol: "car"}),
		Leaf(Operand{Kind: SymbolOperand, Symbol: "road"}))

	assert.True(t, a.Equal(b))
}

func Test_Node_Equal_distinctOperands(t *testing.T) {
	a := Leaf(Operand{Kind: SymbolOperand, Symbol: "car"})
	b := Leaf(Operand{Kind: SymbolOperand, Symbol: "bus"})

	assert.False(t, a.Equal(b))
}

func Test_Node_Equal_distinctShape(t *testing.T) {
	leaf := Leaf(Operand{Kind: SymbolOperand, Symbol: "car"})
	unary := Unary(Operator{Fol: Negation}, leaf)

	assert.False(t, leaf.Equal(unary))
}

func Test_Node_Equal_bindingsCompareByContent(t *testing.T) {
	a := Unary(Operator{S4u: ExistsOp, Bindings: map[string]*Node{
		"a": Leaf(Operand{Kind: SymbolOperand, Symbol: "car"}),
	}}, Leaf(Operand{Kind: VariableOperand, Variable: "a"}))
	b := Unary(Operator{S4u: ExistsOp, Bindings: map[string]*Node{
		"a": Leaf(Operand{Kind: SymbolOperand, Symbol: "car"}),
	}}, Leaf(Operand{Kind: VariableOperand, Variable: "a"}))
	c := Unary(Operator{S4u: ExistsOp, Bindings: map[string]*Node{
		"a": Leaf(Operand{Kind: SymbolOperand, Symbol: "bus"}),
	}}, Leaf(Operand{Kind: VariableOperand, Variable: "a"}))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func Test_Node_Equal_nilSafety(t *testing.T) {
	var a, b *Node
	assert.True(t, a.Equal(b))

	leaf := Leaf(Operand{Kind: SymbolOperand, Symbol: "car"})
	assert.False(t, a.Equal(leaf))
	assert.False(t, leaf.Equal(a))
}
