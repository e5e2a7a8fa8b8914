package s4m_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/geometry"
	"github.com/cps-atlas/strem/monitor/s4"
	"github.com/cps-atlas/strem/monitor/s4m"
)

func box(cx, cy, w, h float64) geometry.BoundingBox {
	aa := geometry.NewAxisAligned(geometry.NewPoint(cx, cy), w, h)
	return geometry.BoundingBox{AA: &aa}
}

func Test_Eval_areaFunction(t *testing.T) {
	formula := ir.Unary(ir.Operator{S4m: ir.FunctionOp, Function: "area"},
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"}))

	detections := s4.Detections{"car": {{Label: "car", BBox: box(0, 0, 4, 5)}}}
	result, err := s4m.Eval(detections, nil, formula)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 20.0, result[0])
}

func Test_Eval_twoRegionDist(t *testing.T) {
	formula := ir.Binary(ir.Operator{S4m: ir.FunctionOp, Function: "dist"},
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "a"}),
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "b"}))

	detections := s4.Detections{
		"a": {{Label: "a", BBox: box(0, 0, 1, 1)}},
		"b": {{Label: "b", BBox: box(3, 4, 1, 1)}},
	}
	result, err := s4m.Eval(detections, nil, formula)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 5.0, result[0])
}

func Test_Eval_arithmeticCartesianProduct(t *testing.T) {
	lhs := ir.Leaf(ir.Operand{Kind: ir.NumberOperand, Number: 2})
	rhs := ir.Leaf(ir.Operand{Kind: ir.NumberOperand, Number: 3})

	formula := ir.Binary(ir.Operator{S4m: ir.Addition}, lhs, rhs)
	result, err := s4m.Eval(s4.Detections{}, nil, formula)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, result)
}

func Test_Eval_divisionByZero_doesNotPanic(t *testing.T) {
	formula := ir.Binary(ir.Operator{S4m: ir.Division},
		ir.Leaf(ir.Operand{Kind: ir.NumberOperand, Number: 1}),
		ir.Leaf(ir.Operand{Kind: ir.NumberOperand, Number: 0}))

	result, err := s4m.Eval(s4.Detections{}, nil, formula)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, math.IsInf(result[0], 1))
}

func Test_Eval_unknownFunction(t *testing.T) {
	formula := ir.Unary(ir.Operator{S4m: ir.FunctionOp, Function: "bogus"},
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"}))

	_, err := s4m.Eval(s4.Detections{}, nil, formula)
	assert.Error(t, err)
}
