package s4_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/geometry"
	"github.com/cps-atlas/strem/monitor/s4"
)

func box(cx, cy, w, h float64) geometry.BoundingBox {
	aa := geometry.NewAxisAligned(geometry.NewPoint(cx, cy), w, h)
	return geometry.BoundingBox{AA: &aa}
}

func Test_Eval_symbolLookup(t *testing.T) {
	formula := ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"})

	detections := s4.Detections{"car": {{Label: "car", BBox: box(0, 0, 1, 1)}}}
	result, err := s4.Eval(detections, nil, formula)
	require.NoError(t, err)
	assert.Len(t, result, 1)

	result, err = s4.Eval(s4.Detections{}, nil, formula)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func Test_Eval_intersection(t *testing.T) {
	formula := ir.Binary(ir.Operator{S4: ir.Intersection},
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"}),
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "road"}))

	detections := s4.Detections{
		"car":  {{Label: "car", BBox: box(0, 0, 10, 10)}},
		"road": {{Label: "road", BBox: box(5, 5, 10, 10)}},
	}
	result, err := s4.Eval(detections, nil, formula)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func Test_Eval_intersection_empty(t *testing.T) {
	formula := ir.Binary(ir.Operator{S4: ir.Intersection},
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"}),
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "road"}))

	detections := s4.Detections{
		"car":  {{Label: "car", BBox: box(0, 0, 2, 2)}},
		"road": {{Label: "road", BBox: box(100, 100, 2, 2)}},
	}
	result, err := s4.Eval(detections, nil, formula)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func Test_Eval_union(t *testing.T) {
	formula := ir.Binary(ir.Operator{S4: ir.Union},
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"}),
		ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "bus"}))

	detections := s4.Detections{
		"car": {{Label: "car", BBox: box(0, 0, 1, 1)}},
		"bus": {{Label: "bus", BBox: box(1, 1, 1, 1)}},
	}
	result, err := s4.Eval(detections, nil, formula)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func Test_Eval_complement_fails(t *testing.T) {
	formula := ir.Unary(ir.Operator{S4: ir.Complement}, ir.Leaf(ir.Operand{Kind: ir.SymbolOperand, Symbol: "car"}))

	_, err := s4.Eval(s4.Detections{}, nil, formula)
	assert.Error(t, err)
}

func Test_Eval_variableLookup(t *testing.T) {
	formula := ir.Leaf(ir.Operand{Kind: ir.VariableOperand, Variable: "a"})
	a := frame.Annotation{Label: "car", BBox: box(0, 0, 1, 1)}

	result, err := s4.Eval(s4.Detections{}, s4.Env{"a": a}, formula)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, a, result[0])

	result, err = s4.Eval(s4.Detections{}, nil, formula)
	require.NoError(t, err)
	assert.Empty(t, result)
}
