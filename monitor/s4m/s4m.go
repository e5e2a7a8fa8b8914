// Package s4m evaluates the scalar-arithmetic sub-grammar: numeric
// literals, unary negation, the named functions (x, y, dist, area) applied
// to a region, binary arithmetic over Cartesian products of scalar sets,
// and the two-region dist function.
package s4m

import (
	"math"

	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/internal/errs"
	"github.com/cps-atlas/strem/monitor/s4"
)

// Eval evaluates an S4m formula against detections and the current binding
// environment, returning the ordered set of scalars it denotes.
func Eval(detections s4.Detections, env s4.Env, formula *ir.Node) ([]float64, error) {
	if formula == nil {
		return nil, nil
	}

	switch formula.Kind {
	case ir.OperandNode:
		if formula.Operand.Kind != ir.NumberOperand {
			return nil, errs.New(errs.Monitor, "s4m: unsupported operand %s", formula.Operand)
		}
		return []float64{formula.Operand.Number}, nil

	case ir.UnaryNode:
		switch formula.Op.S4m {
		case ir.Inverse:
			child, err := Eval(detections, env, formula.Child)
			if err != nil {
				return nil, err
			}
			result := make([]float64, len(child))
			for i, x := range child {
				result[i] = -x
			}
			return result, nil

		case ir.FunctionOp:
			annotations, err := s4.Eval(detections, env, formula.Child)
			if err != nil {
				return nil, err
			}
			return applyUnaryFunction(formula.Op.Function, annotations)

		default:
			return nil, errs.New(errs.Monitor, "s4m: unrecognized unary operator %s", formula.Op)
		}

	case ir.BinaryNode:
		switch formula.Op.S4m {
		case ir.Addition, ir.Subtraction, ir.Multiplication, ir.Division:
			lhs, err := Eval(detections, env, formula.Lhs)
			if err != nil {
				return nil, err
			}
			rhs, err := Eval(detections, env, formula.Rhs)
			if err != nil {
				return nil, err
			}
			return applyArithmetic(formula.Op.S4m, lhs, rhs), nil

		case ir.FunctionOp:
			if formula.Op.Function != "dist" {
				return nil, errs.New(errs.Monitor, "s4m: function not supported: %s", formula.Op.Function)
			}
			lhs, err := s4.Eval(detections, env, formula.Lhs)
			if err != nil {
				return nil, err
			}
			rhs, err := s4.Eval(detections, env, formula.Rhs)
			if err != nil {
				return nil, err
			}

			var result []float64
			for _, l := range lhs {
				for _, r := range rhs {
					result = append(result, geometryDistance(l, r))
				}
			}
			return result, nil

		default:
			return nil, errs.New(errs.Monitor, "s4m: unrecognized binary operator %s", formula.Op)
		}

	default:
		return nil, errs.New(errs.Monitor, "s4m: unrecognized node")
	}
}

func applyUnaryFunction(name string, annotations []frame.Annotation) ([]float64, error) {
	result := make([]float64, 0, len(annotations))

	switch name {
	case "x":
		for _, a := range annotations {
			result = append(result, a.BBox.Center().X)
		}
	case "y":
		for _, a := range annotations {
			result = append(result, a.BBox.Center().Y)
		}
	case "dist":
		for _, a := range annotations {
			c := a.BBox.Center()
			result = append(result, math.Sqrt(c.X*c.X+c.Y*c.Y))
		}
	case "area":
		for _, a := range annotations {
			result = append(result, a.BBox.Area())
		}
	default:
		return nil, errs.New(errs.Monitor, "s4m: function not supported: %s", name)
	}

	return result, nil
}

func applyArithmetic(op ir.S4mOp, lhs, rhs []float64) []float64 {
	result := make([]float64, 0, len(lhs)*len(rhs))
	for _, l := range lhs {
		for _, r := range rhs {
			switch op {
			case ir.Addition:
				result = append(result, l+r)
			case ir.Subtraction:
				result = append(result, l-r)
			case ir.Multiplication:
				result = append(result, l*r)
			case ir.Division:
				result = append(result, l/r)
			}
		}
	}
	return result
}

func geometryDistance(l, r frame.Annotation) float64 {
	a, b := l.BBox.Center(), r.BBox.Center()
	return math.Sqrt((b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y))
}
