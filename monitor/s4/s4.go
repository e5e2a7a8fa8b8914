// Package s4 evaluates the region-algebra sub-grammar: a spatial formula
// tree built from class labels, bound variables, intersection, union, and
// (unsupported) complement, returning the set of annotations it selects
// from one frame.
package s4

import (
	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/internal/errs"
)

// Env is the binding environment threaded through evaluation: the
// quantifier variables bound by enclosing S4u Exists/Forall nodes. Inner
// bindings override outer ones on name clash, per the chain being
// flattened into a single map at each push (see monitor/s4u).
type Env map[string]frame.Annotation

// Detections is the read-only, per-frame label -> annotations view the
// monitor evaluates formulas against.
type Detections map[string][]frame.Annotation

// Eval evaluates an S4 formula against detections and the current binding
// environment, returning the annotation set it denotes. env may be nil.
func Eval(detections Detections, env Env, formula *ir.Node) ([]frame.Annotation, error) {
	if formula == nil {
		return nil, nil
	}

	switch formula.Kind {
	case ir.OperandNode:
		switch formula.Operand.Kind {
		case ir.SymbolOperand:
			return append([]frame.Annotation(nil), detections[formula.Operand.Symbol]...), nil
		case ir.VariableOperand:
			if a, ok := env[formula.Operand.Variable]; ok {
				return []frame.Annotation{a}, nil
			}
			return nil, nil
		default:
			return nil, errs.New(errs.Monitor, "s4: unsupported operand %s", formula.Operand)
		}

	case ir.UnaryNode:
		if formula.Op.S4 == ir.Complement {
			return nil, errs.New(errs.Monitor, "s4: complement of a region is not supported")
		}
		return nil, errs.New(errs.Monitor, "s4: unrecognized unary operator %s", formula.Op)

	case ir.BinaryNode:
		lhs, err := Eval(detections, env, formula.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := Eval(detections, env, formula.Rhs)
		if err != nil {
			return nil, err
		}

		switch formula.Op.S4 {
		case ir.Intersection:
			if len(lhs) == 0 || len(rhs) == 0 {
				return nil, nil
			}
			var result []frame.Annotation
			for _, l := range lhs {
				for _, r := range rhs {
					region, err := l.BBox.Intersects(r.BBox)
					if err != nil {
						return nil, errs.New(errs.Monitor, "s4: intersection: %s", err)
					}
					if region != nil {
						result = append(result, l, r)
					}
				}
			}
			return result, nil

		case ir.Union:
			result := make([]frame.Annotation, 0, len(lhs)+len(rhs))
			result = append(result, lhs...)
			result = append(result, rhs...)
			return result, nil

		default:
			return nil, errs.New(errs.Monitor, "s4: unrecognized binary operator %s", formula.Op)
		}

	default:
		return nil, errs.New(errs.Monitor, "s4: unrecognized node")
	}
}
