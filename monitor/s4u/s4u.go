// Package s4u evaluates the truth-valued sub-grammar: class membership,
// region non-emptiness, existential/universal binders over annotation
// products, boolean connectives, and scalar comparisons.
package s4u

import (
	"reflect"
	"sort"

	"github.com/cps-atlas/strem/compiler/ir"
	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/internal/errs"
	"github.com/cps-atlas/strem/monitor/s4"
	"github.com/cps-atlas/strem/monitor/s4m"
)

// Eval evaluates an S4u formula against detections and the current binding
// environment, returning its truth value.
func Eval(detections s4.Detections, env s4.Env, formula *ir.Node) (bool, error) {
	if formula == nil {
		return false, nil
	}

	switch formula.Kind {
	case ir.OperandNode:
		if formula.Operand.Kind != ir.SymbolOperand {
			return false, errs.New(errs.Monitor, "s4u: unsupported operand %s", formula.Operand)
		}
		_, ok := detections[formula.Operand.Symbol]
		return ok, nil

	case ir.UnaryNode:
		return evalUnary(detections, env, formula)

	case ir.BinaryNode:
		return evalBinary(detections, env, formula)

	default:
		return false, errs.New(errs.Monitor, "s4u: unrecognized node")
	}
}

func evalUnary(detections s4.Detections, env s4.Env, formula *ir.Node) (bool, error) {
	switch {
	case formula.Op.S4u == ir.NonEmpty:
		annotations, err := s4.Eval(detections, env, formula.Child)
		if err != nil {
			return false, err
		}
		return len(annotations) > 0, nil

	case formula.Op.S4u == ir.ExistsOp:
		return evalQuantifier(detections, env, formula, false)

	case formula.Op.S4u == ir.ForallOp:
		return evalQuantifier(detections, env, formula, true)

	case formula.Op.Fol == ir.Negation:
		child, err := Eval(detections, env, formula.Child)
		if err != nil {
			return false, err
		}
		return !child, nil

	default:
		return false, errs.New(errs.Monitor, "s4u: unrecognized unary operator %s", formula.Op)
	}
}

// evalQuantifier enumerates the Cartesian product of each bound variable's
// annotation set, evaluating the child formula under each resulting
// environment. universal selects Forall semantics: a quantifier is true
// iff the product is non-empty and every tuple satisfies the child — an
// empty product yields false for both Exists and Forall, a deliberate
// deviation from classical vacuous truth for Forall.
//
// Tuples that bind two different variables to the same annotation are
// excluded from the product: a comparison such as @dist(a,b) < 50 is meant
// to relate two distinct detections, and letting a and b collapse onto one
// annotation would make it trivially satisfiable (distance zero) regardless
// of how far apart the actual detections are, independent of the bound
// formulas' class.
func evalQuantifier(detections s4.Detections, env s4.Env, formula *ir.Node, universal bool) (bool, error) {
	names := make([]string, 0, len(formula.Op.Bindings))
	for name := range formula.Op.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([][]frame.Annotation, len(names))
	for i, name := range names {
		annotations, err := s4.Eval(detections, env, formula.Op.Bindings[name])
		if err != nil {
			return false, err
		}
		sets[i] = annotations
	}

	tuples := distinctBindings(cartesianProduct(names, sets))
	if len(tuples) == 0 {
		return false, nil
	}

	for _, tuple := range tuples {
		child := extendEnv(env, tuple)
		result, err := Eval(detections, child, formula.Child)
		if err != nil {
			return false, err
		}
		if universal && !result {
			return false, nil
		}
		if !universal && result {
			return true, nil
		}
	}

	return universal, nil
}

// extendEnv builds a fresh environment with tuple's bindings overriding
// env's on name clash; env itself is left untouched.
func extendEnv(env s4.Env, tuple map[string]frame.Annotation) s4.Env {
	merged := make(s4.Env, len(env)+len(tuple))
	for k, v := range env {
		merged[k] = v
	}
	for k, v := range tuple {
		merged[k] = v
	}
	return merged
}

// distinctBindings drops any tuple that binds two differently-named
// variables to the same annotation, keeping only tuples where every bound
// variable refers to a genuinely distinct detection.
func distinctBindings(tuples []map[string]frame.Annotation) []map[string]frame.Annotation {
	kept := make([]map[string]frame.Annotation, 0, len(tuples))
	for _, tuple := range tuples {
		if allDistinct(tuple) {
			kept = append(kept, tuple)
		}
	}
	return kept
}

// allDistinct reports whether every pair of bindings in tuple refers to a
// different annotation.
func allDistinct(tuple map[string]frame.Annotation) bool {
	names := make([]string, 0, len(tuple))
	for name := range tuple {
		names = append(names, name)
	}

	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if reflect.DeepEqual(tuple[names[i]], tuple[names[j]]) {
				return false
			}
		}
	}
	return true
}

// cartesianProduct enumerates every combination of one annotation per
// bound variable, in names order. Any empty set collapses the whole
// product to empty.
func cartesianProduct(names []string, sets [][]frame.Annotation) []map[string]frame.Annotation {
	combos := []map[string]frame.Annotation{{}}

	for i, name := range names {
		if len(sets[i]) == 0 {
			return nil
		}

		next := make([]map[string]frame.Annotation, 0, len(combos)*len(sets[i]))
		for _, combo := range combos {
			for _, a := range sets[i] {
				merged := make(map[string]frame.Annotation, len(combo)+1)
				for k, v := range combo {
					merged[k] = v
				}
				merged[name] = a
				next = append(next, merged)
			}
		}
		combos = next
	}

	return combos
}

func evalBinary(detections s4.Detections, env s4.Env, formula *ir.Node) (bool, error) {
	switch formula.Op.Fol {
	case ir.Conjunction:
		lhs, err := Eval(detections, env, formula.Lhs)
		if err != nil {
			return false, err
		}
		rhs, err := Eval(detections, env, formula.Rhs)
		if err != nil {
			return false, err
		}
		return lhs && rhs, nil

	case ir.Disjunction:
		lhs, err := Eval(detections, env, formula.Lhs)
		if err != nil {
			return false, err
		}
		rhs, err := Eval(detections, env, formula.Rhs)
		if err != nil {
			return false, err
		}
		return lhs || rhs, nil

	case ir.LessThan, ir.GreaterThan, ir.LessThanEqualTo, ir.GreaterThanEqualTo:
		lhs, err := s4m.Eval(detections, env, formula.Lhs)
		if err != nil {
			return false, err
		}
		rhs, err := s4m.Eval(detections, env, formula.Rhs)
		if err != nil {
			return false, err
		}

		for _, l := range lhs {
			for _, r := range rhs {
				if compare(formula.Op.Fol, l, r) {
					return true, nil
				}
			}
		}
		return false, nil

	default:
		return false, errs.New(errs.Monitor, "s4u: unrecognized binary operator %s", formula.Op)
	}
}

func compare(op ir.FolOp, l, r float64) bool {
	switch op {
	case ir.LessThan:
		return l < r
	case ir.GreaterThan:
		return l > r
	case ir.LessThanEqualTo:
		return l <= r
	case ir.GreaterThanEqualTo:
		return l >= r
	default:
		return false
	}
}
