package eval

import (
	"strconv"
	"strings"

	"github.com/aplogic/manual/logic"
	"github.com/aplogic/manual/parser"
)

// inspectFunction dispatches a Function node by name (spec.md §4.6). An
// unknown function name is permissive forward-compatibility: it
// evaluates to satisfied rather than erroring.
func (e Evaluator) inspectFunction(fn *logic.Function) (logic.Node, bool) {
	switch fn.Name {
	case "canReachLocation":
		return e.canReachLocation(fn.Args)
	case "ItemValue":
		return e.itemValue(fn, fn.Args)
	case "OptAll", "OptOne":
		return e.inspectOpt(fn.Args)
	case "YamlCompare":
		return e.yamlCompare(fn, fn.Args)
	case "YamlEnabled":
		if e.YamlOptions[fn.Args] != 0 {
			return nil, true
		}
		return fn, false
	case "YamlDisabled":
		if e.YamlOptions[fn.Args] == 0 {
			return nil, true
		}
		return fn, false
	default:
		return nil, true
	}
}

// canReachLocation breaks cycles via noExpand, shared across every copy
// of this query's Evaluator (spec.md §4.6, §8 "Cycle safety").
func (e Evaluator) canReachLocation(loc string) (logic.Node, bool) {
	if e.noExpand[loc] {
		return nil, true
	}
	e.noExpand[loc] = true
	defer delete(e.noExpand, loc)

	node, ok := e.Tables.LocationsToLogic[loc]
	if !ok {
		return nil, true
	}
	return e.Inspect(node)
}

// itemValue implements spec.md §4.6: arg is "phantom-item:count"; sum
// phantom credits over held items whose item_to_phantoms entries name
// the requested phantom.
func (e Evaluator) itemValue(fn *logic.Function, arg string) (logic.Node, bool) {
	phantomName, countStr, found := strings.Cut(arg, ":")
	if !found {
		return nil, true
	}
	want, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil {
		return nil, true
	}
	phantomName = strings.TrimSpace(phantomName)

	sum := 0
	for item, held := range e.CurrentItems {
		if held <= 0 {
			continue
		}
		for _, p := range e.Tables.ItemToPhantoms[item] {
			if p.Name != phantomName {
				continue
			}
			sum += p.Count * held
		}
	}

	if sum >= want {
		return nil, true
	}
	return fn, false
}

// inspectOpt implements OptAll/OptOne: parse the unevaluated argument
// text, unwrap a single enclosing Grouping if present, then re-inspect
// with is_opt forced true for the subtree (spec.md §4.6, §9).
func (e Evaluator) inspectOpt(args string) (logic.Node, bool) {
	inner, ok := parser.Parse(args, nil)
	if !ok {
		return nil, true
	}
	if g, isGrouping := inner.(*logic.Grouping); isGrouping {
		inner = g.Child
	}
	return e.withOpt().Inspect(inner)
}

// yamlCompare implements spec.md §4.6: LHS <op> RHS, operators tried in
// the given order so that "==" is preferred over "=" and ">="/"<=" over
// their single-character forms.
func (e Evaluator) yamlCompare(fn *logic.Function, expr string) (logic.Node, bool) {
	ops := []string{"==", "!=", ">=", "<=", "=", "<", ">"}

	var op string
	var lhs, rhs string
	found := false
	for _, candidate := range ops {
		if idx := strings.Index(expr, candidate); idx >= 0 {
			lhs = expr[:idx]
			rhs = expr[idx+len(candidate):]
			op = candidate
			found = true
			break
		}
	}
	if !found {
		return nil, true
	}

	lhs = strings.TrimSpace(lhs)
	invert := strings.HasPrefix(lhs, "!")
	if invert {
		lhs = strings.TrimPrefix(lhs, "!")
	}

	rhsInt, err := strconv.Atoi(strings.TrimSpace(rhs))
	if err != nil {
		return nil, true
	}

	lhsInt := e.YamlOptions[lhs]

	var result bool
	switch op {
	case "==", "=":
		result = lhsInt == rhsInt
	case "!=":
		result = lhsInt != rhsInt
	case ">=":
		result = lhsInt >= rhsInt
	case "<=":
		result = lhsInt <= rhsInt
	case "<":
		result = lhsInt < rhsInt
	case ">":
		result = lhsInt > rhsInt
	}

	if invert {
		result = !result
	}

	if result {
		return nil, true
	}
	return fn, false
}
