// Package eval implements the evaluator described in spec.md §4.5: given
// a live game state (held items, YAML options, and "opt" mode) it
// reduces a logic.Node to either "satisfied" (represented, like the
// simplifier's absent-sentinel, by a nil logic.Node) or a residual
// logic.Node explaining what's still missing.
package eval

import (
	"github.com/aplogic/manual/logic"
	"github.com/aplogic/manual/world"
)

// CategoryState is the three-valued result of asking whether a category
// is gated on by YAML and, if so, whether the gate is open (spec.md
// §4.5: "Item disabling").
type CategoryState int

const (
	ExplicitlyEnabled CategoryState = iota
	ImplicitlyEnabled
	Disabled
)

// maxSupply stands in for the source's "MAX" sentinel used as the
// opt_cap outside Opt mode, i.e. an effectively unbounded cap.
const maxSupply = int(^uint(0) >> 1)

// Evaluator carries one query's state (spec.md §3: "Evaluator state").
// It is intentionally a value type: the "is_opt" flag is scoped to a
// subtree by copying the Evaluator with the flag flipped, never by
// mutating a shared field (spec.md §9, "Opt flag as context, not
// mutation"). Tables and noExpand are reference types and are shared
// across every copy of a given query, by design: NoExpand must observe
// canReachLocation expansions from inside an Opt subtree too.
type Evaluator struct {
	Tables       *world.Tables
	YamlOptions  map[string]int
	CurrentItems map[string]int
	isOpt        bool
	noExpand     map[string]bool
}

// New constructs an Evaluator for one query. yamlOptions and
// currentItems may be nil; they are treated as empty.
func New(tables *world.Tables, yamlOptions map[string]int, currentItems map[string]int) *Evaluator {
	if yamlOptions == nil {
		yamlOptions = map[string]int{}
	}
	if currentItems == nil {
		currentItems = map[string]int{}
	}
	return &Evaluator{
		Tables:       tables,
		YamlOptions:  yamlOptions,
		CurrentItems: currentItems,
		noExpand:     map[string]bool{},
	}
}

func (e Evaluator) withOpt() Evaluator {
	e.isOpt = true
	return e
}

// InspectOpt inspects n with is_opt forced true for the whole subtree,
// for callers (like a host REPL's "opt" command) that want Opt-mode
// semantics applied at the top level rather than only inside an
// OptAll/OptOne function call.
func (e Evaluator) InspectOpt(n logic.Node) (logic.Node, bool) {
	return e.withOpt().Inspect(n)
}

// Inspect is the evaluator's single entry point (spec.md §4.5). A nil
// return means satisfied.
func (e Evaluator) Inspect(n logic.Node) (logic.Node, bool) {
	if n == nil {
		return nil, true
	}

	switch v := n.(type) {
	case *logic.Grouping:
		return e.Inspect(v.Child)

	case *logic.And:
		return e.inspectAnd(v)

	case *logic.Or:
		return e.inspectOr(v)

	case *logic.Item:
		if e.isOpt && e.itemDisabled(v.Name) {
			return nil, true
		}
		if e.CurrentItems[v.Name] > 0 {
			return nil, true
		}
		return n, false

	case *logic.Category:
		if e.isOpt && e.categoryState(v.Name) == Disabled {
			return nil, true
		}
		if e.heldInCategory(v.Name) > 0 {
			return nil, true
		}
		return n, false

	case *logic.ItemCount:
		if v.Count == 0 {
			return nil, true
		}
		if e.isOpt && e.itemDisabled(v.Name) {
			return nil, true
		}
		if e.CurrentItems[v.Name] >= v.Count {
			return nil, true
		}
		return n, false

	case *logic.CategoryCount:
		k := v.Count
		if limit := e.optCap(v.Name); limit < k {
			k = limit
		}
		if e.heldInCategory(v.Name) >= k {
			return nil, true
		}
		return n, false

	case *logic.ItemPercent:
		if e.isOpt && e.itemDisabled(v.Name) {
			return nil, true
		}
		total := e.Tables.ItemCount[v.Name]
		held := e.CurrentItems[v.Name]
		if v.Percent*total <= 100*held {
			return nil, true
		}
		return n, false

	case *logic.CategoryPercent:
		total := e.categorySupply(v.Name)
		if limit := e.optCap(v.Name); limit < total {
			total = limit
		}
		held := e.heldInCategory(v.Name)
		if v.Percent*total <= 100*held {
			return nil, true
		}
		return n, false

	case *logic.Function:
		return e.inspectFunction(v)

	default:
		return nil, true
	}
}

func (e Evaluator) inspectAnd(v *logic.And) (logic.Node, bool) {
	if _, ok := yamlGovernedFunction(v.Left); ok {
		if _, sat := e.Inspect(v.Left); !sat {
			return e.Inspect(v.Right)
		}
	}
	if _, ok := yamlGovernedFunction(v.Right); ok {
		if _, sat := e.Inspect(v.Right); !sat {
			return e.Inspect(v.Left)
		}
	}

	lRes, lSat := e.Inspect(v.Left)
	rRes, rSat := e.Inspect(v.Right)
	if lSat && rSat {
		return nil, true
	}
	return logic.NewAnd(lRes, rRes), false
}

func (e Evaluator) inspectOr(v *logic.Or) (logic.Node, bool) {
	if _, ok := yamlGovernedFunction(v.Left); ok {
		if _, sat := e.Inspect(v.Left); !sat {
			return e.Inspect(v.Right)
		}
	}
	if _, ok := yamlGovernedFunction(v.Right); ok {
		if _, sat := e.Inspect(v.Right); !sat {
			return e.Inspect(v.Left)
		}
	}

	lRes, lSat := e.Inspect(v.Left)
	if lSat {
		return nil, true
	}
	rRes, rSat := e.Inspect(v.Right)
	if rSat {
		return nil, true
	}
	return logic.NewOr(lRes, rRes), false
}

// yamlGovernedFunction reports whether n is (possibly through one or
// more Groupings) directly a call to one of the three YAML-governed
// built-ins, per spec.md §4.6's "Why-not residuals" paragraph: only a
// YAML-governed function residual triggers AND/OR annulment, not an
// arbitrary false subtree.
func yamlGovernedFunction(n logic.Node) (string, bool) {
	for {
		g, ok := n.(*logic.Grouping)
		if !ok {
			break
		}
		n = g.Child
	}
	fn, ok := n.(*logic.Function)
	if !ok {
		return "", false
	}
	switch fn.Name {
	case "YamlCompare", "YamlEnabled", "YamlDisabled":
		return fn.Name, true
	default:
		return "", false
	}
}

// categoryState implements spec.md §4.5's three-valued category gate.
func (e Evaluator) categoryState(category string) CategoryState {
	options := e.Tables.CategoryToYamlOptions[category]
	if len(options) == 0 {
		return ImplicitlyEnabled
	}
	for option := range options {
		if e.YamlOptions[option] != 0 {
			return ExplicitlyEnabled
		}
	}
	return Disabled
}

// itemDisabled implements spec.md §4.5: "An item is disabled iff it has
// categories and every category is disabled."
func (e Evaluator) itemDisabled(item string) bool {
	categories := e.Tables.ItemToCategories[item]
	if len(categories) == 0 {
		return false
	}
	for category := range categories {
		if e.categoryState(category) != Disabled {
			return false
		}
	}
	return true
}

// optCap returns the opt_cap(c) of spec.md §4.5: under Opt, the summed
// supply of non-disabled items in category c; otherwise an effectively
// unbounded cap.
func (e Evaluator) optCap(category string) int {
	if !e.isOpt {
		return maxSupply
	}
	total := 0
	for item := range e.Tables.CategoryToItems[category] {
		if !e.itemDisabled(item) {
			total += e.Tables.ItemCount[item]
		}
	}
	return total
}

func (e Evaluator) heldInCategory(category string) int {
	held := 0
	for item := range e.Tables.CategoryToItems[category] {
		held += e.CurrentItems[item]
	}
	return held
}

func (e Evaluator) categorySupply(category string) int {
	supply := 0
	for item := range e.Tables.CategoryToItems[category] {
		supply += e.Tables.ItemCount[item]
	}
	return supply
}
