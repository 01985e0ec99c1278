package logic

// NewOr and NewAnd are the only legal constructors for Or and And
// nodes (spec.md §4.3). They apply a fixed sequence of algebraic
// rewrites: identity, idempotence, absorption, and a bounded recursive
// descent that re-associates chains of the same connective, before
// falling back to an unsimplified pairwise node. Only the
// absorption-into-same-connective and re-association rewrites mark the
// resulting And/Or node optimised; identity, idempotence and plain
// absorption return the surviving operand without marking it (leaf
// nodes always count as optimised, see IsOptimised). The re-association
// step reads the flag to tell whether a trial fold simplified; nothing
// else consults it.
//
// spec.md §8 states the identity law as `Or(absent, L) == And(absent,
// L) == L`: the absent sentinel (nil) behaves as the identity element
// for BOTH connectives, not as an annihilator for one of them. This
// resolves an ambiguity in §4.3's prose (which describes AND's
// counterpart to identity as "annulment"); §8 is the concrete,
// testable contract, so it wins. See DESIGN.md.

// unwrapGrouping strips any number of Grouping wrappers, returning the
// innermost node. The absorption/idempotent laws below must see
// through parentheses (a Grouping(x) evaluates identically to x,
// spec.md §4.3), or a parenthesized operand like `(|a| AND |b|)` would
// silently defeat simplification just because the parser wrapped it.
func unwrapGrouping(n Node) Node {
	for {
		g, ok := n.(*Grouping)
		if !ok {
			return n
		}
		n = g.Child
	}
}

// NewOr builds the disjunction of l and r, applying OR's algebraic
// laws.
func NewOr(l, r Node) Node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if Equal(l, r) {
		return l
	}

	// Absorption-into-OR idempotent: Or(Or(a,b), b) == Or(a,b).
	if lo, ok := unwrapGrouping(l).(*Or); ok {
		if Equal(lo.Left, r) || Equal(lo.Right, r) {
			markOptimised(l)
			return l
		}
	}
	if ro, ok := unwrapGrouping(r).(*Or); ok {
		if Equal(ro.Left, l) || Equal(ro.Right, l) {
			markOptimised(r)
			return r
		}
	}

	// Absorption: Or(And(a,b), a) == a.
	if la, ok := unwrapGrouping(l).(*And); ok {
		if Equal(la.Left, r) || Equal(la.Right, r) {
			return r
		}
	}
	if ra, ok := unwrapGrouping(r).(*And); ok {
		if Equal(ra.Left, l) || Equal(ra.Right, l) {
			return l
		}
	}

	// Recursive descent into OR: try to fold r (or l) into a nested Or
	// operand, re-associating the chain when the fold simplifies.
	if lo, ok := unwrapGrouping(l).(*Or); ok {
		if sub := NewOr(lo.Right, r); IsOptimised(sub) {
			return newOrNode(lo.Left, sub)
		}
		if sub := NewOr(lo.Left, r); IsOptimised(sub) {
			return newOrNode(lo.Right, sub)
		}
	}
	if ro, ok := unwrapGrouping(r).(*Or); ok {
		if sub := NewOr(l, ro.Left); IsOptimised(sub) {
			return newOrNode(sub, ro.Right)
		}
		if sub := NewOr(l, ro.Right); IsOptimised(sub) {
			return newOrNode(sub, ro.Left)
		}
	}

	return &Or{Left: l, Right: r}
}

func newOrNode(l, r Node) Node {
	n := &Or{Left: l, Right: r, optimised: true}
	return n
}

// NewAnd builds the conjunction of l and r, applying AND's algebraic
// laws (the mirror image of OR's, per spec.md §4.3).
func NewAnd(l, r Node) Node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if Equal(l, r) {
		return l
	}

	// Absorption-into-AND idempotent: And(And(a,b), b) == And(a,b).
	if la, ok := unwrapGrouping(l).(*And); ok {
		if Equal(la.Left, r) || Equal(la.Right, r) {
			markOptimised(l)
			return l
		}
	}
	if ra, ok := unwrapGrouping(r).(*And); ok {
		if Equal(ra.Left, l) || Equal(ra.Right, l) {
			markOptimised(r)
			return r
		}
	}

	// Absorption: And(Or(a,b), a) == a.
	if lo, ok := unwrapGrouping(l).(*Or); ok {
		if Equal(lo.Left, r) || Equal(lo.Right, r) {
			return r
		}
	}
	if ro, ok := unwrapGrouping(r).(*Or); ok {
		if Equal(ro.Left, l) || Equal(ro.Right, l) {
			return l
		}
	}

	// Recursive descent into AND: mirror of OR's re-association.
	if la, ok := unwrapGrouping(l).(*And); ok {
		if sub := NewAnd(la.Right, r); IsOptimised(sub) {
			return newAndNode(la.Left, sub)
		}
		if sub := NewAnd(la.Left, r); IsOptimised(sub) {
			return newAndNode(la.Right, sub)
		}
	}
	if ra, ok := unwrapGrouping(r).(*And); ok {
		if sub := NewAnd(l, ra.Left); IsOptimised(sub) {
			return newAndNode(sub, ra.Right)
		}
		if sub := NewAnd(l, ra.Right); IsOptimised(sub) {
			return newAndNode(sub, ra.Left)
		}
	}

	return &And{Left: l, Right: r}
}

func newAndNode(l, r Node) Node {
	n := &And{Left: l, Right: r, optimised: true}
	return n
}

// NewGrouping wraps child in an explicit grouping, used by the parser
// to preserve parentheses for round-trip printing.
func NewGrouping(child Node) Node {
	return &Grouping{Child: child, optimised: true}
}
