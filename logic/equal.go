package logic

// Equal reports whether a and b are structurally equal. AND and OR are
// equal up to commutativity of their two direct operands (A AND B == B
// AND A) but not associativity; the simplifier is responsible for any
// deeper rearrangement, per spec.md §3/§9.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch a := a.(type) {
	case *Grouping:
		b, ok := b.(*Grouping)
		return ok && Equal(a.Child, b.Child)

	case *And:
		b, ok := b.(*And)
		if !ok {
			return false
		}
		return (Equal(a.Left, b.Left) && Equal(a.Right, b.Right)) ||
			(Equal(a.Left, b.Right) && Equal(a.Right, b.Left))

	case *Or:
		b, ok := b.(*Or)
		if !ok {
			return false
		}
		return (Equal(a.Left, b.Left) && Equal(a.Right, b.Right)) ||
			(Equal(a.Left, b.Right) && Equal(a.Right, b.Left))

	case *Item:
		b, ok := b.(*Item)
		return ok && a.Name == b.Name

	case *Category:
		b, ok := b.(*Category)
		return ok && a.Name == b.Name

	case *ItemCount:
		b, ok := b.(*ItemCount)
		return ok && a.Name == b.Name && a.Count == b.Count

	case *CategoryCount:
		b, ok := b.(*CategoryCount)
		return ok && a.Name == b.Name && a.Count == b.Count

	case *ItemPercent:
		b, ok := b.(*ItemPercent)
		return ok && a.Name == b.Name && a.Percent == b.Percent

	case *CategoryPercent:
		b, ok := b.(*CategoryPercent)
		return ok && a.Name == b.Name && a.Percent == b.Percent

	case *Function:
		b, ok := b.(*Function)
		return ok && a.Name == b.Name && a.Args == b.Args

	default:
		return false
	}
}
