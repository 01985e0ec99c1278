package logic

import (
	"strconv"
)

// CanonicalString renders n in the same textual form a requires-string
// author would have written, per spec.md §6.
func CanonicalString(n Node) string {
	if n == nil {
		return ""
	}

	switch n := n.(type) {
	case *Grouping:
		return "(" + CanonicalString(n.Child) + ")"
	case *And:
		return CanonicalString(n.Left) + " AND " + CanonicalString(n.Right)
	case *Or:
		return CanonicalString(n.Left) + " OR " + CanonicalString(n.Right)
	case *Item:
		return "|" + n.Name + "|"
	case *Category:
		return "|@" + n.Name + "|"
	case *ItemCount:
		return "|" + n.Name + ":" + strconv.Itoa(n.Count) + "|"
	case *CategoryCount:
		return "|@" + n.Name + ":" + strconv.Itoa(n.Count) + "|"
	case *ItemPercent:
		return "|" + n.Name + ":" + strconv.Itoa(n.Percent) + "%|"
	case *CategoryPercent:
		return "|@" + n.Name + ":" + strconv.Itoa(n.Percent) + "%|"
	case *Function:
		return "{" + n.Name + "(" + n.Args + ")}"
	default:
		return ""
	}
}

// leafKey returns a string that is equal for two leaf nodes iff the
// nodes carry the same variant and payload, used to assign stable
// single-letter names in BoolAlgebraString.
func leafKey(n Node) string {
	switch n := n.(type) {
	case *Item:
		return "item:" + n.Name
	case *Category:
		return "cat:" + n.Name
	case *ItemCount:
		return "itemcount:" + n.Name + ":" + strconv.Itoa(n.Count)
	case *CategoryCount:
		return "catcount:" + n.Name + ":" + strconv.Itoa(n.Count)
	case *ItemPercent:
		return "itempct:" + n.Name + ":" + strconv.Itoa(n.Percent)
	case *CategoryPercent:
		return "catpct:" + n.Name + ":" + strconv.Itoa(n.Percent)
	case *Function:
		return "fn:" + n.Name + ":" + n.Args
	default:
		return ""
	}
}

const leafAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// BoolAlgebraString renders n as a pure Boolean-algebra expression:
// every distinct leaf is renamed to a single letter (A-Z, a-z, in
// first-occurrence order, wrapping modulo 52 if there are more than 52
// distinct leaves), AND/OR are rendered with the caller-supplied infix
// operator strings, and groupings are preserved.
func BoolAlgebraString(n Node, andOp, orOp string) string {
	names := make(map[string]string)
	var order []string
	var nameFor func(Node) string
	nameFor = func(leaf Node) string {
		key := leafKey(leaf)
		if name, ok := names[key]; ok {
			return name
		}
		idx := len(order)
		name := string(leafAlphabet[idx%len(leafAlphabet)])
		names[key] = name
		order = append(order, key)
		return name
	}

	var render func(Node) string
	render = func(n Node) string {
		switch n := n.(type) {
		case nil:
			return ""
		case *Grouping:
			return "(" + render(n.Child) + ")"
		case *And:
			return render(n.Left) + andOp + render(n.Right)
		case *Or:
			return render(n.Left) + orOp + render(n.Right)
		default:
			return nameFor(n)
		}
	}

	return render(n)
}

// String implements a convenient debug form for Node using the
// canonical printer.
func String(n Node) string {
	return CanonicalString(n)
}
