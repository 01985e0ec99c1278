package world

import "github.com/aplogic/manual/logic"

// NoCategoryName is the synthetic category assigned to the filler item
// when it is declared but carries no category of its own (spec.md §3).
const NoCategoryName = "(No Category)"

// Phantom is one (phantom-item, count) credit an item contributes
// toward a compound ItemValue goal (spec.md §3, §4.6).
type Phantom struct {
	Name  string
	Count int
}

// Tables are the canonical, read-only lookups built once per world
// load (spec.md §3). They are safe to share across concurrently
// running query threads once construction (LoadWorld) completes.
type Tables struct {
	// ItemCount is the supply of each item in the pool.
	ItemCount map[string]int

	// ItemToCategories and CategoryToItems are inverses of one another.
	ItemToCategories map[string]map[string]bool
	CategoryToItems  map[string]map[string]bool

	// CategoryToYamlOptions maps a category to the set of YAML option
	// names that gate it.
	CategoryToYamlOptions map[string]map[string]bool

	// HiddenCategories holds categories declared `hidden: true`.
	HiddenCategories map[string]bool

	// ItemToPhantoms maps a held item to the phantom-item credits it
	// contributes, in a stable (name-sorted) order.
	ItemToPhantoms map[string][]Phantom

	// LocationsToLogic maps a location name to its fully compiled,
	// simplified logic (own requires AND-composed with the region's
	// compiled reachability logic, if any).
	LocationsToLogic map[string]logic.Node

	// CategoryToLocations maps a category to the set of location names
	// tagged with it.
	CategoryToLocations map[string]map[string]bool
}

func newTables() *Tables {
	return &Tables{
		ItemCount:             make(map[string]int),
		ItemToCategories:      make(map[string]map[string]bool),
		CategoryToItems:       make(map[string]map[string]bool),
		CategoryToYamlOptions: make(map[string]map[string]bool),
		HiddenCategories:      make(map[string]bool),
		ItemToPhantoms:        make(map[string][]Phantom),
		LocationsToLogic:      make(map[string]logic.Node),
		CategoryToLocations:   make(map[string]map[string]bool),
	}
}

func addToSetMap(m map[string]map[string]bool, key, value string) {
	set, ok := m[key]
	if !ok {
		set = make(map[string]bool)
		m[key] = set
	}
	set[value] = true
}
