package world

import (
	"sort"

	"github.com/aplogic/manual/logic"
	"github.com/aplogic/manual/parser"
)

// LoadWorld builds the canonical Tables described in spec.md §3 from
// already-decoded JSON tables. Parse errors in any `requires` string are
// reported through sink (which may be nil) rather than aborting the
// load; an invalid requires string on a location or region simply
// parses to a nil (vacuously satisfied) logic node, matching the source
// behaviour of never hard-failing a world load over one bad string.
func LoadWorld(data Data, sink parser.ErrorSink) *Tables {
	t := newTables()

	loadItems(t, data.Items)
	loadCategories(t, data.Categories)
	loadFillerItem(t, data.Game)

	regions := newRegionCompiler(data.Regions, sink)
	loadLocations(t, data.Locations, regions, sink)

	return t
}

func loadItems(t *Tables, items []ItemData) {
	for _, item := range items {
		t.ItemCount[item.Name] = int(item.Count)

		for _, category := range item.Category {
			addToSetMap(t.ItemToCategories, item.Name, category)
			addToSetMap(t.CategoryToItems, category, item.Name)
		}

		if len(item.Value) == 0 {
			continue
		}

		names := make([]string, 0, len(item.Value))
		for phantomName := range item.Value {
			names = append(names, phantomName)
		}
		sort.Strings(names)

		phantoms := make([]Phantom, 0, len(names))
		for _, phantomName := range names {
			phantoms = append(phantoms, Phantom{Name: phantomName, Count: item.Value[phantomName]})
		}
		t.ItemToPhantoms[item.Name] = phantoms
	}
}

func loadCategories(t *Tables, categories map[string]CategoryData) {
	for name, category := range categories {
		if category.Hidden {
			t.HiddenCategories[name] = true
		}
		for _, option := range category.YamlOption {
			addToSetMap(t.CategoryToYamlOptions, name, option)
		}
	}
}

// loadFillerItem implements spec.md §3: "the filler item's name, if
// declared, is added with count 1 and category '(No Category)'". An
// item that was already declared in the items table keeps its own
// count and categories: the count is only set when the items table has
// no entry for it, and '(No Category)' is only added when it has no
// category of its own.
func loadFillerItem(t *Tables, game Game) {
	name := game.FillerItemName
	if name == "" {
		return
	}

	if _, ok := t.ItemCount[name]; !ok {
		t.ItemCount[name] = 1
	}
	if len(t.ItemToCategories[name]) == 0 {
		addToSetMap(t.ItemToCategories, name, NoCategoryName)
		addToSetMap(t.CategoryToItems, NoCategoryName, name)
	}
}

func loadLocations(t *Tables, locations []LocationData, regions *regionCompiler, sink parser.ErrorSink) {
	for _, loc := range locations {
		node, _ := parser.Parse(loc.Requires, sink)

		if loc.Region != "" {
			node = logic.NewAnd(node, regions.compileReachability(loc.Region))
		}

		t.LocationsToLogic[loc.Name] = node

		for _, category := range loc.Category {
			addToSetMap(t.CategoryToLocations, category, loc.Name)
		}
	}
}
