package world

import (
	"github.com/aplogic/manual/logic"
	"github.com/aplogic/manual/parser"
)

// regionCompiler lowers the region graph (spec.md §4.4) into per-target
// reachability logic, memoising both the parsed per-region `requires`
// string and the fully compiled reachability expression for a target
// region, since multiple locations commonly share a region.
type regionCompiler struct {
	regions map[string]RegionData
	sink    parser.ErrorSink

	requiresCache map[string]logic.Node
	requiresDone  map[string]bool

	compiled map[string]logic.Node
}

func newRegionCompiler(regions map[string]RegionData, sink parser.ErrorSink) *regionCompiler {
	return &regionCompiler{
		regions:       regions,
		sink:          sink,
		requiresCache: make(map[string]logic.Node),
		requiresDone:  make(map[string]bool),
		compiled:      make(map[string]logic.Node),
	}
}

// ownRequires returns the parsed, cached `requires` logic declared
// directly on region name, or nil if it has none (or name isn't a
// known region).
func (rc *regionCompiler) ownRequires(name string) logic.Node {
	if rc.requiresDone[name] {
		return rc.requiresCache[name]
	}
	rc.requiresDone[name] = true

	region, ok := rc.regions[name]
	if !ok {
		return nil
	}
	node, _ := parser.Parse(region.Requires, rc.sink)
	rc.requiresCache[name] = node
	return node
}

// edgeRequires parses an entry from an exit_requires/entrance_requires
// map, which are not cached since each is consulted at most once per
// edge traversal in a given compile.
func (rc *regionCompiler) edgeRequires(m map[string]string, key string) logic.Node {
	if m == nil {
		return nil
	}
	src, ok := m[key]
	if !ok {
		return nil
	}
	node, _ := parser.Parse(src, rc.sink)
	return node
}

// compileReachability compiles "can reach region target" into logic,
// per spec.md §4.4. If target is not a known region, it returns nil
// (vacuously satisfied) so that a world with no regions table, or a
// location referencing an unmodelled region, degrades gracefully.
func (rc *regionCompiler) compileReachability(target string) logic.Node {
	if cached, ok := rc.compiled[target]; ok {
		return cached
	}
	if _, ok := rc.regions[target]; !ok {
		return nil
	}

	var altPaths []logic.Node
	if rc.regions[target].Starting {
		altPaths = append(altPaths, nil)
	}

	for name, region := range rc.regions {
		if !region.Starting || name == target {
			continue
		}

		visited := make(map[string]bool)
		for other, otherRegion := range rc.regions {
			if otherRegion.Starting && other != name {
				visited[other] = true
			}
		}

		if path, found := rc.dfs(name, target, visited); found {
			altPaths = append(altPaths, path)
		}
	}

	combined := orAll(altPaths)
	result := logic.NewAnd(combined, rc.ownRequires(target))
	rc.compiled[target] = result
	return result
}

// dfs walks from current toward target, returning the accumulated
// requirement logic for the best-known paths found from current (OR of
// all successful branches) and whether any path reached target. visited
// is copied before each recursive branch so that sibling branches don't
// interfere with one another (spec.md §4.4: "copied when branching").
func (rc *regionCompiler) dfs(current, target string, visited map[string]bool) (logic.Node, bool) {
	if current == target {
		return nil, true
	}

	region, ok := rc.regions[current]
	if !ok {
		return nil, false
	}

	var alt []logic.Node
	for _, next := range region.ConnectsTo {
		if visited[next] {
			continue
		}

		branchVisited := make(map[string]bool, len(visited)+1)
		for k, v := range visited {
			branchVisited[k] = v
		}
		branchVisited[current] = true

		childLogic, found := rc.dfs(next, target, branchVisited)
		if !found {
			continue
		}

		nextRegion := rc.regions[next]
		edge := rc.ownRequires(current)
		edge = logic.NewAnd(edge, rc.edgeRequires(region.ExitRequires, next))
		// entrance_requires is declared on the region being entered
		// (next) and keyed by the name of the region being left
		// (current), the "connection name" (spec.md §4.4 policy note).
		edge = logic.NewAnd(edge, rc.edgeRequires(nextRegion.EntranceRequires, current))
		edge = logic.NewAnd(edge, childLogic)

		alt = append(alt, edge)
	}

	if len(alt) == 0 {
		return nil, false
	}
	return orAll(alt), true
}

// orAll folds a slice of logic nodes (any of which may be the nil
// absent-sentinel) through the simplifying Or constructor. An empty
// slice returns nil.
func orAll(nodes []logic.Node) logic.Node {
	var result logic.Node
	first := true
	for _, n := range nodes {
		if first {
			result = n
			first = false
			continue
		}
		result = logic.NewOr(result, n)
	}
	return result
}
