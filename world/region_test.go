package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aplogic/manual/logic"
)

func TestRegionChainReachability(t *testing.T) {
	// Start (starting) -> Mid (requires |key|) -> End.
	regions := map[string]RegionData{
		"Start": {Starting: true, ConnectsTo: []string{"Mid"}},
		"Mid":    {Requires: "|key|", ConnectsTo: []string{"End"}},
		"End":    {},
	}

	rc := newRegionCompiler(regions, nil)
	result := rc.compileReachability("End")
	assert.Equal(t, "|key|", logic.CanonicalString(result))
}

func TestRegionOwnRequiresAndedAtTarget(t *testing.T) {
	regions := map[string]RegionData{
		"Start": {Starting: true, ConnectsTo: []string{"End"}},
		"End":    {Requires: "|boots|"},
	}

	rc := newRegionCompiler(regions, nil)
	result := rc.compileReachability("End")
	assert.Equal(t, "|boots|", logic.CanonicalString(result))
}

func TestRegionStartingTargetIsTriviallySatisfied(t *testing.T) {
	regions := map[string]RegionData{
		"Start": {Starting: true},
	}
	rc := newRegionCompiler(regions, nil)
	result := rc.compileReachability("Start")
	assert.Nil(t, result)
}

func TestRegionOtherStartingRegionsAreNotTransited(t *testing.T) {
	// Start can only reach End by transiting OtherStart, a second
	// starting region, which must be blocked as "another player's
	// starting position you cannot use".
	regions := map[string]RegionData{
		"Start":      {Starting: true, ConnectsTo: []string{"OtherStart"}},
		"OtherStart": {Starting: true, ConnectsTo: []string{"End"}},
		"End":        {},
	}

	rc := newRegionCompiler(regions, nil)

	visited := map[string]bool{"OtherStart": true}
	_, found := rc.dfs("Start", "End", visited)
	assert.False(t, found, "DFS from Start must not transit through OtherStart")
}

func TestRegionExitAndEntranceRequiresApplied(t *testing.T) {
	regions := map[string]RegionData{
		"Start": {Starting: true, ConnectsTo: []string{"End"}, ExitRequires: map[string]string{"End": "|torch|"}},
		"End":   {EntranceRequires: map[string]string{"Start": "|rope|"}},
	}

	rc := newRegionCompiler(regions, nil)
	result := rc.compileReachability("End")
	canonical := logic.CanonicalString(result)
	assert.Contains(t, canonical, "torch")
	assert.Contains(t, canonical, "rope")
}

func TestRegionUnknownRegionNameDegradesToNil(t *testing.T) {
	rc := newRegionCompiler(map[string]RegionData{}, nil)
	assert.Nil(t, rc.compileReachability("nowhere"))
}
