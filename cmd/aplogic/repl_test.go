package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplogic/manual/history"
	"github.com/aplogic/manual/hostconfig"
	"github.com/aplogic/manual/world"
)

func testSession(t *testing.T) *session {
	t.Helper()
	data := world.Data{
		Items: []world.ItemData{{Name: "sword", Count: 1}},
		Locations: []world.LocationData{
			{Name: "Town Gate", Requires: "|sword|"},
		},
	}
	yamlOptions := &hostconfig.YamlOptions{}
	return newSession(data, yamlOptions, history.History{}, filepath.Join(t.TempDir(), "history.json"))
}

func TestREPLHoldAndCheck(t *testing.T) {
	s := testSession(t)
	var out bytes.Buffer

	in := bytes.NewBufferString("check \"Town Gate\"\nhold sword\ncheck \"Town Gate\"\nquit\n")
	s.runREPL(in, &out)

	output := out.String()
	assert.Contains(t, output, "not reachable: |sword|")
	assert.Contains(t, output, "\nreachable\n")
}

func TestREPLUnknownLocation(t *testing.T) {
	s := testSession(t)
	var out bytes.Buffer
	s.runREPL(bytes.NewBufferString("check Nowhere\nquit\n"), &out)
	assert.Contains(t, out.String(), "unknown location: Nowhere")
}

func TestREPLQuitSavesHistory(t *testing.T) {
	s := testSession(t)
	s.hist.Goal = "defeat_boss"
	var out bytes.Buffer
	s.runREPL(bytes.NewBufferString("quit\n"), &out)

	loaded, err := history.Load(s.historyPath)
	require.NoError(t, err)
	assert.Equal(t, "defeat_boss", loaded.Goal)
}
