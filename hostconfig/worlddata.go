// Package hostconfig loads the on-disk artifacts a host application
// feeds into the core: a world's JSON data tables and a player's YAML
// settings file. It sits outside the pure core (spec.md §1's "external
// collaborators") the way the teacher's config package sits outside
// its input-handling core: config/file.go decodes JSON into a RuleSet
// the same shape-distance from the editor's document model as this
// package's decoding is from the logic engine.
package hostconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/aplogic/manual/world"
)

// LoadWorldData reads game.json, items.json, categories.json,
// locations.json and regions.json from dir, the contents of an
// extracted .apworld's data folder, and decodes them into world.Data
// (spec.md §6). A missing regions.json or categories.json is not an
// error: the corresponding table is left empty, matching spec.md §7
// item 3's graceful degradation for missing tables.
func LoadWorldData(dir string) (world.Data, error) {
	var data world.Data

	if err := decodeJSONFile(filepath.Join(dir, "game.json"), &data.Game); err != nil {
		return world.Data{}, err
	}
	if err := decodeJSONFile(filepath.Join(dir, "items.json"), &data.Items); err != nil {
		return world.Data{}, err
	}
	if err := decodeOptionalJSONFile(filepath.Join(dir, "categories.json"), &data.Categories); err != nil {
		return world.Data{}, err
	}
	if err := decodeJSONFile(filepath.Join(dir, "locations.json"), &data.Locations); err != nil {
		return world.Data{}, err
	}
	if err := decodeOptionalJSONFile(filepath.Join(dir, "regions.json"), &data.Regions); err != nil {
		return world.Data{}, err
	}
	if err := decodeOptionalJSONFile(filepath.Join(dir, "options.json"), &data.Options); err != nil {
		return world.Data{}, err
	}

	return data, nil
}

func decodeJSONFile(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "os.ReadFile(%s)", path)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "json.Unmarshal(%s)", path)
	}
	return nil
}

// decodeOptionalJSONFile treats a missing file as "leave v at its zero
// value" rather than an error (spec.md §7 item 3).
func decodeOptionalJSONFile(path string, v interface{}) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "os.ReadFile(%s)", path)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Wrapf(err, "json.Unmarshal(%s)", path)
	}
	return nil
}
