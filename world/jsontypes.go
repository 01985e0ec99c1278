// Package world builds the canonical fast-lookup tables and per-location
// logic described in spec.md §3/§4.4: it is the "World Loader"
// component, turning decoded JSON tables into parsed, simplified
// ApLogic and the region-graph reachability logic compiled from
// regions.json.
package world

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Data is the already-decoded world description the core accepts, per
// spec.md §6. Field names mirror the JSON contract exactly.
type Data struct {
	Game       Game                    `json:"game"`
	Categories map[string]CategoryData `json:"categories"`
	Items      []ItemData              `json:"items"`
	Locations  []LocationData          `json:"locations"`
	Options    map[string]interface{}  `json:"options"`
	Regions    map[string]RegionData   `json:"regions"`
}

// Game carries whole-world metadata.
type Game struct {
	FillerItemName string `json:"filler_item_name"`
}

// CategoryData describes one entry in the categories table.
type CategoryData struct {
	Hidden     bool        `json:"hidden"`
	YamlOption StringSlice `json:"yaml_option"`
}

// ItemData describes one entry in the items table.
type ItemData struct {
	Name     string         `json:"name"`
	Count    IntOrString    `json:"count"`
	Category StringSlice    `json:"category"`
	Value    map[string]int `json:"value"`
}

// LocationData describes one entry in the locations table.
type LocationData struct {
	Name     string      `json:"name"`
	Requires string      `json:"requires"`
	Region   string      `json:"region"`
	Category StringSlice `json:"category"`
	Hidden   bool        `json:"hidden"`
	Victory  bool        `json:"victory"`
}

// RegionData describes one entry in the regions table.
type RegionData struct {
	Starting         bool              `json:"starting"`
	Requires         string            `json:"requires"`
	ConnectsTo       []string          `json:"connects_to"`
	ExitRequires     map[string]string `json:"exit_requires"`
	EntranceRequires map[string]string `json:"entrance_requires"`
}

// StringSlice decodes a JSON field that a Manual world author may have
// written as either a single string or an array of strings, a common
// looseness in hand-authored JSON data tables.
type StringSlice []string

func (s *StringSlice) UnmarshalJSON(data []byte) error {
	var asSlice []string
	if err := json.Unmarshal(data, &asSlice); err == nil {
		*s = asSlice
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == "" {
			*s = nil
		} else {
			*s = []string{asString}
		}
		return nil
	}

	return fmt.Errorf("StringSlice: value is neither a string nor an array of strings: %s", string(data))
}

// IntOrString decodes a JSON field that may be a JSON number or a
// numeric string (again, a common looseness in hand-authored tables).
// A missing or unparseable value defaults to zero.
type IntOrString int

func (n *IntOrString) UnmarshalJSON(data []byte) error {
	var asInt int
	if err := json.Unmarshal(data, &asInt); err == nil {
		*n = IntOrString(asInt)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == "" {
			*n = 0
			return nil
		}
		v, err := strconv.Atoi(asString)
		if err != nil {
			return fmt.Errorf("IntOrString: %q is not an integer", asString)
		}
		*n = IntOrString(v)
		return nil
	}

	return fmt.Errorf("IntOrString: value is neither a number nor a numeric string: %s", string(data))
}
