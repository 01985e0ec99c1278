package hostconfig

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YamlOptions is the core's opaque YAML interface (spec.md §6): option
// values coerced to int (booleans to 0/1), plus the deprioritized/
// prioritized location sets and a mutable Goal. LoadYamlOptions fills
// Goal verbatim from the file's `goal` key; world.LoadWorld does not
// receive a YamlOptions and never sets it.
type YamlOptions struct {
	options       map[string]int
	deprioritized map[string]bool
	prioritized   map[string]bool
	Goal          string
}

func (y *YamlOptions) Options() map[string]int       { return y.options }
func (y *YamlOptions) Deprioritized() map[string]bool { return y.deprioritized }
func (y *YamlOptions) Prioritized() map[string]bool   { return y.prioritized }

// rawYamlConfig mirrors the on-disk shape of a player's settings file:
// arbitrary option keys at the top level, plus three reserved keys for
// location preferences and the goal index.
type rawYamlConfig struct {
	DeprioritizedLocations []string               `yaml:"deprioritized_locations"`
	PrioritizedLocations   []string               `yaml:"prioritized_locations"`
	Goal                   string                 `yaml:"goal"`
	Options                map[string]interface{} `yaml:",inline"`
}

// LoadYamlOptions reads a player's YAML settings file, mirroring the
// teacher's app/config.go unmarshalRuleSet pattern (yaml.v3 decode,
// error wrapped with github.com/pkg/errors).
func LoadYamlOptions(path string) (*YamlOptions, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "os.ReadFile(%s)", path)
	}

	var cfg rawYamlConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrapf(err, "yaml.Unmarshal(%s)", path)
	}

	y := &YamlOptions{
		options:       make(map[string]int, len(cfg.Options)),
		deprioritized: toSet(cfg.DeprioritizedLocations),
		prioritized:   toSet(cfg.PrioritizedLocations),
		Goal:          cfg.Goal,
	}
	for name, v := range cfg.Options {
		y.options[name] = coerceToInt(v)
	}

	return y, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// coerceToInt implements spec.md §3's "yaml_options: name -> int
// (booleans coerced to 0/1)" for the handful of scalar shapes a YAML
// settings value can take.
func coerceToInt(v interface{}) int {
	switch val := v.(type) {
	case bool:
		if val {
			return 1
		}
		return 0
	case int:
		return val
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
