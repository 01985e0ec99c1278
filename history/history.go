// Package history persists, across runs, the set of deprioritized and
// prioritized locations and the last computed goal string (SPEC_FULL.md
// "Session history"). It is a host-facing collaborator, never invoked
// from eval.Evaluator.Inspect.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

// remoteHistoryPathEnvVar is the one environment variable in the
// core's purview (spec.md §6).
const remoteHistoryPathEnvVar = "REMOTE_HISTORY_PATH"

// History is the persisted state of one player's session.
type History struct {
	Deprioritized []string `json:"deprioritized_locations"`
	Prioritized   []string `json:"prioritized_locations"`
	Goal          string   `json:"goal"`
}

// DefaultPath resolves the default history file location, mirroring
// the teacher's app.ConfigPath use of xdg.ConfigFile.
func DefaultPath() (string, error) {
	if override := os.Getenv(remoteHistoryPathEnvVar); override != "" {
		return override, nil
	}
	path, err := xdg.ConfigFile(filepath.Join("aplogic", "history.json"))
	if err != nil {
		return "", errors.Wrapf(err, "xdg.ConfigFile")
	}
	return path, nil
}

// Load reads the history file at path. A missing file is not an error:
// it returns a zero History, matching spec.md §7 item 3's graceful
// degradation for missing data.
func Load(path string) (History, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return History{}, nil
	} else if err != nil {
		return History{}, errors.Wrapf(err, "os.ReadFile(%s)", path)
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return History{}, errors.Wrapf(err, "json.Unmarshal(%s)", path)
	}
	return h, nil
}

// Save writes h to path atomically, mirroring the teacher's
// file/save.go use of renameio to avoid corrupting the file on a
// mid-write crash.
func (h History) Save(path string) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "json.Marshal")
	}

	dirPath := filepath.Dir(path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return errors.Wrapf(err, "os.MkdirAll")
	}

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return errors.Wrapf(err, "renameio.NewPendingFile")
	}
	defer pf.Cleanup()

	if _, err := pf.Write(data); err != nil {
		return errors.Wrapf(err, "PendingFile.Write")
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "PendingFile.CloseAtomicallyReplace")
	}
	return nil
}
