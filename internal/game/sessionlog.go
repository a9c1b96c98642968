package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"raycaster/internal/sim"
)

// SessionLog is one line of sessions.jsonl.
type SessionLog struct {
	Map      string    `json:"map"`
	Seed     int64     `json:"seed,omitempty"`
	Started  time.Time `json:"started"`
	Duration string    `json:"duration"`
	sim.Stats
}

// saveSessionLog appends entry as a single JSON line to sessions.jsonl.
func saveSessionLog(entry SessionLog) error {
	dir, err := sessionLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// sessionLogDir follows the XDG base directory layout:
// $XDG_DATA_HOME/raycaster, defaulting to ~/.local/share/raycaster.
func sessionLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "raycaster"), nil
}
