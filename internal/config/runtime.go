package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// runtimeFile is the on-disk format of the runtime override file.
type runtimeFile struct {
	SimMode   bool   `json:"sim_mode"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// RuntimePathFor returns the runtime override file location for the main
// config file at configPath.
func RuntimePathFor(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), RuntimeFileName)
}

func readRuntimeFile(path string) (bool, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return false, err
	}

	if err := validateRuntimeDocument(data); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	var rf runtimeFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return false, fmt.Errorf("%w: decoding %s: %w", ErrConfigParse, path, err)
	}

	return rf.SimMode, nil
}

// writeRuntimeFile replaces the runtime override file atomically: the new
// contents are written and synced to a temporary file in the same directory
// which is then renamed over path.
func writeRuntimeFile(path string, simMode bool, now time.Time) (err error) {
	data, err := json.MarshalIndent(runtimeFile{
		SimMode:   simMode,
		UpdatedAt: now.UTC().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding: %w", ErrRuntimeWrite, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrRuntimeWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %w", ErrRuntimeWrite, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrRuntimeWrite, tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: syncing %s: %w", ErrRuntimeWrite, tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrRuntimeWrite, tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: replacing %s: %w", ErrRuntimeWrite, path, err)
	}

	return nil
}
