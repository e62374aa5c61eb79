package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"

	"github.com/elibenporat/mlbbio/internal/logging"
)

// RosterFile is the on-disk shape of a batch roster.
type RosterFile struct {
	Name      string   `json:"name"`
	PlayerIDs []uint32 `json:"playerIds"`
}

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// LoadRoster reads a JSON5 roster file and merges <name>.local.<ext> over it
// when present. Returns os.ErrNotExist when neither file exists; a file that
// exists but is blank is an error of its own.
func LoadRoster(path string, logger *slog.Logger) (RosterFile, error) {
	var out RosterFile

	foundBase, err := readRoster(path, &out)
	if err != nil {
		return out, err
	}

	prefix, ext := splitExt(filepath.Base(path))
	localPath := filepath.Join(filepath.Dir(path), fmt.Sprintf("%s.local.%s", prefix, ext))
	var override RosterFile
	foundLocal, err := readRoster(localPath, &override)
	if err != nil {
		return out, err
	}
	if foundLocal {
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, err
		}
		logging.Debug(logger, "merged roster with local overrides", "local", localPath)
	}

	if !foundBase && !foundLocal {
		return out, os.ErrNotExist
	}
	if len(out.PlayerIDs) == 0 {
		return out, fmt.Errorf("roster %s lists no playerIds", path)
	}
	return out, nil
}

// readRoster decodes path into dst. found is false only when the file is absent.
func readRoster(path string, dst *RosterFile) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return true, fmt.Errorf("roster %s is empty", path)
	}
	if err := json5.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return true, nil
}
