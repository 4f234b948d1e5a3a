package toml

import "fmt"

const currentSchemaVersion = 1

type snapshotSchema struct {
	Version    int      `toml:"version"`
	SyncedAt   string   `toml:"synced_at"`
	Generation int64    `toml:"generation"`
	Table      string   `toml:"table"`
	Courses    []string `toml:"courses"`
}

func (s *snapshotSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s snapshotSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported index snapshot schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
