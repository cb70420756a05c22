package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Baseline *baselineSchema `toml:"baseline,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported baseline schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type baselineSchema struct {
	Stress     float64 `toml:"stress"`
	Focus      float64 `toml:"focus"`
	Fatigue    float64 `toml:"fatigue"`
	Load       float64 `toml:"load"`
	CapturedAt string  `toml:"captured_at"`
}
