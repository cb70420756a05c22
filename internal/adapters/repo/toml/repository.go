package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/luminabrain/lb/internal/domain"
	"github.com/luminabrain/lb/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	BaselinePathKey = "baseline.path"

	baselineFileMode   = 0o600
	baselineDirMode    = 0o700
	baselineConfigDir  = ".luminabrain"
	baselineConfigFile = "baseline.toml"
	tempFilePattern    = ".baseline-*.toml.tmp"
)

// Repository stores the personal baseline profile in a single TOML file.
type Repository struct {
	baselinePath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.BaselineRepository = (*Repository)(nil)

// NewRepository resolves the file location from baseline.path, defaulting to
// ~/.luminabrain/baseline.toml.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	baselinePath := cfg.GetString(BaselinePathKey)
	if baselinePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		baselinePath = filepath.Join(homeDir, baselineConfigDir, baselineConfigFile)
	}

	baselinePath, err := normalizeBaselinePath(baselinePath)
	if err != nil {
		return nil, err
	}

	return &Repository{baselinePath: baselinePath, mu: lockForPath(baselinePath)}, nil
}

func (r *Repository) Path() string {
	return r.baselinePath
}

func (r *Repository) Get(ctx context.Context) (domain.Baseline, error) {
	if err := ctx.Err(); err != nil {
		return domain.Baseline{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Baseline{}, err
	}
	if file.Baseline == nil {
		return domain.Baseline{}, domain.ErrBaselineNotFound
	}

	return fromSchema(*file.Baseline), nil
}

func (r *Repository) Save(ctx context.Context, baseline domain.Baseline) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(baseline)
	file.Baseline = &encoded

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

// Delete removes the stored profile. Deleting a missing profile is not an
// error.
func (r *Repository) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.baselinePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove baseline file: %w", err)
	}

	return nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.baselinePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read baseline file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode baseline file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeBaselinePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve baseline path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.baselinePath), baselineDirMode); err != nil {
		return fmt.Errorf("create baseline directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode baseline file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.baselinePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp baseline file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp baseline file: %w", err)
	}

	if err := tempFile.Chmod(baselineFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp baseline file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp baseline file: %w", err)
	}

	if err := os.Rename(tempName, r.baselinePath); err != nil {
		return fmt.Errorf("replace baseline file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(baseline domain.Baseline) baselineSchema {
	return baselineSchema{
		Stress:     baseline.State.Stress,
		Focus:      baseline.State.Focus,
		Fatigue:    baseline.State.Fatigue,
		Load:       baseline.State.Load,
		CapturedAt: formatTime(baseline.CapturedAt),
	}
}

func fromSchema(entry baselineSchema) domain.Baseline {
	return domain.Baseline{
		State: domain.BrainState{
			Stress:  entry.Stress,
			Focus:   entry.Focus,
			Fatigue: entry.Fatigue,
			Load:    entry.Load,
		},
		CapturedAt: parseTime(entry.CapturedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
