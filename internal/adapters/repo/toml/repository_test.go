package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/luminabrain/lb/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(BaselinePathKey, path)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "baseline.toml"))

	want := domain.Baseline{
		State:      domain.BrainState{Stress: 70.3, Focus: 34.8, Fatigue: 6.7, Load: 38.5},
		CapturedAt: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepositorySaveOverwritesPreviousBaseline(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "baseline.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Baseline{State: domain.DefaultBaseline()}))
	second := domain.Baseline{State: domain.BrainState{Stress: 10, Focus: 20, Fatigue: 30, Load: 20}}
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.State, got.State)
	assert.True(t, got.CapturedAt.IsZero())
}

func TestRepositoryMissingFileReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "baseline.toml"))

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrBaselineNotFound)
}

func TestRepositoryFileWithoutBaselineTableReturnsNotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "baseline.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0o600))

	repo := newTestRepository(t, path)

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrBaselineNotFound)
}

func TestRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "baseline.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[baseline]",
		"stress = 40.0",
		"focus = 40.0",
		"fatigue = 20.0",
		"load = 30.0",
		"captured_at = \"2026-10-15T10:00:00Z\"",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, path)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBaseline(), got.State)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), got.CapturedAt)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Baseline{State: domain.DefaultBaseline()}))

	path := filepath.Join(homeDir, ".luminabrain", "baseline.toml")
	assert.Equal(t, path, repo.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "baseline.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Delete(context.Background()))

	require.NoError(t, repo.Save(context.Background(), domain.Baseline{State: domain.DefaultBaseline()}))
	require.NoError(t, repo.Delete(context.Background()))

	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = repo.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrBaselineNotFound)
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "baseline.toml")
	require.NoError(t, os.WriteFile(path, []byte("baseline = ["), 0o600))

	repo := newTestRepository(t, path)

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode baseline file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "baseline.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Baseline{State: domain.DefaultBaseline()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesLeaveValidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "baseline.toml")
	repoA := newTestRepository(t, path)
	repoB := newTestRepository(t, path)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, load float64) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Baseline{State: domain.BrainState{Load: load}})
		}
	}
	go write(repoA, 10)
	go write(repoB, 20)

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repoA.Get(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []float64{10, 20}, got.State.Load)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "baseline.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), domain.Baseline{State: domain.DefaultBaseline()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[baseline]")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "baseline.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 999\n"), 0o600))

	repo := newTestRepository(t, path)

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported baseline schema version")
}
