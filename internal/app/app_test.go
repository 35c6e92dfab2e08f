package app

import (
	"context"
	"flagguard_backend/internal/config"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/repository"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *recordingCache) Get(ctx context.Context, studentID string) (*model.TrainingReport, bool) {
	return nil, false
}

func (c *recordingCache) Set(ctx context.Context, studentID string, report *model.TrainingReport) error {
	return nil
}

func (c *recordingCache) Invalidate(ctx context.Context, studentIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, studentIDs...)
	return nil
}

const twoRecords = `
members:
  - studentId: "1"
    name: 甲
  - studentId: "2"
    name: 乙
trainingRecords:
  - studentId: "1"
    weeklyHours: [3, 4]
  - studentId: "2"
    weeklyHours: [5]
`

const oneRecord = `
members:
  - studentId: "1"
    name: 甲
trainingRecords:
  - studentId: "1"
    weeklyHours: [3, 4, 5]
`

func TestReloadDatasetInvalidatesRemovedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoRecords), 0644))

	store, err := repository.NewStaticStore(path)
	require.NoError(t, err)
	cache := &recordingCache{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a := &App{Config: &config.Config{}, Store: store, Cache: cache, ctx: ctx, cancel: cancel}

	require.NoError(t, os.WriteFile(path, []byte(oneRecord), 0644))
	a.reloadDataset()

	assert.ElementsMatch(t, []string{"1", "2"}, cache.invalidated)
	assert.Equal(t, []string{"1"}, store.StudentIDs())
}

func TestReloadDatasetKeepsCacheOnParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoRecords), 0644))

	store, err := repository.NewStaticStore(path)
	require.NoError(t, err)
	cache := &recordingCache{}
	a := &App{Config: &config.Config{}, Store: store, Cache: cache, ctx: context.Background()}

	require.NoError(t, os.WriteFile(path, []byte("members: [broken"), 0644))
	a.reloadDataset()

	assert.Empty(t, cache.invalidated)
	assert.Equal(t, []string{"1", "2"}, store.StudentIDs())
}

func TestMergeIDs(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, mergeIDs([]string{"1", "2"}, []string{"2", "3"}))
	assert.Nil(t, mergeIDs(nil, nil))
}
