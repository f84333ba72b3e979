package server

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdfield/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("IMAGE_WIDTH", "16")
	t.Setenv("IMAGE_HEIGHT", "16")
	t.Setenv("GRID_RESOLUTION", "8")
	t.Setenv("MAX_CONCURRENT_JOBS", "2")
	t.Setenv("JOB_RATE_LIMIT_PER_SECOND", "100")
	t.Setenv("JOB_RATE_LIMIT_BURST", "100")
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func waitForTerminal(t *testing.T, m *JobManager, id string) Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := m.Get(id)
		require.NoError(t, err)
		snap := job.snapshot()
		if snap.Status == JobStatusDone || snap.Status == JobStatusFailed {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("job did not reach a terminal state in time")
	return Job{}
}

func TestSubmitRejectsUnknownScene(t *testing.T) {
	m := NewJobManager(testConfig(t))
	_, err := m.Submit(context.Background(), JobKindRender, "does-not-exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSceneName)
}

func TestSubmitRenderJobCompletes(t *testing.T) {
	m := NewJobManager(testConfig(t))
	job, err := m.Submit(context.Background(), JobKindRender, "sphere")
	require.NoError(t, err)

	final := waitForTerminal(t, m, job.ID)
	assert.Equal(t, JobStatusDone, final.Status)
	assert.Equal(t, 16, final.Total)
}

func TestSubmitMeshJobCompletes(t *testing.T) {
	m := NewJobManager(testConfig(t))
	job, err := m.Submit(context.Background(), JobKindMesh, "two-sphere")
	require.NoError(t, err)

	final := waitForTerminal(t, m, job.ID)
	assert.Equal(t, JobStatusDone, final.Status)
}

func TestGetUnknownJobReturnsErrJobNotFound(t *testing.T) {
	m := NewJobManager(testConfig(t))
	_, err := m.Get("nonexistent")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestSceneNamesIsSortedAndStable(t *testing.T) {
	first := SceneNames()
	second := SceneNames()
	assert.Equal(t, first, second)
	assert.True(t, sort.StringsAreSorted(first))
	assert.Contains(t, first, "organic-blob")
}
