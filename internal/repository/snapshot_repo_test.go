package repository

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"PocketballSync/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func ptr[T any](v T) *T { return &v }

func snapshotPlay(startTime, description string) model.Play {
	return model.Play{
		Result: model.PlayResult{
			Type:        "atBat",
			Event:       "Single",
			EventType:   "single",
			Description: description,
			AwayScore:   1,
			HomeScore:   0,
		},
		About: model.PlayAbout{
			AtBatIndex:  3,
			HalfInning:  "top",
			IsTopInning: true,
			Inning:      2,
			StartTime:   startTime,
			IsComplete:  true,
		},
		Count: model.PlayCount{Balls: 1, Strikes: 2, Outs: 0},
		Runners: []model.Runner{
			{
				Movement: model.RunnerMovement{
					Start: ptr("1B"),
					End:   ptr("2B"),
					// isOut缺失，持久化后必须仍是显式null
				},
				Details: model.RunnerDetails{
					Event:  ptr("Stolen Base"),
					Runner: model.PlayerRef{ID: ptr(665742), FullName: ptr("Juan Soto")},
				},
				Credits: []model.Credit{},
			},
		},
		PitchIndex:  []int{1, 2, 3},
		ActionIndex: []int{},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(filepath.Join(t.TempDir(), "liveData.json"), testLogger())

	plays := []model.Play{
		snapshotPlay("2024-07-04T19:00:00Z", "first"),
		snapshotPlay("2024-07-04T20:00:00Z", "second"),
	}
	require.NoError(t, repo.Write(plays))

	got, err := repo.Read()
	require.NoError(t, err)
	assert.Equal(t, plays, got)
}

func TestSnapshotEnvelopeShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liveData.json")
	repo := NewSnapshotRepository(path, testLogger())

	require.NoError(t, repo.Write([]model.Play{snapshotPlay("2024-07-04T19:00:00Z", "first")}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	// 固定envelope + 可选字段的显式null
	assert.Contains(t, content, `"liveData"`)
	assert.Contains(t, content, `"allPlays"`)
	assert.Contains(t, content, `"isOut": null`)
	assert.Contains(t, content, `"earned": null`)
}

func TestSnapshotEmptySequence(t *testing.T) {
	repo := NewSnapshotRepository(filepath.Join(t.TempDir(), "liveData.json"), testLogger())

	require.NoError(t, repo.Write([]model.Play{}))
	got, err := repo.Read()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSnapshotFullOverwrite(t *testing.T) {
	repo := NewSnapshotRepository(filepath.Join(t.TempDir(), "liveData.json"), testLogger())

	require.NoError(t, repo.Write([]model.Play{
		snapshotPlay("2024-07-04T19:00:00Z", "first"),
		snapshotPlay("2024-07-04T20:00:00Z", "second"),
	}))
	require.NoError(t, repo.Write([]model.Play{
		snapshotPlay("2024-07-04T21:00:00Z", "only"),
	}))

	got, err := repo.Read()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "only", got[0].Result.Description)
}

func TestSnapshotUnavailable(t *testing.T) {
	repo := NewSnapshotRepository(filepath.Join(t.TempDir(), "liveData.json"), testLogger())

	_, err := repo.Read()
	var sue *SnapshotUnavailableError
	require.True(t, errors.As(err, &sue))
}

func TestSnapshotCorrupt(t *testing.T) {
	t.Run("非JSON内容", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "liveData.json")
		require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

		repo := NewSnapshotRepository(path, testLogger())
		_, err := repo.Read()
		var sce *SnapshotCorruptError
		require.True(t, errors.As(err, &sce))
	})

	t.Run("envelope缺失", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "liveData.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"something": "else"}`), 0o644))

		repo := NewSnapshotRepository(path, testLogger())
		_, err := repo.Read()
		var sce *SnapshotCorruptError
		require.True(t, errors.As(err, &sce))
	})
}

func TestSnapshotWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewSnapshotRepository(filepath.Join(dir, "liveData.json"), testLogger())

	require.NoError(t, repo.Write([]model.Play{snapshotPlay("2024-07-04T19:00:00Z", "first")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".liveData-"), "临时文件应在rename后消失")
	}
}
