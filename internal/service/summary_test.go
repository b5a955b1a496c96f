package service

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"PocketballSync/internal/model"
	"PocketballSync/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func summaryPlay(startTime, description string, isTop bool, inning, away, home int) model.Play {
	return model.Play{
		Result: model.PlayResult{
			Type:        "atBat",
			Description: description,
			AwayScore:   away,
			HomeScore:   home,
		},
		About: model.PlayAbout{
			StartTime:   startTime,
			IsTopInning: isTop,
			Inning:      inning,
		},
		Runners:     []model.Runner{},
		PitchIndex:  []int{},
		ActionIndex: []int{},
	}
}

func TestRenderScenario(t *testing.T) {
	play := summaryPlay("2024-07-04T20:15:00Z", "J. Soto homers", true, 7, 3, 2)

	summary, err := Render([]model.Play{play})
	require.NoError(t, err)
	assert.Contains(t, summary, "2024-07-04 20:15:00\nTop 7: J. Soto homers (Score: 3-2)")
}

func TestRenderOrdering(t *testing.T) {
	plays := []model.Play{
		summaryPlay("2024-07-04T21:00:00Z", "third play", false, 3, 0, 2),
		summaryPlay("2024-07-04T19:00:00Z", "first play", true, 1, 0, 0),
		summaryPlay("2024-07-04T20:00:00Z", "second play", false, 1, 0, 1),
	}

	summary, err := Render(plays)
	require.NoError(t, err)

	first := strings.Index(summary, "first play")
	second := strings.Index(summary, "second play")
	third := strings.Index(summary, "third play")
	require.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestRenderStableTieBreak(t *testing.T) {
	// 时间相同的play保持输入相对顺序
	plays := []model.Play{
		summaryPlay("2024-07-04T20:00:00Z", "came first", true, 5, 1, 1),
		summaryPlay("2024-07-04T20:00:00Z", "came second", true, 5, 1, 1),
	}

	summary, err := Render(plays)
	require.NoError(t, err)
	assert.Less(t, strings.Index(summary, "came first"), strings.Index(summary, "came second"))
}

func TestRenderInputOrderIrrelevant(t *testing.T) {
	a := summaryPlay("2024-07-04T19:00:00Z", "early", true, 1, 0, 0)
	b := summaryPlay("2024-07-04T21:00:00Z", "late", false, 5, 2, 3)

	s1, err := Render([]model.Play{a, b})
	require.NoError(t, err)
	s2, err := Render([]model.Play{b, a})
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestRenderEmpty(t *testing.T) {
	summary, err := Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "", summary)

	summary, err = Render([]model.Play{})
	require.NoError(t, err)
	assert.Equal(t, "", summary)
}

func TestRenderBlockSeparator(t *testing.T) {
	plays := []model.Play{
		summaryPlay("2024-07-04T19:00:00Z", "early", true, 1, 0, 0),
		summaryPlay("2024-07-04T21:00:00Z", "late", false, 5, 2, 3),
	}

	summary, err := Render(plays)
	require.NoError(t, err)
	// 块之间空一行：上一块的结尾换行 + 连接用换行
	assert.Contains(t, summary, "(Score: 0-0)\n\n2024-07-04 21:00:00")
}

func TestRenderBottomInning(t *testing.T) {
	play := summaryPlay("2024-07-04T20:30:00Z", "A. Judge grounds out", false, 9, 4, 5)

	summary, err := Render([]model.Play{play})
	require.NoError(t, err)
	assert.Contains(t, summary, "Bottom 9: A. Judge grounds out (Score: 4-5)")
}

func TestRenderMalformedEntry(t *testing.T) {
	t.Run("缺startTime", func(t *testing.T) {
		play := summaryPlay("", "something happened", true, 1, 0, 0)
		_, err := Render([]model.Play{play})
		var sre *SummaryRenderError
		require.True(t, errors.As(err, &sre))
		assert.Equal(t, "about.startTime", sre.Field)
	})

	t.Run("缺description", func(t *testing.T) {
		play := summaryPlay("2024-07-04T20:00:00Z", "", true, 1, 0, 0)
		_, err := Render([]model.Play{play})
		var sre *SummaryRenderError
		require.True(t, errors.As(err, &sre))
		assert.Equal(t, "result.description", sre.Field)
	})
}

func TestSummaryServiceGenerateFromSnapshot(t *testing.T) {
	logger := quietLogger()
	path := filepath.Join(t.TempDir(), "liveData.json")
	repo := repository.NewSnapshotRepository(path, logger)

	plays := []model.Play{
		summaryPlay("2024-07-04T20:15:00Z", "J. Soto homers", true, 7, 3, 2),
	}
	require.NoError(t, repo.Write(plays))

	svc := NewSummaryService(repo, logger)
	summary, err := svc.Generate()
	require.NoError(t, err)
	assert.Contains(t, summary, "2024-07-04 20:15:00\nTop 7: J. Soto homers (Score: 3-2)")
}

func TestSummaryServiceGenerateMissingSnapshot(t *testing.T) {
	logger := quietLogger()
	repo := repository.NewSnapshotRepository(filepath.Join(t.TempDir(), "liveData.json"), logger)

	svc := NewSummaryService(repo, logger)
	_, err := svc.Generate()
	var sue *repository.SnapshotUnavailableError
	require.True(t, errors.As(err, &sue))
}
