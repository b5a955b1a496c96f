package service

import (
	"path/filepath"
	"testing"

	"PocketballSync/internal/model"
	"PocketballSync/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleGame(state, away string, awayScore int, home string, homeScore int) model.ScheduleGame {
	return model.ScheduleGame{
		Status: model.GameStatus{AbstractGameState: state},
		Teams: model.GameTeams{
			Away: model.GameTeamSide{Team: model.TeamRef{Name: away}, Score: awayScore},
			Home: model.GameTeamSide{Team: model.TeamRef{Name: home}, Score: homeScore},
		},
	}
}

func TestGameLineLiveGame(t *testing.T) {
	doc := &model.ScheduleDocument{
		Dates: []model.ScheduleDate{{
			Games: []model.ScheduleGame{
				scheduleGame("Final", "Yankees", 2, "Red Sox", 7),
				scheduleGame("Live", "Mets", 4, "Braves", 5),
			},
		}},
	}

	assert.Equal(t, "LIVE: Mets (4) vs Braves (5)", GameLine(doc))
}

func TestGameLineNoLiveGame(t *testing.T) {
	doc := &model.ScheduleDocument{
		Dates: []model.ScheduleDate{{
			Games: []model.ScheduleGame{
				scheduleGame("Final", "Yankees", 2, "Red Sox", 7),
				scheduleGame("Preview", "Cubs", 0, "Cardinals", 0),
			},
		}},
	}

	assert.Equal(t, NoLiveGamesMessage, GameLine(doc))
}

func TestGameLineFirstLiveOnly(t *testing.T) {
	// 多场同时Live也只报第一场
	doc := &model.ScheduleDocument{
		Dates: []model.ScheduleDate{{
			Games: []model.ScheduleGame{
				scheduleGame("Live", "Mets", 4, "Braves", 5),
				scheduleGame("Live", "Dodgers", 1, "Giants", 0),
			},
		}},
	}

	assert.Equal(t, "LIVE: Mets (4) vs Braves (5)", GameLine(doc))
}

func TestGameLineEmptyDocument(t *testing.T) {
	assert.Equal(t, NoLiveGamesMessage, GameLine(nil))
	assert.Equal(t, NoLiveGamesMessage, GameLine(&model.ScheduleDocument{}))
	assert.Equal(t, NoLiveGamesMessage, GameLine(&model.ScheduleDocument{Dates: []model.ScheduleDate{{}}}))
}

func TestLiveStateServiceCurrent(t *testing.T) {
	logger := quietLogger()
	path := filepath.Join(t.TempDir(), "info.json")
	repo := repository.NewScheduleRepository(path, logger)

	doc := &model.ScheduleDocument{
		Dates: []model.ScheduleDate{{
			Games: []model.ScheduleGame{scheduleGame("Live", "Mets", 4, "Braves", 5)},
		}},
	}
	require.NoError(t, repo.Write(doc))

	svc := NewLiveStateService(repo, logger)
	line, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, "LIVE: Mets (4) vs Braves (5)", line)
}

func TestLiveStateServiceMissingDocument(t *testing.T) {
	logger := quietLogger()
	repo := repository.NewScheduleRepository(filepath.Join(t.TempDir(), "info.json"), logger)

	svc := NewLiveStateService(repo, logger)
	_, err := svc.Current()
	assert.Error(t, err)
}
