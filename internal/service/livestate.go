package service

import (
	"fmt"

	"PocketballSync/internal/model"
	"PocketballSync/internal/repository"

	"github.com/sirupsen/logrus"
)

// NoLiveGamesMessage 无进行中比赛时的固定文案
const NoLiveGamesMessage = "No live games at the moment"

// LiveStateService 从赛程文档中读出当前比赛的比分行
type LiveStateService struct {
	scheduleRepo *repository.ScheduleRepository
	logger       *logrus.Logger
}

func NewLiveStateService(scheduleRepo *repository.ScheduleRepository, logger *logrus.Logger) *LiveStateService {
	return &LiveStateService{scheduleRepo: scheduleRepo, logger: logger}
}

// Current 读取赛程文档并返回当前比分行
func (s *LiveStateService) Current() (string, error) {
	doc, err := s.scheduleRepo.Read()
	if err != nil {
		return "", err
	}
	return GameLine(doc), nil
}

// GameLine 取第一场abstractGameState为Live的比赛拼比分行
// 多场同时Live也只报第一场（沿用既有行为，属刻意简化）
func GameLine(doc *model.ScheduleDocument) string {
	if doc == nil || len(doc.Dates) == 0 {
		return NoLiveGamesMessage
	}
	for _, game := range doc.Dates[0].Games {
		if game.Status.AbstractGameState != "Live" {
			continue
		}
		return fmt.Sprintf("LIVE: %s (%d) vs %s (%d)",
			game.Teams.Away.Team.Name,
			game.Teams.Away.Score,
			game.Teams.Home.Team.Name,
			game.Teams.Home.Score,
		)
	}
	return NoLiveGamesMessage
}
