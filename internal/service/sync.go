package service

import (
	"context"
	"fmt"

	"PocketballSync/internal/interfaces"
	"PocketballSync/internal/repository"

	"github.com/sirupsen/logrus"
)

// SyncService 单场比赛的"拉取→归一化→快照落盘→归档入库"流水线
// 每次同步都从完整feed重建全量play，不做增量合并
type SyncService struct {
	feed         interfaces.FeedSource
	snapshotRepo *repository.SnapshotRepository
	scheduleRepo *repository.ScheduleRepository
	playRepo     *repository.PlayRepository
	logger       *logrus.Logger
}

func NewSyncService(
	feed interfaces.FeedSource,
	snapshotRepo *repository.SnapshotRepository,
	scheduleRepo *repository.ScheduleRepository,
	playRepo *repository.PlayRepository,
	logger *logrus.Logger,
) *SyncService {
	return &SyncService{
		feed:         feed,
		snapshotRepo: snapshotRepo,
		scheduleRepo: scheduleRepo,
		playRepo:     playRepo,
		logger:       logger,
	}
}

// SyncGame 同步一场比赛的play-by-play数据，返回归一化后的play数量
func (s *SyncService) SyncGame(ctx context.Context, gamePk string) (int, error) {
	// 1. 拉取原始feed
	rawPlays, err := s.feed.FetchLiveFeed(ctx, gamePk)
	if err != nil {
		return 0, fmt.Errorf("比赛%s拉取feed失败: %w", gamePk, err)
	}

	// 2. 归一化（缺必填字段则整批失败）
	plays, err := Normalize(rawPlays)
	if err != nil {
		return 0, fmt.Errorf("比赛%s归一化失败: %w", gamePk, err)
	}

	// 3. 快照落盘（原子替换）
	if err := s.snapshotRepo.Write(plays); err != nil {
		return 0, fmt.Errorf("比赛%s写快照失败: %w", gamePk, err)
	}

	// 4. 归档入库（事务整场替换）
	if err := s.playRepo.ReplaceGamePlays(ctx, gamePk, plays); err != nil {
		return 0, fmt.Errorf("比赛%s归档入库失败: %w", gamePk, err)
	}

	s.logger.Infof("比赛%s同步完成，共%d条play", gamePk, len(plays))
	return len(plays), nil
}

// SyncSchedule 拉取指定日期的赛程文档并落盘，返回比赛数量
func (s *SyncService) SyncSchedule(ctx context.Context, date string) (int, error) {
	doc, err := s.feed.FetchSchedule(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("拉取赛程失败: %w", err)
	}
	if err := s.scheduleRepo.Write(doc); err != nil {
		return 0, fmt.Errorf("写赛程文档失败: %w", err)
	}

	games := 0
	if len(doc.Dates) > 0 {
		games = len(doc.Dates[0].Games)
	}
	s.logger.Infof("赛程同步完成，共%d场比赛", games)
	return games, nil
}
