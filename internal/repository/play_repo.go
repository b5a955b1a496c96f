package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"PocketballSync/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayRepository 归一化play的数据库归档
type PlayRepository struct {
	db *gorm.DB
}

func NewPlayRepository(db *gorm.DB) *PlayRepository {
	return &PlayRepository{db: db}
}

// ReplaceGamePlays 整场替换指定比赛的归档play（事务内先删后插，失败回滚保留旧数据）
func (r *PlayRepository) ReplaceGamePlays(ctx context.Context, gamePk string, plays []model.Play) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("开启事务失败: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
		}
	}()

	// 1. 清空该比赛的旧归档
	if err := tx.Where("game_pk = ?", gamePk).Delete(&model.PlayRecord{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("清理旧归档失败: %w, game_pk: %s", err, gamePk)
	}

	// 2. 按feed顺序写入新归档
	for i := range plays {
		payload, err := json.Marshal(plays[i])
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("序列化play失败: %w, at_bat_index: %d", err, plays[i].About.AtBatIndex)
		}
		record := &model.PlayRecord{
			RecordUUID:    uuid.NewString(),
			GamePk:        gamePk,
			AtBatIndex:    plays[i].About.AtBatIndex,
			Inning:        plays[i].About.Inning,
			IsTopInning:   plays[i].About.IsTopInning,
			StartTime:     plays[i].About.StartTime,
			Description:   plays[i].Result.Description,
			AwayScore:     plays[i].Result.AwayScore,
			HomeScore:     plays[i].Result.HomeScore,
			IsScoringPlay: plays[i].About.IsScoringPlay,
			Payload:       payload,
		}
		if err := tx.Create(record).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("保存play归档失败: %w, at_bat_index: %d", err, record.AtBatIndex)
		}
	}

	// 3. 更新同步状态（不存在则创建）
	now := time.Now()
	sync := &model.GameSync{GamePk: gamePk, PlayCount: len(plays), LastSyncedAt: now}
	if err := tx.Where("game_pk = ?", gamePk).
		Assign(map[string]interface{}{
			"play_count":     len(plays),
			"last_synced_at": now,
		}).
		FirstOrCreate(sync).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("更新同步状态失败: %w, game_pk: %s", err, gamePk)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}
	return nil
}

// ListPlays 分页查询某场比赛的归档play（按打席序号升序）
func (r *PlayRepository) ListPlays(ctx context.Context, gamePk string, page, pageSize int) ([]model.PlayRecord, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 50
	}

	q := r.db.WithContext(ctx).Model(&model.PlayRecord{}).Where("game_pk = ?", gamePk)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计归档play失败: %w", err)
	}

	var records []model.PlayRecord
	if err := q.Order("at_bat_index ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("查询归档play失败: %w", err)
	}

	return records, total, nil
}
