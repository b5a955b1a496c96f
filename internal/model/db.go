package model

import (
	"time"

	"gorm.io/datatypes"
)

// GameSync 每场比赛的同步状态记录
type GameSync struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	GamePk       string    `gorm:"column:game_pk;type:varchar(32);uniqueIndex;not null;comment:MLB比赛ID"`
	PlayCount    int       `gorm:"column:play_count;type:int;default:0;comment:最近一次同步的play数量"`
	LastSyncedAt time.Time `gorm:"column:last_synced_at;type:timestamp;comment:最近同步时间"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

// PlayRecord 归一化play的归档行（每次同步整场替换，payload为完整canonical play）
type PlayRecord struct {
	ID            uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	RecordUUID    string         `gorm:"column:record_uuid;type:varchar(64);uniqueIndex;not null;comment:全局唯一ID"`
	GamePk        string         `gorm:"column:game_pk;type:varchar(32);index;not null;comment:MLB比赛ID"`
	AtBatIndex    int            `gorm:"column:at_bat_index;type:int;not null;comment:打席序号"`
	Inning        int            `gorm:"column:inning;type:int;not null;comment:局数"`
	IsTopInning   bool           `gorm:"column:is_top_inning;type:boolean;not null;comment:是否上半局"`
	StartTime     string         `gorm:"column:start_time;type:varchar(40);not null;comment:ISO-8601开始时间"`
	Description   string         `gorm:"column:description;type:text;not null;comment:事件描述"`
	AwayScore     int            `gorm:"column:away_score;type:int;not null;comment:客队得分"`
	HomeScore     int            `gorm:"column:home_score;type:int;not null;comment:主队得分"`
	IsScoringPlay bool           `gorm:"column:is_scoring_play;type:boolean;not null;comment:是否得分事件"`
	Payload       datatypes.JSON `gorm:"column:payload;type:jsonb;not null;comment:完整归一化play"`
	CreatedAt     time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
}

func (GameSync) TableName() string   { return "game_syncs" }
func (PlayRecord) TableName() string { return "play_records" }
