package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"PocketballSync/internal/model"

	"github.com/sirupsen/logrus"
)

// SnapshotUnavailableError 快照文件不存在
type SnapshotUnavailableError struct {
	Path string
}

func (e *SnapshotUnavailableError) Error() string {
	return fmt.Sprintf("快照文件不存在: %s", e.Path)
}

// SnapshotCorruptError 快照内容无法解析为固定envelope结构
type SnapshotCorruptError struct {
	Path string
	Err  error
}

func (e *SnapshotCorruptError) Error() string {
	return fmt.Sprintf("快照文件损坏: %s: %v", e.Path, e.Err)
}

func (e *SnapshotCorruptError) Unwrap() error { return e.Err }

// SnapshotRepository play快照的文件存储
// 固定envelope：{liveData:{plays:{allPlays:[...]}}}，每次全量覆盖
// 写入路径：临时文件+rename原子替换，读方只会看到完整的新旧快照之一
type SnapshotRepository struct {
	path   string
	logger *logrus.Logger
}

func NewSnapshotRepository(path string, logger *logrus.Logger) *SnapshotRepository {
	return &SnapshotRepository{path: path, logger: logger}
}

// Write 序列化play序列并原子替换快照文件
func (r *SnapshotRepository) Write(plays []model.Play) error {
	if plays == nil {
		plays = []model.Play{}
	}
	doc := model.LiveFeedDocument{
		LiveData: model.LiveData{
			Plays: model.PlaySet{AllPlays: plays},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化快照失败: %w", err)
	}

	// 1. 写入同目录下的临时文件（保证rename不跨文件系统）
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".liveData-*.json")
	if err != nil {
		return fmt.Errorf("创建临时快照文件失败: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("写入临时快照文件失败: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("落盘临时快照文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("关闭临时快照文件失败: %w", err)
	}

	// 2. rename原子替换，中途崩溃也不会留下半截快照
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("替换快照文件失败: %w", err)
	}

	r.logger.Infof("快照已写入%s，共%d条play", r.path, len(plays))
	return nil
}

// Read 读取快照并返回play序列
// 文件不存在→SnapshotUnavailableError；内容不符合envelope→SnapshotCorruptError
func (r *SnapshotRepository) Read() ([]model.Play, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &SnapshotUnavailableError{Path: r.path}
		}
		return nil, fmt.Errorf("读取快照文件失败: %w", err)
	}

	var doc model.LiveFeedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &SnapshotCorruptError{Path: r.path, Err: err}
	}
	// allPlays为null说明envelope缺失（空快照也应是[]）
	if doc.LiveData.Plays.AllPlays == nil {
		return nil, &SnapshotCorruptError{Path: r.path, Err: errors.New("缺少liveData.plays.allPlays")}
	}

	return doc.LiveData.Plays.AllPlays, nil
}
