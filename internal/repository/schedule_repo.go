package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"PocketballSync/internal/model"

	"github.com/sirupsen/logrus"
)

// ScheduleRepository 赛程/状态文档（info.json）的文件存储
// 与快照同样的原子替换纪律
type ScheduleRepository struct {
	path   string
	logger *logrus.Logger
}

func NewScheduleRepository(path string, logger *logrus.Logger) *ScheduleRepository {
	return &ScheduleRepository{path: path, logger: logger}
}

// Write 序列化赛程文档并原子替换
func (r *ScheduleRepository) Write(doc *model.ScheduleDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化赛程文档失败: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".info-*.json")
	if err != nil {
		return fmt.Errorf("创建临时赛程文件失败: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("写入临时赛程文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("关闭临时赛程文件失败: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("替换赛程文件失败: %w", err)
	}

	r.logger.Infof("赛程文档已写入%s", r.path)
	return nil
}

// Read 读取并解析赛程文档
func (r *ScheduleRepository) Read() (*model.ScheduleDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("读取赛程文档失败: %w", err)
	}
	var doc model.ScheduleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("解析赛程文档失败: %w", err)
	}
	return &doc, nil
}

// ReadRaw 读取赛程文档原文（历史问答接口直接把原文JSON作为上下文喂给模型）
func (r *ScheduleRepository) ReadRaw() ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("读取赛程文档失败: %w", err)
	}
	return data, nil
}
