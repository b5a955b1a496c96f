package service

import (
	"fmt"
	"sort"
	"strings"

	"PocketballSync/internal/model"
	"PocketballSync/internal/repository"

	"github.com/sirupsen/logrus"
)

// SummaryRenderError 快照中的play缺少渲染必需字段
type SummaryRenderError struct {
	PlayIndex int
	Field     string
}

func (e *SummaryRenderError) Error() string {
	return fmt.Sprintf("第%d条play缺少%s，无法生成摘要", e.PlayIndex, e.Field)
}

// SummaryService 从快照重建按时间排序的比赛文字摘要（只读，不改快照）
type SummaryService struct {
	snapshotRepo *repository.SnapshotRepository
	logger       *logrus.Logger
}

func NewSummaryService(snapshotRepo *repository.SnapshotRepository, logger *logrus.Logger) *SummaryService {
	return &SummaryService{snapshotRepo: snapshotRepo, logger: logger}
}

// Generate 读取快照并渲染摘要
func (s *SummaryService) Generate() (string, error) {
	plays, err := s.snapshotRepo.Read()
	if err != nil {
		return "", err
	}
	return Render(plays)
}

// Render 将play序列渲染为摘要文本
// 按about.startTime升序（ISO-8601字典序即时间序）稳定排序，
// 时间相同的play保持输入相对顺序；空序列输出空字符串
func Render(plays []model.Play) (string, error) {
	if len(plays) == 0 {
		return "", nil
	}

	sorted := make([]model.Play, len(plays))
	copy(sorted, plays)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].About.StartTime < sorted[j].About.StartTime
	})

	// 时间戳仅做展示变换：去掉T/Z分隔符，不做时区换算
	replacer := strings.NewReplacer("T", " ", "Z", "")

	blocks := make([]string, 0, len(sorted))
	for i, play := range sorted {
		if play.About.StartTime == "" {
			return "", &SummaryRenderError{PlayIndex: i, Field: "about.startTime"}
		}
		if play.Result.Description == "" {
			return "", &SummaryRenderError{PlayIndex: i, Field: "result.description"}
		}

		half := "Bottom"
		if play.About.IsTopInning {
			half = "Top"
		}
		block := fmt.Sprintf("%s\n%s %d: %s (Score: %d-%d)\n",
			replacer.Replace(play.About.StartTime),
			half,
			play.About.Inning,
			play.Result.Description,
			play.Result.AwayScore,
			play.Result.HomeScore,
		)
		blocks = append(blocks, block)
	}

	// 块之间空一行
	return strings.Join(blocks, "\n"), nil
}
