package api

import (
	"net/http"

	"PocketballSync/internal/repository"
	"PocketballSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SummaryDegradedMessage 摘要生成失败时返回给用户的固定降级文案
const SummaryDegradedMessage = "Unable to generate game summary"

// SummaryHandler 比赛摘要查询接口
type SummaryHandler struct {
	summaryService *service.SummaryService
	logger         *logrus.Logger
}

func NewSummaryHandler(snapshotRepo *repository.SnapshotRepository, logger *logrus.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: service.NewSummaryService(snapshotRepo, logger),
		logger:         logger,
	}
}

// GetGameSummary 按时间顺序重建比赛文字摘要
// 任何失败（快照缺失/损坏/字段不全）都降级为固定文案，不向用户抛错误详情
// GET /game_summary/
func (h *SummaryHandler) GetGameSummary(c *gin.Context) {
	summary, err := h.summaryService.Generate()
	if err != nil {
		h.logger.WithError(err).Error("生成比赛摘要失败")
		c.JSON(http.StatusOK, gin.H{"summary": SummaryDegradedMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
