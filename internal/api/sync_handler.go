package api

import (
	"fmt"
	"net/http"

	"PocketballSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SyncHandler struct {
	syncService *service.SyncService
	logger      *logrus.Logger
}

func NewSyncHandler(syncService *service.SyncService, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		logger:      logger,
	}
}

// SyncGameHandler 同步指定比赛的play-by-play数据
// @Summary 同步比赛实时数据
// @Param game_pk path string true "MLB比赛ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /sync/game/{game_pk} [post]
func (h *SyncHandler) SyncGameHandler(c *gin.Context) {
	gamePk := c.Param("game_pk")

	count, err := h.syncService.SyncGame(c.Request.Context(), gamePk)
	if err != nil {
		h.logger.Errorf("同步比赛%s失败: %v", gamePk, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("比赛%s同步成功", gamePk),
		"play_count": count,
	})
}

// SyncScheduleHandler 同步赛程文档（date为空取当天）
// @Router /sync/schedule [post]
func (h *SyncHandler) SyncScheduleHandler(c *gin.Context) {
	date := c.Query("date")

	count, err := h.syncService.SyncSchedule(c.Request.Context(), date)
	if err != nil {
		h.logger.Errorf("同步赛程失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "赛程同步成功",
		"game_count": count,
	})
}
