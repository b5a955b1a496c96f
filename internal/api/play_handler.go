package api

import (
	"net/http"
	"strconv"

	"PocketballSync/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PlayHandler 归档play查询接口（给前端页面用）
type PlayHandler struct {
	playRepo *repository.PlayRepository
	logger   *logrus.Logger
}

func NewPlayHandler(playRepo *repository.PlayRepository, logger *logrus.Logger) *PlayHandler {
	return &PlayHandler{
		playRepo: playRepo,
		logger:   logger,
	}
}

// ListPlays 归档play列表接口
// GET /api/plays?game_pk=716463&page=1&page_size=50
func (h *PlayHandler) ListPlays(c *gin.Context) {
	gamePk := c.Query("game_pk")
	if gamePk == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_pk is required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	records, total, err := h.playRepo.ListPlays(c.Request.Context(), gamePk, page, pageSize)
	if err != nil {
		h.logger.WithError(err).Error("查询归档play失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"plays":     records,
	})
}
