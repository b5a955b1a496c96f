package api

import (
	"net/http"

	"PocketballSync/internal/repository"
	"PocketballSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LiveStateDegradedMessage 赛程文档读不出来时的固定降级文案
const LiveStateDegradedMessage = "Unable to fetch game information"

// LiveHandler 当前比赛比分查询接口
type LiveHandler struct {
	liveStateService *service.LiveStateService
	logger           *logrus.Logger
}

func NewLiveHandler(scheduleRepo *repository.ScheduleRepository, logger *logrus.Logger) *LiveHandler {
	return &LiveHandler{
		liveStateService: service.NewLiveStateService(scheduleRepo, logger),
		logger:           logger,
	}
}

// GetLiveGames 返回第一场进行中比赛的比分行
// GET /live_games/
func (h *LiveHandler) GetLiveGames(c *gin.Context) {
	line, err := h.liveStateService.Current()
	if err != nil {
		h.logger.WithError(err).Error("查询当前比赛失败")
		c.JSON(http.StatusOK, gin.H{"game_info": LiveStateDegradedMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"game_info": line})
}
