package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Health 存活探针，无副作用
// GET /health
func Health(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Info("健康检查")
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
