package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}

func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.store == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ready",
			"service":  serviceName,
			"sessions": "memory",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := srv.store.Ping(ctx); err != nil {
		srv.logger.Warn("readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not ready",
			"service": serviceName,
			"redis":   "unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  serviceName,
		"sessions": "redis",
		"redis":    "connected",
	})
}
