package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports liveness plus the status of each backing service.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok"}
		code := http.StatusOK

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status["postgres"] = "down"
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			status["postgres"] = "up"
		}

		if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
			status["redis"] = "down"
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			status["redis"] = "up"
		}

		c.JSON(code, status)
	}
}
