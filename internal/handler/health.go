package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health probes the two backing stores. Any failed probe turns the response
// into a 503 so the orchestrator pulls the instance out of rotation.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres, cache := "ok", "ok"

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "down"
		}
		if rdb.Ping(ctx).Err() != nil {
			cache = "down"
		}

		code, estado := http.StatusOK, "ok"
		if postgres != "ok" || cache != "ok" {
			code, estado = http.StatusServiceUnavailable, "degradado"
		}

		c.JSON(code, gin.H{
			"estado":   estado,
			"postgres": postgres,
			"redis":    cache,
		})
	}
}
