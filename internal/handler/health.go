package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/cache"
	"github.com/vishnupriya759285/velookara/internal/database"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 2 * time.Second

var now = time.Now

// HealthHandler 存活檢查，不依賴外部服務
// @Summary     Liveness check
// @Description 回傳服務運作狀態
// @Tags        health
// @Produce     json
// @Success     200  {object}  api.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{
			Status:    "OK",
			Message:   "Velookara civic portal API is running",
			Timestamp: now().UTC(),
		})
	}
}

// ReadinessHandler 檢查資料庫與 Redis 連線
// @Summary     Readiness check
// @Description 檢查 PostgreSQL 與 Redis 是否可用，任一失敗回 503
// @Tags        health
// @Produce     json
// @Success     200  {object}  api.ReadinessResponse
// @Failure     503  {object}  api.ReadinessResponse
// @Router      /health/ready [get]
func ReadinessHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		resp := api.ReadinessResponse{Status: "OK", Checks: map[string]string{}, Timestamp: now().UTC()}
		status := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			resp.Checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			resp.Checks["database"] = "ok"
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				resp.Checks["redis"] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				resp.Checks["redis"] = "ok"
			}
		}
		if status != http.StatusOK {
			resp.Status = "UNAVAILABLE"
		}
		return c.JSON(status, resp)
	}
}
