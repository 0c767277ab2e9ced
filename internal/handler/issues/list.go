package issues

import (
	"context"
	"net/http"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/labstack/echo/v4"
)

// ListIssuesHandler 公開的問題列表
// @Summary     List issues
// @Description 依狀態、類別、優先度篩選，新到舊排序
// @Tags        issues
// @Produce     json
// @Param       status    query     string  false  "pending | in-progress | resolved | closed"
// @Param       category  query     string  false  "類別"
// @Param       priority  query     string  false  "low | medium | high | critical"
// @Param       page      query     int     false  "頁碼"  default(1)
// @Param       limit     query     int     false  "每頁筆數"  default(10)
// @Success     200       {object}  api.IssueListResponse
// @Failure     400       {object}  api.ErrorResponse
// @Failure     500       {object}  api.ErrorResponse
// @Router      /issues [get]
func ListIssuesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		f, err := parseFilter(c)
		if err != nil {
			return handler.Fail(c, err)
		}
		return respondList(c, db, f)
	}
}

// MyIssuesHandler 目前使用者回報的問題
// @Summary     My issues
// @Description 只列出呼叫者自己回報的問題
// @Tags        issues
// @Produce     json
// @Param       status  query     string  false  "狀態"
// @Param       page    query     int     false  "頁碼"  default(1)
// @Param       limit   query     int     false  "每頁筆數"  default(10)
// @Success     200     {object}  api.IssueListResponse
// @Failure     401     {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues/my-issues [get]
func MyIssuesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}
		f, err := parseFilter(c)
		if err != nil {
			return handler.Fail(c, err)
		}
		f.ReportedBy = &user.ID
		return respondList(c, db, f)
	}
}

func respondList(c echo.Context, db database.DB, f model.IssueFilter) error {
	f.Page = handler.ParsePage(c, defaultLimit)
	issues, total, err := listIssues(c.Request().Context(), db, f)
	if err != nil {
		return handler.Fail(c, err)
	}
	return c.JSON(http.StatusOK, api.IssueListResponse{
		Success:    true,
		Issues:     issues,
		Pagination: model.NewPagination(f.Page, total),
	})
}

// IssueStatsHandler 問題統計，結果短暫快取於 Redis
// @Summary     Issue statistics
// @Description 依狀態、優先度與類別統計問題數量
// @Tags        issues
// @Produce     json
// @Success     200  {object}  api.IssueStatsResponse
// @Failure     401  {object}  api.ErrorResponse
// @Failure     403  {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues/stats/overview [get]
func IssueStatsHandler(db database.DB, sc *handler.StatsCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := handler.CachedStats(c.Request().Context(), sc, statsKey, func(ctx context.Context) (*model.IssueStats, error) {
			return getIssueStats(ctx, db)
		})
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.IssueStatsResponse{Success: true, Stats: stats})
	}
}
