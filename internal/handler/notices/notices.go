// Package notices 處理公告，公開列表只顯示未過期的公告
package notices

import (
	"net/http"
	"strings"
	"time"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 10
	notFoundMsg  = "Notice not found"
)

// 方便測試替換
var (
	createNotice      = store.CreateNotice
	getNoticeByID     = store.GetNoticeByID
	listActiveNotices = store.ListActiveNotices
	updateNotice      = store.UpdateNotice
	deleteNotice      = store.DeleteNotice
	now               = time.Now
)

// CreateNoticeHandler 發布公告
// @Summary     Create a notice
// @Description 僅管理員，priority 預設 normal，expires_at 省略表示永不過期
// @Tags        notices
// @Accept      json
// @Produce     json
// @Param       body  body      api.CreateNoticeRequest  true  "公告內容"
// @Success     201   {object}  api.NoticeResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     403   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /notices [post]
func CreateNoticeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}
		var req api.CreateNoticeRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		title := strings.TrimSpace(req.Title)
		content := strings.TrimSpace(req.Content)
		if title == "" || content == "" {
			return handler.Fail(c, apperr.Invalid("Title and content are required"))
		}

		notice, err := createNotice(c.Request().Context(), db, &model.Notice{
			Title:     title,
			Content:   content,
			Priority:  model.NoticePriority(req.Priority),
			CreatedBy: user.ID,
			ExpiresAt: req.ExpiresAt,
		})
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusCreated, api.NoticeResponse{
			Success: true,
			Message: "Notice created successfully",
			Notice:  notice,
		})
	}
}

// ListNoticesHandler 未過期的公告，新到舊
// @Summary     List active notices
// @Description 只回傳 expires_at 為空或晚於現在的公告
// @Tags        notices
// @Produce     json
// @Param       page   query     int  false  "頁碼"  default(1)
// @Param       limit  query     int  false  "每頁筆數"  default(10)
// @Success     200    {object}  api.NoticeListResponse
// @Failure     500    {object}  api.ErrorResponse
// @Router      /notices [get]
func ListNoticesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page := handler.ParsePage(c, defaultLimit)
		notices, total, err := listActiveNotices(c.Request().Context(), db, now(), page)
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.NoticeListResponse{
			Success:    true,
			Notices:    notices,
			Pagination: model.NewPagination(page, total),
		})
	}
}

// GetNoticeHandler 取得單一公告，不論是否過期
// @Summary     Get a notice
// @Tags        notices
// @Produce     json
// @Param       id   path      string  true  "公告 ID"
// @Success     200  {object}  api.NoticeResponse
// @Failure     400  {object}  api.ErrorResponse
// @Failure     404  {object}  api.ErrorResponse
// @Router      /notices/{id} [get]
func GetNoticeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		notice, err := getNoticeByID(c.Request().Context(), db, id)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.NoticeResponse{Success: true, Notice: notice})
	}
}

// UpdateNoticeHandler 修改公告，expires_at 傳 null 清除到期時間
// @Summary     Update a notice
// @Description 僅管理員
// @Tags        notices
// @Accept      json
// @Produce     json
// @Param       id    path      string                   true  "公告 ID"
// @Param       body  body      api.UpdateNoticeRequest  true  "修改內容"
// @Success     200   {object}  api.NoticeResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     403   {object}  api.ErrorResponse
// @Failure     404   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /notices/{id} [put]
func UpdateNoticeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		var req api.UpdateNoticeRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}

		upd := model.NoticeUpdate{
			Title:       handler.TrimPtr(req.Title),
			Content:     handler.TrimPtr(req.Content),
			ExpiresAt:   req.ExpiresAt.Value,
			ClearExpiry: req.ExpiresAt.Clear(),
		}
		if err := handler.NonBlank(upd.Title, upd.Content); err != nil {
			return handler.Fail(c, err)
		}
		if req.Priority != nil {
			p := model.NoticePriority(*req.Priority)
			upd.Priority = &p
		}

		notice, err := updateNotice(c.Request().Context(), db, id, upd)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.NoticeResponse{
			Success: true,
			Message: "Notice updated successfully",
			Notice:  notice,
		})
	}
}

// DeleteNoticeHandler 刪除公告
// @Summary     Delete a notice
// @Description 僅管理員
// @Tags        notices
// @Produce     json
// @Param       id   path      string  true  "公告 ID"
// @Success     200  {object}  api.MessageResponse
// @Failure     403  {object}  api.ErrorResponse
// @Failure     404  {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /notices/{id} [delete]
func DeleteNoticeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		if err := deleteNotice(c.Request().Context(), db, id); err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Notice deleted successfully"})
	}
}
