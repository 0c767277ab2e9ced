package issues

import (
	"net/http"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/service"

	"github.com/labstack/echo/v4"
)

// GetIssueHandler 取得單一問題
// @Summary     Get an issue
// @Tags        issues
// @Produce     json
// @Param       id   path      string  true  "問題 ID"
// @Success     200  {object}  api.IssueResponse
// @Failure     400  {object}  api.ErrorResponse  "ID 格式錯誤"
// @Failure     404  {object}  api.ErrorResponse  "問題不存在"
// @Router      /issues/{id} [get]
func GetIssueHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		issue, err := getIssueByID(c.Request().Context(), db, id)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.IssueResponse{Success: true, Issue: issue})
	}
}

// loadOwned 讀取問題並確認呼叫者為回報者或管理員
func loadOwned(c echo.Context, db database.DB) (*model.Issue, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, apperr.Unauthorized("Not authenticated")
	}
	id, err := handler.ParseID(c, "id")
	if err != nil {
		return nil, err
	}
	issue, err := getIssueByID(c.Request().Context(), db, id)
	if err != nil {
		return nil, handler.Translate(err, notFoundMsg)
	}
	if !service.CanModifyIssue(user, issue) {
		return nil, apperr.Denied("Not authorized to modify this issue")
	}
	return issue, nil
}

// UpdateIssueHandler 修改問題內容，僅回報者或管理員
// @Summary     Update an issue
// @Description 只接受 title、description、category、location、priority、image_url，其他欄位忽略；image_url 傳 null 移除圖片
// @Tags        issues
// @Accept      json
// @Produce     json
// @Param       id    path      string                  true  "問題 ID"
// @Param       body  body      api.UpdateIssueRequest  true  "修改內容"
// @Success     200   {object}  api.IssueResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     401   {object}  api.ErrorResponse
// @Failure     403   {object}  api.ErrorResponse  "非回報者或管理員"
// @Failure     404   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues/{id} [put]
func UpdateIssueHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		issue, err := loadOwned(c, db)
		if err != nil {
			return handler.Fail(c, err)
		}

		var req api.UpdateIssueRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		upd := model.IssueUpdate{
			Title:         handler.TrimPtr(req.Title),
			Description:   handler.TrimPtr(req.Description),
			Location:      handler.TrimPtr(req.Location),
			ImageURL:      req.ImageURL.Value,
			ClearImageURL: req.ImageURL.Clear(),
		}
		if req.Category != nil {
			cat := model.IssueCategory(*req.Category)
			upd.Category = &cat
		}
		if req.Priority != nil {
			p := model.IssuePriority(*req.Priority)
			upd.Priority = &p
		}
		if err := handler.NonBlank(upd.Title, upd.Description, upd.Location); err != nil {
			return handler.Fail(c, err)
		}

		updated, err := updateIssue(c.Request().Context(), db, issue.ID, upd)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.IssueResponse{
			Success: true,
			Message: "Issue updated successfully",
			Issue:   updated,
		})
	}
}

// DeleteIssueHandler 刪除問題，僅回報者或管理員
// @Summary     Delete an issue
// @Tags        issues
// @Produce     json
// @Param       id   path      string  true  "問題 ID"
// @Success     200  {object}  api.MessageResponse
// @Failure     401  {object}  api.ErrorResponse
// @Failure     403  {object}  api.ErrorResponse
// @Failure     404  {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues/{id} [delete]
func DeleteIssueHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		issue, err := loadOwned(c, db)
		if err != nil {
			return handler.Fail(c, err)
		}
		if err := deleteIssue(c.Request().Context(), db, issue.ID); err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Issue deleted successfully"})
	}
}
