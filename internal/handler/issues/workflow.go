package issues

import (
	"net/http"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/notify"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const invalidStatusMsg = "Invalid status. Must be one of: pending, in-progress, resolved, closed"

// UpdateStatusHandler 變更問題狀態，任何狀態之間皆可切換
// @Summary     Update issue status
// @Description 僅管理員，status 必須為 pending、in-progress、resolved、closed 其中之一
// @Tags        issues
// @Accept      json
// @Produce     json
// @Param       id    path      string                        true  "問題 ID"
// @Param       body  body      api.UpdateIssueStatusRequest  true  "新狀態"
// @Success     200   {object}  api.IssueResponse
// @Failure     400   {object}  api.ErrorResponse
// @Failure     403   {object}  api.ErrorResponse
// @Failure     404   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues/{id}/status [put]
func UpdateStatusHandler(db database.DB, notifier notify.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		var req api.UpdateIssueStatusRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		status := model.IssueStatus(req.Status)
		if !status.Valid() {
			return handler.Fail(c, apperr.Invalid(invalidStatusMsg))
		}

		ctx := c.Request().Context()
		current, err := getIssueByID(ctx, db, id)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		updated, err := updateIssueStatus(ctx, db, id, status)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		if current.Status != updated.Status {
			notifier.IssueStatusChanged(*updated, current.Status)
		}

		return c.JSON(http.StatusOK, api.IssueResponse{
			Success: true,
			Message: "Issue status updated successfully",
			Issue:   updated,
		})
	}
}

// AssignIssueHandler 指派或取消指派負責人
// @Summary     Assign an issue
// @Description 僅管理員，assignedTo 為 null 時取消指派
// @Tags        issues
// @Accept      json
// @Produce     json
// @Param       id    path      string                  true  "問題 ID"
// @Param       body  body      api.AssignIssueRequest  true  "負責人"
// @Success     200   {object}  api.IssueResponse
// @Failure     400   {object}  api.ErrorResponse  "負責人不存在"
// @Failure     403   {object}  api.ErrorResponse
// @Failure     404   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues/{id}/assign [put]
func AssignIssueHandler(db database.DB, notifier notify.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		var req api.AssignIssueRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}

		var assignee *uuid.UUID
		if req.AssignedTo != nil && *req.AssignedTo != "" {
			uid, err := uuid.Parse(*req.AssignedTo)
			if err != nil {
				return handler.Fail(c, apperr.Invalid("Invalid assignedTo"))
			}
			assignee = &uid
		}

		issue, err := assignIssue(c.Request().Context(), db, id, assignee)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		if assignee != nil {
			notifier.IssueAssigned(*issue)
		}

		msg := "Issue assigned successfully"
		if assignee == nil {
			msg = "Issue unassigned successfully"
		}
		return c.JSON(http.StatusOK, api.IssueResponse{Success: true, Message: msg, Issue: issue})
	}
}
