package issues

import (
	"net/http"
	"strings"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/handler"
	"github.com/vishnupriya759285/velookara/internal/middleware"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/notify"

	"github.com/labstack/echo/v4"
)

// CreateIssueHandler 回報新問題，狀態固定為 pending
// @Summary     Report an issue
// @Description 建立問題回報，priority 預設 medium
// @Tags        issues
// @Accept      json
// @Produce     json
// @Param       body  body      api.CreateIssueRequest  true  "問題內容"
// @Success     201   {object}  api.IssueResponse
// @Failure     400   {object}  api.ErrorResponse  "參數錯誤"
// @Failure     401   {object}  api.ErrorResponse
// @Failure     500   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues [post]
func CreateIssueHandler(db database.DB, notifier notify.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}

		var req api.CreateIssueRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		title := strings.TrimSpace(req.Title)
		description := strings.TrimSpace(req.Description)
		location := strings.TrimSpace(req.Location)
		if title == "" || description == "" || location == "" {
			return handler.Fail(c, apperr.Invalid("Title, description, category and location are required"))
		}

		issue, err := createIssue(c.Request().Context(), db, &model.Issue{
			Title:       title,
			Description: description,
			Category:    model.IssueCategory(req.Category),
			Location:    location,
			Priority:    model.IssuePriority(req.Priority),
			ReportedBy:  user.ID,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			return handler.Fail(c, err)
		}
		issue.ReporterName = user.Name
		issue.ReporterEmail = user.Email

		notifier.IssueCreated(*issue)

		return c.JSON(http.StatusCreated, api.IssueResponse{
			Success: true,
			Message: "Issue created successfully",
			Issue:   issue,
		})
	}
}
