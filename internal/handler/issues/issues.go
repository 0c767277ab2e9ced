// Package issues 處理民眾問題回報、狀態流程與留言
package issues

import (
	"github.com/vishnupriya759285/velookara/internal/apperr"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 10
	statsKey     = "stats:issues"
	notFoundMsg  = "Issue not found"
)

// 方便測試替換
var (
	createIssue       = store.CreateIssue
	getIssueByID      = store.GetIssueByID
	listIssues        = store.ListIssues
	updateIssue       = store.UpdateIssue
	updateIssueStatus = store.UpdateIssueStatus
	assignIssue       = store.AssignIssue
	deleteIssue       = store.DeleteIssue
	getIssueStats     = store.GetIssueStats
	createComment     = store.CreateComment
	listComments      = store.ListComments
	getComment        = store.GetComment
	deleteComment     = store.DeleteComment
)

// parseFilter 讀取 status、category、priority 查詢參數，非法值回 Validation
func parseFilter(c echo.Context) (model.IssueFilter, error) {
	var f model.IssueFilter
	if v := c.QueryParam("status"); v != "" {
		s := model.IssueStatus(v)
		if !s.Valid() {
			return f, apperr.Invalid("Invalid status filter")
		}
		f.Status = &s
	}
	if v := c.QueryParam("category"); v != "" {
		cat := model.IssueCategory(v)
		if !cat.Valid() {
			return f, apperr.Invalid("Invalid category filter")
		}
		f.Category = &cat
	}
	if v := c.QueryParam("priority"); v != "" {
		p := model.IssuePriority(v)
		if !p.Valid() {
			return f, apperr.Invalid("Invalid priority filter")
		}
		f.Priority = &p
	}
	return f, nil
}
