package service

import (
	"github.com/vishnupriya759285/velookara/internal/model"
)

// HasRole 是唯一的角色判斷，角色須完全相符
func HasRole(user *model.User, roles ...model.Role) bool {
	if user == nil {
		return false
	}
	for _, r := range roles {
		if user.Role == r {
			return true
		}
	}
	return false
}

// CanModifyIssue 回報者本人或管理員
func CanModifyIssue(user *model.User, issue *model.Issue) bool {
	if user == nil || issue == nil {
		return false
	}
	return issue.ReportedBy == user.ID || HasRole(user, model.RoleAdmin)
}

func CanDeleteComment(user *model.User, comment *model.Comment) bool {
	if user == nil || comment == nil {
		return false
	}
	return comment.UserID == user.ID || HasRole(user, model.RoleAdmin)
}

// CanViewRegistrations 活動建立者或管理員
func CanViewRegistrations(user *model.User, event *model.Event) bool {
	if user == nil || event == nil {
		return false
	}
	return event.CreatedBy == user.ID || HasRole(user, model.RoleAdmin)
}
