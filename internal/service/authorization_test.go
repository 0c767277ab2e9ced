package service

import (
	"testing"

	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestHasRole(t *testing.T) {
	admin := &model.User{Role: model.RoleAdmin}
	citizen := &model.User{Role: model.RoleCitizen}

	require.True(t, HasRole(admin, model.RoleAdmin))
	require.False(t, HasRole(citizen, model.RoleAdmin))
	require.True(t, HasRole(citizen, model.RoleCitizen, model.RoleAdmin))
	require.False(t, HasRole(nil, model.RoleAdmin))
	require.False(t, HasRole(admin))
	require.False(t, HasRole(&model.User{Role: "ADMIN"}, model.RoleAdmin))
}

func TestOwnershipPredicates(t *testing.T) {
	owner := &model.User{ID: uuid.New(), Role: model.RoleCitizen}
	other := &model.User{ID: uuid.New(), Role: model.RoleCitizen}
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin}

	issue := &model.Issue{ReportedBy: owner.ID}
	require.True(t, CanModifyIssue(owner, issue))
	require.False(t, CanModifyIssue(other, issue))
	require.True(t, CanModifyIssue(admin, issue))
	require.False(t, CanModifyIssue(nil, issue))
	require.False(t, CanModifyIssue(owner, nil))

	comment := &model.Comment{UserID: owner.ID}
	require.True(t, CanDeleteComment(owner, comment))
	require.False(t, CanDeleteComment(other, comment))
	require.True(t, CanDeleteComment(admin, comment))
	require.False(t, CanDeleteComment(owner, nil))

	event := &model.Event{CreatedBy: owner.ID}
	require.True(t, CanViewRegistrations(owner, event))
	require.False(t, CanViewRegistrations(other, event))
	require.True(t, CanViewRegistrations(admin, event))
	require.False(t, CanViewRegistrations(nil, event))
}
