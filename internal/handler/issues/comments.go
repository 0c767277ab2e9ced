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
	"github.com/vishnupriya759285/velookara/internal/service"

	"github.com/labstack/echo/v4"
)

// AddCommentHandler 對問題留言，任何登入者皆可
// @Summary     Add a comment
// @Tags        comments
// @Accept      json
// @Produce     json
// @Param       id    path      string                    true  "問題 ID"
// @Param       body  body      api.CreateCommentRequest  true  "留言"
// @Success     201   {object}  api.CommentResponse
// @Failure     400   {object}  api.ErrorResponse  "留言為空"
// @Failure     401   {object}  api.ErrorResponse
// @Failure     404   {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues/{id}/comments [post]
func AddCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		var req api.CreateCommentRequest
		if err := handler.Bind(c, &req); err != nil {
			return handler.Fail(c, err)
		}
		text := strings.TrimSpace(req.Text)
		if text == "" {
			return handler.Fail(c, apperr.Invalid("Comment text is required"))
		}

		comment, err := createComment(c.Request().Context(), db, &model.Comment{
			IssueID: id,
			UserID:  user.ID,
			Text:    text,
		})
		if err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		return c.JSON(http.StatusCreated, api.CommentResponse{
			Success: true,
			Message: "Comment added successfully",
			Comment: comment,
		})
	}
}

// ListCommentsHandler 問題的留言，新到舊
// @Summary     List comments
// @Tags        comments
// @Produce     json
// @Param       id   path      string  true  "問題 ID"
// @Success     200  {object}  api.CommentListResponse
// @Failure     404  {object}  api.ErrorResponse
// @Router      /issues/{id}/comments [get]
func ListCommentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		ctx := c.Request().Context()
		if _, err := getIssueByID(ctx, db, id); err != nil {
			return handler.Fail(c, handler.Translate(err, notFoundMsg))
		}
		comments, err := listComments(ctx, db, id)
		if err != nil {
			return handler.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.CommentListResponse{Success: true, Comments: comments})
	}
}

// DeleteCommentHandler 刪除留言，僅留言者或管理員
// @Summary     Delete a comment
// @Tags        comments
// @Produce     json
// @Param       id         path      string  true  "問題 ID"
// @Param       commentId  path      string  true  "留言 ID"
// @Success     200        {object}  api.MessageResponse
// @Failure     403        {object}  api.ErrorResponse
// @Failure     404        {object}  api.ErrorResponse
// @Security    BearerAuth
// @Router      /issues/{id}/comments/{commentId} [delete]
func DeleteCommentHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			return handler.Fail(c, apperr.Unauthorized("Not authenticated"))
		}
		issueID, err := handler.ParseID(c, "id")
		if err != nil {
			return handler.Fail(c, err)
		}
		commentID, err := handler.ParseID(c, "commentId")
		if err != nil {
			return handler.Fail(c, err)
		}

		ctx := c.Request().Context()
		comment, err := getComment(ctx, db, issueID, commentID)
		if err != nil {
			return handler.Fail(c, handler.Translate(err, "Comment not found"))
		}
		if !service.CanDeleteComment(user, comment) {
			return handler.Fail(c, apperr.Denied("Not authorized to delete this comment"))
		}
		if err := deleteComment(ctx, db, comment.ID); err != nil {
			return handler.Fail(c, handler.Translate(err, "Comment not found"))
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Comment deleted successfully"})
	}
}
