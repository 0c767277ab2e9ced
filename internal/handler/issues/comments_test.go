package issues

import (
	"context"
	"net/http"
	"testing"

	"github.com/vishnupriya759285/velookara/internal/api"
	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAddCommentHandler(t *testing.T) {
	e := newEcho()
	db := &database.FakeDB{}
	issueID := uuid.New()

	t.Run("blank text", func(t *testing.T) {
		c, rec := newCtx(e, http.MethodPost, "/", `{"text":"   "}`, citizen, "id", issueID.String())
		require.NoError(t, AddCommentHandler(db)(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Comment text is required", decode[api.ErrorResponse](t, rec).Message)
	})

	t.Run("missing issue", func(t *testing.T) {
		t.Cleanup(restore)
		createComment = func(context.Context, database.DB, *model.Comment) (*model.Comment, error) {
			return nil, store.ErrNotFound
		}
		c, rec := newCtx(e, http.MethodPost, "/", `{"text":"hi"}`, citizen, "id", issueID.String())
		require.NoError(t, AddCommentHandler(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("trimmed", func(t *testing.T) {
		t.Cleanup(restore)
		createComment = func(_ context.Context, _ database.DB, cm *model.Comment) (*model.Comment, error) {
			require.Equal(t, issueID, cm.IssueID)
			require.Equal(t, citizen.ID, cm.UserID)
			out := *cm
			out.ID = uuid.New()
			out.UserName = citizen.Name
			return &out, nil
		}
		c, rec := newCtx(e, http.MethodPost, "/", `{"text":"  any update?  "}`, citizen, "id", issueID.String())
		require.NoError(t, AddCommentHandler(db)(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "any update?", decode[api.CommentResponse](t, rec).Comment.Text)
	})
}

func TestListCommentsHandler(t *testing.T) {
	e := newEcho()
	db := &database.FakeDB{}
	issue := sampleIssue(citizen.ID)

	t.Run("missing issue", func(t *testing.T) {
		t.Cleanup(restore)
		getIssueByID = func(context.Context, database.DB, uuid.UUID) (*model.Issue, error) { return nil, store.ErrNotFound }
		c, rec := newCtx(e, http.MethodGet, "/", "", nil, "id", issue.ID.String())
		require.NoError(t, ListCommentsHandler(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		t.Cleanup(restore)
		getIssueByID = func(context.Context, database.DB, uuid.UUID) (*model.Issue, error) { return issue, nil }
		listComments = func(context.Context, database.DB, uuid.UUID) ([]model.Comment, error) {
			return []model.Comment{{ID: uuid.New(), Text: "b"}, {ID: uuid.New(), Text: "a"}}, nil
		}
		c, rec := newCtx(e, http.MethodGet, "/", "", nil, "id", issue.ID.String())
		require.NoError(t, ListCommentsHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, decode[api.CommentListResponse](t, rec).Comments, 2)
	})
}

func TestDeleteCommentHandler(t *testing.T) {
	e := newEcho()
	db := &database.FakeDB{}
	issueID := uuid.New()
	comment := &model.Comment{ID: uuid.New(), IssueID: issueID, UserID: citizen.ID, Text: "x"}

	for _, tc := range []struct {
		name string
		user *model.User
		code int
	}{
		{"author", citizen, http.StatusOK},
		{"admin", admin, http.StatusOK},
		{"other", other, http.StatusForbidden},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(restore)
			deleted := false
			getComment = func(_ context.Context, _ database.DB, iid, cid uuid.UUID) (*model.Comment, error) {
				require.Equal(t, issueID, iid)
				require.Equal(t, comment.ID, cid)
				return comment, nil
			}
			deleteComment = func(context.Context, database.DB, uuid.UUID) error { deleted = true; return nil }
			c, rec := newCtx(e, http.MethodDelete, "/", "", tc.user, "id", issueID.String(), "commentId", comment.ID.String())
			require.NoError(t, DeleteCommentHandler(db)(c))
			require.Equal(t, tc.code, rec.Code)
			require.Equal(t, tc.code == http.StatusOK, deleted)
		})
	}

	t.Run("missing", func(t *testing.T) {
		t.Cleanup(restore)
		getComment = func(context.Context, database.DB, uuid.UUID, uuid.UUID) (*model.Comment, error) {
			return nil, store.ErrNotFound
		}
		c, rec := newCtx(e, http.MethodDelete, "/", "", admin, "id", issueID.String(), "commentId", uuid.NewString())
		require.NoError(t, DeleteCommentHandler(db)(c))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Comment not found", decode[api.ErrorResponse](t, rec).Message)
	})
}
