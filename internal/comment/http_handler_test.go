package comment

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"bookradar/internal/httpx"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository, *MockUsernameResolver) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockRepository(ctrl)
	users := NewMockUsernameResolver(ctrl)
	return NewHTTPHandler(NewService(repo, users)), repo, users
}

func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(httpx.ContextWithUserID(r.Context(), userID))
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler, repo, users := newTestHandler(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		users.EXPECT().UsernameByID(gomock.Any(), "user-1").Return("alice", nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(`{"bookId":"book-1","text":"great read"}`))

		handler.Create(w, asUser(r, "user-1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("missing text", func(t *testing.T) {
		handler, _, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(`{"bookId":"book-1"}`))

		handler.Create(w, asUser(r, "user-1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		handler, _, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/comments", strings.NewReader(`{"bookId":"book-1","text":"hi"}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHTTPHandler_ListByBook(t *testing.T) {
	handler, repo, _ := newTestHandler(t)
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().ListByBook(gomock.Any(), "book-1").Return([]Comment{
		{ID: "c2", BookID: "book-1", UserID: "user-2", Text: "newer", CreatedAt: ts.Add(time.Hour), Username: "bob"},
		{ID: "c1", BookID: "book-1", UserID: "user-1", Text: "older", CreatedAt: ts, Username: "alice"},
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/comments/book-1", nil)
	r.SetPathValue("bookId", "book-1")

	handler.ListByBook(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(body), "["))
	assert.Less(t, strings.Index(body, `"c2"`), strings.Index(body, `"c1"`))
}

func TestHTTPHandler_Delete(t *testing.T) {
	existing := Comment{ID: "comment-1", BookID: "book-1", UserID: "user-1", Text: "old"}

	t.Run("owner", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.EXPECT().GetByID(gomock.Any(), "comment-1").Return(existing, nil)
		repo.EXPECT().Delete(gomock.Any(), "comment-1").Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/comments/comment-1", nil)
		r.SetPathValue("id", "comment-1")

		handler.Delete(w, asUser(r, "user-1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Comment deleted"}`, w.Body.String())
	})

	t.Run("non-owner", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.EXPECT().GetByID(gomock.Any(), "comment-1").Return(existing, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/comments/comment-1", nil)
		r.SetPathValue("id", "comment-1")

		handler.Delete(w, asUser(r, "intruder"))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler, repo, _ := newTestHandler(t)
		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(Comment{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/comments/nope", nil)
		r.SetPathValue("id", "nope")

		handler.Delete(w, asUser(r, "user-1"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	existing := Comment{ID: "comment-1", BookID: "book-1", UserID: "user-1", Text: "old"}

	handler, repo, _ := newTestHandler(t)
	repo.EXPECT().GetByID(gomock.Any(), "comment-1").Return(existing, nil)
	repo.EXPECT().UpdateText(gomock.Any(), "comment-1", "revised").Return(nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/api/comments/comment-1", strings.NewReader(`{"text":"revised"}`))
	r.SetPathValue("id", "comment-1")

	handler.Update(w, asUser(r, "user-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"text":"revised"`)
}
