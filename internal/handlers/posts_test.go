package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogapi/internal/models"
	"blogapi/internal/service"
	"blogapi/internal/token"
)

func TestListPosts(t *testing.T) {
	posts := &mockPosts{listResp: []models.Post{
		{ID: 1, Title: "first", Body: "one", Published: true},
		{ID: 2, Title: "second", Body: "two", Published: false},
	}}
	s := &service.Service{Posts: posts}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var got []models.Post
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[0].Title != "first" || got[1].ID != 2 {
		t.Fatalf("unexpected posts: %+v", got)
	}
}

func TestGetPost(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		posts := &mockPosts{getResp: &models.Post{ID: 5, Title: "hello", Body: "world", Published: true}}
		s := &service.Service{Posts: posts}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts/5", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var got models.Post
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.ID != 5 || got.Title != "hello" {
			t.Fatalf("unexpected post: %+v", got)
		}
		if posts.lastGetID != 5 {
			t.Fatalf("GetByID called with %d, want 5", posts.lastGetID)
		}
	})

	t.Run("missing id yields null, not an error", func(t *testing.T) {
		posts := &mockPosts{getResp: nil}
		s := &service.Service{Posts: posts}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts/404", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if strings.TrimSpace(w.Body.String()) != "null" {
			t.Fatalf("expected JSON null, got %q", w.Body.String())
		}
	})

	t.Run("non-numeric id → 400", func(t *testing.T) {
		s := &service.Service{Posts: &mockPosts{}}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts/abc", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for non-numeric id, got %d", w.Code)
		}
	})

	t.Run("storage failure → 500", func(t *testing.T) {
		posts := &mockPosts{getErr: errors.New("db down")}
		s := &service.Service{Posts: posts}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/posts/1", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCreatePost(t *testing.T) {
	const body = `{"title":"hello","message":"world"}`

	t.Run("without token → 401 and nothing persisted", func(t *testing.T) {
		posts := &mockPosts{}
		s := &service.Service{Authorization: &mockAuth{}, Posts: posts}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if posts.createCalls != 0 {
			t.Fatalf("post must not be persisted without a token")
		}
	})

	t.Run("invalid token → 401 and nothing persisted", func(t *testing.T) {
		posts := &mockPosts{}
		auth := &mockAuth{parseErr: token.ErrInvalidToken}
		s := &service.Service{Authorization: auth, Posts: posts}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer bogus")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if posts.createCalls != 0 {
			t.Fatalf("post must not be persisted with an invalid token")
		}
	})

	t.Run("valid token persists and echoes the post", func(t *testing.T) {
		posts := &mockPosts{}
		auth := &mockAuth{parseID: 7}
		s := &service.Service{Authorization: auth, Posts: posts}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer good-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var got models.Post
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Title != "hello" || got.Body != "world" {
			t.Fatalf("unexpected post: %+v", got)
		}
		if posts.lastCreateTitle != "hello" || posts.lastCreateBody != "world" {
			t.Fatalf("Create called with %q/%q", posts.lastCreateTitle, posts.lastCreateBody)
		}
		if auth.lastParseToken != "good-token" {
			t.Fatalf("ParseToken got %q", auth.lastParseToken)
		}
	})

	t.Run("missing message → 400", func(t *testing.T) {
		posts := &mockPosts{}
		s := &service.Service{Authorization: &mockAuth{parseID: 7}, Posts: posts}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(`{"title":"only"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer good-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing message, got %d", w.Code)
		}
		if posts.createCalls != 0 {
			t.Fatalf("invalid body must not reach storage")
		}
	})
}

func TestPostStubs(t *testing.T) {
	s := &service.Service{Posts: &mockPosts{}}
	r := newTestRouter(s)

	cases := []struct {
		method string
		want   string
	}{
		{http.MethodPut, "post#edit 9"},
		{http.MethodDelete, "post#delete 9"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, "/api/posts/9", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s status=%d", tc.method, w.Code)
		}
		if w.Body.String() != tc.want {
			t.Fatalf("%s body=%q, want %q", tc.method, w.Body.String(), tc.want)
		}
	}
}
