package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/internal/models"
	"blogapi/internal/service"
)

func TestCreateUser(t *testing.T) {
	t.Run("success returns public shape only", func(t *testing.T) {
		auth := &mockAuth{signUpUser: models.PublicUser{ID: 42, Username: "u"}}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		body := bytes.NewBufferString(`{"username":"u","password":"p"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", body)
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if int(m["id"].(float64)) != 42 || m["username"] != "u" {
			t.Fatalf("unexpected response: %v", m)
		}
		for _, forbidden := range []string{"password", "password_hash"} {
			if _, present := m[forbidden]; present {
				t.Fatalf("response leaks %q: %v", forbidden, m)
			}
		}
		if auth.lastSignUpUsername != "u" || auth.lastSignUpPassword != "p" {
			t.Fatalf("SignUp called with %q/%q", auth.lastSignUpUsername, auth.lastSignUpPassword)
		}
	})

	t.Run("missing fields → 400", func(t *testing.T) {
		s := &service.Service{Authorization: &mockAuth{}}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"username":"u"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing password, got %d", w.Code)
		}
	})

	t.Run("empty password → 400", func(t *testing.T) {
		auth := &mockAuth{signUpErr: service.ErrEmptyPassword}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"username":"u","password":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for empty password, got %d", w.Code)
		}
	})

	t.Run("storage failure → 500 with generic body", func(t *testing.T) {
		auth := &mockAuth{signUpErr: errors.New("UNIQUE constraint failed: users.username")}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"username":"u","password":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 for duplicate insert, got %d", w.Code)
		}
		var out struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Error != "internal error" {
			t.Fatalf("internal detail leaked: %q", out.Error)
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("success returns token body", func(t *testing.T) {
		auth := &mockAuth{genTokenToken: "tok123"}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		basicAuthHeader(req, "alice", "letmein")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if m["token"] != "tok123" {
			t.Fatalf("expected token tok123, got %v", m["token"])
		}
		if auth.lastGenUsername != "alice" || auth.lastGenPassword != "letmein" {
			t.Fatalf("GenerateToken called with %q/%q", auth.lastGenUsername, auth.lastGenPassword)
		}
	})

	t.Run("missing basic credentials → 401", func(t *testing.T) {
		auth := &mockAuth{genTokenToken: "should-not-be-issued"}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without credentials, got %d", w.Code)
		}
		if auth.lastGenUsername != "" {
			t.Fatalf("GenerateToken must not be called without credentials")
		}
	})

	t.Run("bad credentials → 401, no token", func(t *testing.T) {
		auth := &mockAuth{genTokenErr: service.ErrInvalidCredentials}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		basicAuthHeader(req, "alice", "wrong")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("token")) {
			t.Fatalf("401 response must not carry a token: %s", w.Body.String())
		}
	})

	t.Run("unknown user is also 401, not 500", func(t *testing.T) {
		auth := &mockAuth{genTokenErr: service.ErrInvalidCredentials}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		basicAuthHeader(req, "ghost", "pw")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for unknown user, got %d", w.Code)
		}
	})

	t.Run("storage failure → 500", func(t *testing.T) {
		auth := &mockAuth{genTokenErr: errors.New("db down")}
		s := &service.Service{Authorization: auth}
		r := newTestRouter(s)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		basicAuthHeader(req, "alice", "pw")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 for storage error, got %d", w.Code)
		}
	})
}
