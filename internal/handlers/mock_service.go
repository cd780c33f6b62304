package handlers

import (
	"context"
	"net/http"

	"blogapi/internal/models"
	"blogapi/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser    models.PublicUser
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (models.PublicUser, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPosts struct {
	listResp  []models.Post
	listErr   error
	getResp   *models.Post
	getErr    error
	createErr error

	lastGetID       int
	lastCreateTitle string
	lastCreateBody  string
	createCalls     int
}

func (m *mockPosts) List(ctx context.Context) ([]models.Post, error) {
	return m.listResp, m.listErr
}

func (m *mockPosts) GetByID(ctx context.Context, id int) (*models.Post, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockPosts) Create(ctx context.Context, title, body string) (models.Post, error) {
	m.createCalls++
	m.lastCreateTitle = title
	m.lastCreateBody = body
	if m.createErr != nil {
		return models.Post{}, m.createErr
	}
	return models.Post{ID: 1, Title: title, Body: body, Published: false}, nil
}

type mockSessions struct {
	touched []string
	err     error
}

func (m *mockSessions) Touch(ctx context.Context, id string) error {
	m.touched = append(m.touched, id)
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func basicAuthHeader(req *http.Request, username, password string) {
	req.SetBasicAuth(username, password)
}
