package service

import (
	"context"

	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/token"
)

type Authorization interface {
	SignUp(username, password string) (models.PublicUser, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Posts exposes the blog CRUD surface. Update/delete are intentionally
// absent: their routes are acknowledged stubs at the handler level.
type Posts interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	Create(ctx context.Context, title, body string) (models.Post, error)
}

// Publisher receives every newly created post, e.g. to fan it out to
// websocket subscribers. A nil publisher is a no-op.
type Publisher interface {
	Publish(post models.Post)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Posts
}

// NewService wires the repository layer into concrete services. The token
// codec and password hasher are constructed once from configuration and
// passed in here; no service reads secrets on its own.
func NewService(repos *repository.Repository, codec *token.Codec, hasher *Hasher, feed Publisher) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, codec, hasher),
		Posts:         NewPostService(repos.Posts, feed),
	}
}
