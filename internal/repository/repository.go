package repository

import (
	"context"
	"database/sql"

	"blogapi/internal/models"
)

type Authorization interface {
	Create(username, hash string) (models.User, error)
	GetByUsername(username string) (*models.User, error)
}

type Posts interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	Create(ctx context.Context, title, body string) (models.Post, error)
}

type Repository struct {
	Auth  Authorization
	Posts Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:  NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}
