package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogapi/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL     = `INSERT INTO posts (title, body, published) VALUES (?, ?, ?)`
	selectPostByIDSQL = `SELECT id, title, body, published FROM posts WHERE id = ?`
	selectAllPostsSQL = `SELECT id, title, body, published FROM posts ORDER BY id ASC`
)

// List returns every post, oldest first.
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectAllPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 16)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.Published); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return out, nil
}

// GetByID fetches a post by id. Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRowContext(ctx, selectPostByIDSQL, id).Scan(&p.ID, &p.Title, &p.Body, &p.Published)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %d: %w", id, err)
	}
	return &p, nil
}

// Create inserts a new unpublished post and returns the stored row.
func (r *PostRepository) Create(ctx context.Context, title, body string) (models.Post, error) {
	res, err := r.db.ExecContext(ctx, insertPostSQL, title, body, false)
	if err != nil {
		return models.Post{}, fmt.Errorf("insert post %q: %w", title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Post{}, fmt.Errorf("get last insert id for post %q: %w", title, err)
	}
	return models.Post{ID: int(lastID), Title: title, Body: body, Published: false}, nil
}
