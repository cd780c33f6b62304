package service

import (
	"context"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// PostService implements the posts CRUD surface over the repository and
// announces new posts to the live feed.
type PostService struct {
	postRepo repository.Posts
	feed     Publisher
}

func NewPostService(repo repository.Posts, feed Publisher) *PostService {
	return &PostService{postRepo: repo, feed: feed}
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetByID returns (nil, nil) when no post exists with the given id; the
// handler serializes that as a JSON null, not an error.
func (s *PostService) GetByID(ctx context.Context, id int) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Create persists the post and, on success, publishes it to the feed.
func (s *PostService) Create(ctx context.Context, title, body string) (models.Post, error) {
	post, err := s.postRepo.Create(ctx, title, body)
	if err != nil {
		return models.Post{}, err
	}
	if s.feed != nil {
		s.feed.Publish(post)
	}
	return post, nil
}
