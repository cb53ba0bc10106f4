package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"socialfeed/internal/core/post"
	commentPort "socialfeed/internal/ports/comment"
	userPort "socialfeed/internal/ports/user"
)

var ErrPostNotFound = errors.New("post not found")

// PostNotFoundError names the id that failed to resolve. It matches
// ErrPostNotFound with errors.Is.
type PostNotFoundError struct {
	ID string
}

func (err *PostNotFoundError) Error() string {
	return fmt.Sprintf("post with id %q does not exist", err.ID)
}

func (err *PostNotFoundError) Is(target error) bool {
	return target == ErrPostNotFound
}

// PostRepository is the storage port for posts. List and search results come
// back most recent first.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	ListRecent(ctx context.Context) ([]*post.Post, error)
	SearchText(ctx context.Context, term string) ([]*post.Post, error)
}

type PostDTO struct {
	ID       string                    `json:"id"`
	Text     string                    `json:"text"`
	Photo    string                    `json:"photo,omitempty"`
	PosterID string                    `json:"poster_id"`
	Poster   *userPort.UserDTO         `json:"poster,omitempty"`
	DateTime time.Time                 `json:"date_time"`
	Comments []*commentPort.CommentDTO `json:"comments,omitempty"`
}
