package comment

import (
	"context"
	"time"

	"socialfeed/internal/core/comment"
	userPort "socialfeed/internal/ports/user"
)

// CommentRepository is the storage port for comments.
type CommentRepository interface {
	// CreateForPost inserts c only if c.PostID names an existing post, in a
	// single transaction. A missing post yields an error matching
	// post.ErrPostNotFound and nothing is written.
	CreateForPost(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	// FindByPostIDs returns the comments of the given posts, oldest first.
	FindByPostIDs(ctx context.Context, postIDs []string) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	PostID   string            `json:"post_id"`
	PosterID string            `json:"poster_id"`
	Poster   *userPort.UserDTO `json:"poster,omitempty"`
	DateTime time.Time         `json:"date_time"`
}
