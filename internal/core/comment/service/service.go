package commentapp

import (
	"context"
	"errors"
	"fmt"

	commentEntity "socialfeed/internal/core/comment"
	commentPort "socialfeed/internal/ports/comment"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

var ErrEmptyText = errors.New("comment text must not be empty")

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	logger            *zap.Logger
}

func NewCommentService(repo commentPort.CommentRepository, logger *zap.Logger) *CommentService {
	return &CommentService{
		CommentRepository: repo,
		logger:            logger,
	}
}

// AddComment attaches a comment to postID. When the post does not exist the
// error is a *postPort.PostNotFoundError and nothing is stored.
func (s *CommentService) AddComment(ctx context.Context, text, posterID, postID string) (*commentPort.CommentDTO, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	uid, err := uuid.FromString(posterID)
	if err != nil {
		return nil, fmt.Errorf("invalid posterID: %w", err)
	}

	// a malformed id cannot name a post
	pid, err := uuid.FromString(postID)
	if err != nil {
		return nil, &postPort.PostNotFoundError{ID: postID}
	}

	created, err := s.CommentRepository.CreateForPost(ctx, &commentEntity.Comment{
		Text:     text,
		PosterID: uid,
		PostID:   pid,
	})
	if err != nil {
		if errors.Is(err, postPort.ErrPostNotFound) {
			s.logger.Info("comment on missing post", zap.String("postID", postID), zap.String("posterID", posterID))
			return nil, &postPort.PostNotFoundError{ID: postID}
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created",
		zap.String("commentID", created.ID.String()),
		zap.String("postID", postID),
		zap.String("posterID", posterID),
	)
	return toCommentDTO(created), nil
}

// CommentsForPosts groups the comments of postIDs by post id, oldest first
// within each post.
func (s *CommentService) CommentsForPosts(ctx context.Context, postIDs []string) (map[string][]*commentPort.CommentDTO, error) {
	grouped := make(map[string][]*commentPort.CommentDTO, len(postIDs))
	if len(postIDs) == 0 {
		return grouped, nil
	}

	comments, err := s.CommentRepository.FindByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	for _, c := range comments {
		key := c.PostID.String()
		grouped[key] = append(grouped[key], toCommentDTO(c))
	}
	return grouped, nil
}

func toCommentDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	dto := &commentPort.CommentDTO{
		ID:       c.ID.String(),
		Text:     c.Text,
		PostID:   c.PostID.String(),
		PosterID: c.PosterID.String(),
		DateTime: c.DateTime,
	}
	if c.Poster.ID != uuid.Nil {
		dto.Poster = &userPort.UserDTO{
			ID:       c.Poster.ID.String(),
			Username: c.Poster.Username,
		}
	}
	return dto
}
