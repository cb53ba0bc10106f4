package postapp

import (
	"context"
	"errors"
	"fmt"

	postEntity "socialfeed/internal/core/post"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

var ErrEmptyText = errors.New("post text must not be empty")

type PostService struct {
	PostRepository postPort.PostRepository
	logger         *zap.Logger
}

func NewPostService(postRepo postPort.PostRepository, logger *zap.Logger) *PostService {
	return &PostService{
		PostRepository: postRepo,
		logger:         logger,
	}
}

// CreatePost stores a new post for posterID. photo is the stored attachment
// name, empty for a text-only post.
func (s *PostService) CreatePost(ctx context.Context, text, posterID, photo string) (*postPort.PostDTO, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	uid, err := uuid.FromString(posterID)
	if err != nil {
		return nil, fmt.Errorf("invalid posterID: %w", err)
	}

	created, err := s.PostRepository.Create(ctx, &postEntity.Post{
		Text:     text,
		PosterID: uid,
		Photo:    photo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		zap.String("postID", created.ID.String()),
		zap.String("posterID", posterID),
		zap.Bool("photo", photo != ""),
	)
	return toPostDTO(created), nil
}

// ListPosts returns every post, most recent first.
func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.ListRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return toPostDTOs(posts), nil
}

// SearchPosts returns the posts whose text contains term, ignoring case.
func (s *PostService) SearchPosts(ctx context.Context, term string) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.SearchText(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	s.logger.Debug("post search", zap.String("term", term), zap.Int("matches", len(posts)))
	return toPostDTOs(posts), nil
}

func toPostDTOs(posts []*postEntity.Post) []*postPort.PostDTO {
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toPostDTO(p))
	}
	return dtos
}

func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:       p.ID.String(),
		Text:     p.Text,
		Photo:    p.Photo,
		PosterID: p.PosterID.String(),
		DateTime: p.DateTime,
	}
	// Poster is only populated when the repository preloaded it.
	if p.Poster.ID != uuid.Nil {
		dto.Poster = &userPort.UserDTO{
			ID:       p.Poster.ID.String(),
			Username: p.Poster.Username,
		}
	}
	return dto
}
