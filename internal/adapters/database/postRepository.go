package database

import (
	"context"
	"strings"

	"socialfeed/internal/core/post"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper neutralises LIKE wildcards; the queries declare '!' as the
// escape character since MySQL and SQLite disagree on a default.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// PostRepositoryDatabase implements PostRepository on gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) ListRecent(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).
		Preload("Poster").
		Order("date_time DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// SearchText matches term as a case-insensitive substring. Both sides go
// through the same SQL LOWER so they fold identically on every driver.
func (repo *PostRepositoryDatabase) SearchText(ctx context.Context, term string) ([]*post.Post, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	var posts []*post.Post
	if err := repo.db.WithContext(ctx).
		Preload("Poster").
		Where("LOWER(text) LIKE LOWER(?) ESCAPE '!'", pattern).
		Order("date_time DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
