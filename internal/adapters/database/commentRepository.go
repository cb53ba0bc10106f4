package database

import (
	"context"

	"socialfeed/internal/core/comment"
	"socialfeed/internal/core/post"
	postPort "socialfeed/internal/ports/post"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepositoryDatabase implements CommentRepository on gorm.
type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (repo *CommentRepositoryDatabase) CreateForPost(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&post.Post{}).Where("id = ?", c.PostID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return postPort.ErrPostNotFound
		}
		return tx.Omit(clause.Associations).Create(c).Error
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindByPostIDs(ctx context.Context, postIDs []string) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	if len(postIDs) == 0 {
		return comments, nil
	}
	if err := repo.db.WithContext(ctx).
		Preload("Poster").
		Where("post_id IN ?", postIDs).
		Order("date_time ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
