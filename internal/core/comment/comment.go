package comment

import (
	"time"

	"socialfeed/internal/core/post"
	"socialfeed/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        uuid.UUID `gorm:"primaryKey;type:char(36)"`
	Text      string    `gorm:"type:text;not null"`
	PosterID  uuid.UUID `gorm:"type:char(36);not null"`
	Poster    user.User `gorm:"foreignKey:PosterID"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Post      post.Post `gorm:"foreignKey:PostID"`
	DateTime  time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
