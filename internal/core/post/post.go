package post

import (
	"time"

	"socialfeed/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// Post is a feed entry. DateTime is refreshed by gorm on every save and is
// the column the feed is ordered by; CreatedAt never moves.
type Post struct {
	ID        uuid.UUID `gorm:"primaryKey;type:char(36)"`
	Text      string    `gorm:"type:text;not null"`
	PosterID  uuid.UUID `gorm:"type:char(36);not null;index"`
	Poster    user.User `gorm:"foreignKey:PosterID"`
	DateTime  time.Time `gorm:"autoUpdateTime;index"`
	Photo     string    `gorm:"type:varchar(255)"` // file name under the media root, empty when absent
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
