// Package testsupport builds the real backing stores used by package tests:
// a migrated SQLite database in a temporary directory and an in-process
// Redis.
package testsupport

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"socialfeed/internal/adapters/database"
	"socialfeed/internal/core/post"
	"socialfeed/internal/core/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens a fresh, migrated SQLite database that is removed when the
// test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "feed.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	return db
}

// NewRedis starts a miniredis server and returns it with a client bound to
// it. Both are shut down when the test ends.
func NewRedis(t testing.TB) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

// CreateUser inserts a user whose password is hashed at bcrypt.MinCost.
func CreateUser(t testing.TB, db *gorm.DB, username, password string) *user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	u := &user.User{Username: username, Password: string(hash)}
	if err := db.WithContext(context.Background()).Create(u).Error; err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return u
}

// CreatePost inserts a post for poster, stamped by gorm.
func CreatePost(t testing.TB, db *gorm.DB, poster *user.User, text string) *post.Post {
	t.Helper()
	return CreatePostAt(t, db, poster, text, time.Time{})
}

// CreatePostAt inserts a post with a fixed date_time; a zero at lets gorm
// stamp it.
func CreatePostAt(t testing.TB, db *gorm.DB, poster *user.User, text string, at time.Time) *post.Post {
	t.Helper()

	p := &post.Post{Text: text, PosterID: poster.ID, DateTime: at}
	if err := db.Omit("Poster").Create(p).Error; err != nil {
		t.Fatalf("creating post %q: %v", text, err)
	}
	return p
}
