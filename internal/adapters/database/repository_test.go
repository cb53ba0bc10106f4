package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"socialfeed/internal/adapters/database"
	"socialfeed/internal/core/comment"
	"socialfeed/internal/core/post"
	userEntity "socialfeed/internal/core/user"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"
	"socialfeed/internal/testsupport"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

func commentCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&comment.Comment{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	return count
}

func TestPostRepositoryListRecent(t *testing.T) {
	db := testsupport.NewDB(t)
	adam := testsupport.CreateUser(t, db, "adam", "secret")
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	testsupport.CreatePostAt(t, db, adam, "middle", base.Add(time.Minute))
	testsupport.CreatePostAt(t, db, adam, "oldest", base)
	testsupport.CreatePostAt(t, db, adam, "newest", base.Add(time.Hour))

	repo := database.NewPostRepositoryDatabase(db)
	posts, err := repo.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("Unexpected err: %v", err)
	}

	wanted := []string{"newest", "middle", "oldest"}
	if len(posts) != len(wanted) {
		t.Fatalf("wanted %d posts; found %d", len(wanted), len(posts))
	}
	for i, p := range posts {
		if p.Text != wanted[i] {
			t.Fatalf("index %d: wanted `%s`; found `%s`", i, wanted[i], p.Text)
		}
		if p.Poster.Username != "adam" {
			t.Fatalf("index %d: poster not preloaded: %+v", i, p.Poster)
		}
	}
}

func TestPostRepositoryCreateStampsDateTime(t *testing.T) {
	db := testsupport.NewDB(t)
	adam := testsupport.CreateUser(t, db, "adam", "secret")

	before := time.Now().Add(-time.Second)
	p := testsupport.CreatePost(t, db, adam, "hello")
	if p.DateTime.Before(before) {
		t.Fatalf("wanted date_time stamped on create; found %v", p.DateTime)
	}
	if p.ID == uuid.Nil {
		t.Fatal("wanted id assigned on create")
	}

	var found post.Post
	if err := db.Preload("Poster").First(&found, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("Unexpected err: %v", err)
	}
	if found.Text != "hello" || found.PosterID != adam.ID || found.Poster.Username != "adam" {
		t.Fatalf("unexpected post: %+v", found)
	}
}

func TestPostRepositorySearchText(t *testing.T) {
	db := testsupport.NewDB(t)
	adam := testsupport.CreateUser(t, db, "adam", "secret")
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, text := range []string{
		"hello",
		"HELLO there",
		"goodbye",
		"100% sure",
		"100 percent",
		"snake_case",
		"snakeXcase",
		"École ouverte",
	} {
		testsupport.CreatePostAt(t, db, adam, text, base.Add(time.Duration(i)*time.Minute))
	}
	repo := database.NewPostRepositoryDatabase(db)

	for _, testCase := range []struct {
		name   string
		term   string
		wanted []string
	}{
		{name: "case insensitive substring", term: "ell", wanted: []string{"HELLO there", "hello"}},
		{name: "upper case term", term: "HeLLo", wanted: []string{"HELLO there", "hello"}},
		{name: "percent is literal", term: "0%", wanted: []string{"100% sure"}},
		{name: "underscore is literal", term: "e_c", wanted: []string{"snake_case"}},
		{name: "non-ascii term from the text", term: "École", wanted: []string{"École ouverte"}},
		{name: "non-ascii upper case term", term: "ÉCOLE", wanted: []string{"École ouverte"}},
		{name: "escape char is literal", term: "!", wanted: nil},
		{name: "no match", term: "zzz", wanted: nil},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			posts, err := repo.SearchText(context.Background(), testCase.term)
			if err != nil {
				t.Fatalf("Unexpected err: %v", err)
			}
			if len(posts) != len(testCase.wanted) {
				found := make([]string, 0, len(posts))
				for _, p := range posts {
					found = append(found, p.Text)
				}
				t.Fatalf("wanted %v; found %v", testCase.wanted, found)
			}
			for i, p := range posts {
				if p.Text != testCase.wanted[i] {
					t.Fatalf("index %d: wanted `%s`; found `%s`", i, testCase.wanted[i], p.Text)
				}
			}
		})
	}
}

func TestCommentRepositoryCreateForPost(t *testing.T) {
	db := testsupport.NewDB(t)
	adam := testsupport.CreateUser(t, db, "adam", "secret")
	p := testsupport.CreatePost(t, db, adam, "hello")
	repo := database.NewCommentRepositoryDatabase(db)
	ctx := context.Background()

	c, err := repo.CreateForPost(ctx, &comment.Comment{Text: "nice", PosterID: adam.ID, PostID: p.ID})
	if err != nil {
		t.Fatalf("Unexpected err: %v", err)
	}
	if c.ID == uuid.Nil || c.DateTime.IsZero() {
		t.Fatalf("wanted id and date_time set; found %+v", c)
	}

	if count := commentCount(t, db); count != 1 {
		t.Fatalf("wanted 1 comment; found %d", count)
	}
}

func TestCommentRepositoryCreateForMissingPost(t *testing.T) {
	db := testsupport.NewDB(t)
	adam := testsupport.CreateUser(t, db, "adam", "secret")
	testsupport.CreatePost(t, db, adam, "hello")
	repo := database.NewCommentRepositoryDatabase(db)
	ctx := context.Background()

	before := commentCount(t, db)

	_, err := repo.CreateForPost(ctx, &comment.Comment{
		Text:     "nice",
		PosterID: adam.ID,
		PostID:   uuid.Must(uuid.NewV4()),
	})
	if !errors.Is(err, postPort.ErrPostNotFound) {
		t.Fatalf("wanted ErrPostNotFound; found %v", err)
	}

	if after := commentCount(t, db); before != after {
		t.Fatalf("wanted comment count unchanged at %d; found %d", before, after)
	}
}

func TestCommentRepositoryFindByPostIDs(t *testing.T) {
	db := testsupport.NewDB(t)
	adam := testsupport.CreateUser(t, db, "adam", "secret")
	bea := testsupport.CreateUser(t, db, "bea", "secret")
	first := testsupport.CreatePost(t, db, adam, "first")
	second := testsupport.CreatePost(t, db, adam, "second")
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for _, c := range []*comment.Comment{
		{Text: "later", PosterID: bea.ID, PostID: first.ID, DateTime: base.Add(time.Minute)},
		{Text: "earlier", PosterID: adam.ID, PostID: first.ID, DateTime: base},
		{Text: "elsewhere", PosterID: bea.ID, PostID: second.ID, DateTime: base},
	} {
		if err := db.Omit("Poster", "Post").Create(c).Error; err != nil {
			t.Fatalf("creating comment: %v", err)
		}
	}

	repo := database.NewCommentRepositoryDatabase(db)
	comments, err := repo.FindByPostIDs(context.Background(), []string{first.ID.String()})
	if err != nil {
		t.Fatalf("Unexpected err: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("wanted 2 comments; found %d", len(comments))
	}
	if comments[0].Text != "earlier" || comments[1].Text != "later" {
		t.Fatalf("wanted oldest first; found %s, %s", comments[0].Text, comments[1].Text)
	}
	if comments[1].Poster.Username != "bea" {
		t.Fatalf("poster not preloaded: %+v", comments[1].Poster)
	}

	none, err := repo.FindByPostIDs(context.Background(), nil)
	if err != nil || len(none) != 0 {
		t.Fatalf("wanted no comments; found %v, %v", none, err)
	}
}

func TestUserRepository(t *testing.T) {
	db := testsupport.NewDB(t)
	adam := testsupport.CreateUser(t, db, "adam", "secret")
	repo := database.NewUserRepositoryDatabase(db)
	ctx := context.Background()

	found, err := repo.FindByUsername(ctx, "adam")
	if err != nil {
		t.Fatalf("Unexpected err: %v", err)
	}
	if found.ID != adam.ID {
		t.Fatalf("wanted %s; found %s", adam.ID, found.ID)
	}

	byID, err := repo.FindByID(ctx, adam.ID.String())
	if err != nil {
		t.Fatalf("Unexpected err: %v", err)
	}
	if byID.Username != "adam" {
		t.Fatalf("wanted adam; found %s", byID.Username)
	}

	if _, err := repo.FindByUsername(ctx, "eve"); !errors.Is(err, userPort.ErrUserNotFound) {
		t.Fatalf("wanted ErrUserNotFound; found %v", err)
	}
	if _, err := repo.FindByID(ctx, uuid.Must(uuid.NewV4()).String()); !errors.Is(err, userPort.ErrUserNotFound) {
		t.Fatalf("wanted ErrUserNotFound; found %v", err)
	}

	// usernames are unique
	if _, err := repo.Create(ctx, &userEntity.User{Username: "adam", Password: "x"}); err == nil {
		t.Fatal("wanted error creating duplicate username; found nil")
	}
}
