package httpapi

import (
	"context"
	"net/http"

	"socialfeed/internal/adapters/httpapi/middleware"
	commentPort "socialfeed/internal/ports/comment"
	photoPort "socialfeed/internal/ports/photo"
	postPort "socialfeed/internal/ports/post"
	sessionPort "socialfeed/internal/ports/session"
	userPort "socialfeed/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	indexPath = "/"
	homePath  = "/home/"
)

// UserUseCase is the inbound port the login and feed pages need.
type UserUseCase interface {
	Authenticate(ctx context.Context, username, password string) (*userPort.UserDTO, error)
	GetUser(ctx context.Context, id string) (*userPort.UserDTO, error)
}

type SessionUseCase interface {
	Start(ctx context.Context, userID string) (*sessionPort.Token, error)
	Resolve(ctx context.Context, token string) (string, error)
	End(ctx context.Context, token string) error
}

type PostUseCase interface {
	CreatePost(ctx context.Context, text, posterID, photo string) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	SearchPosts(ctx context.Context, term string) ([]*postPort.PostDTO, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, text, posterID, postID string) (*commentPort.CommentDTO, error)
	CommentsForPosts(ctx context.Context, postIDs []string) (map[string][]*commentPort.CommentDTO, error)
}

// Options carries the deployment settings the routes depend on.
type Options struct {
	MediaRoot      string
	MaxUploadBytes int64
	CookieSecure   bool
	Logger         *zap.Logger
}

// SetupRoutes builds the route table. Use cases are injected from main.
func SetupRoutes(
	userUC UserUseCase,
	sessionUC SessionUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	photos photoPort.PhotoStorage,
	opts Options,
) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		middleware.SessionAuth(sessionUC, opts.CookieSecure, logger),
	)
	r.SetHTMLTemplate(loadTemplates())

	ic := NewIndexController()
	uc := NewUserController(userUC, sessionUC, opts.CookieSecure, logger)
	hc := NewHomeController(userUC, postUC, commentUC, logger)
	pc := NewPostController(postUC, photos, logger)
	cc := NewCommentController(commentUC, logger)

	// login and the landing page are open to anonymous users
	r.Any(indexPath, ic.Index)
	r.Any("/login/", uc.Login)
	r.Any("/logout/", uc.Logout)

	authed := r.Group("/", middleware.RequireAuth(indexPath))
	authed.Any("home/", hc.Home)
	authed.Any("post/add/", limitBody(opts.MaxUploadBytes), pc.AddPost)
	authed.Any("comment/add/", cc.AddComment)

	if opts.MediaRoot != "" {
		r.Static("/media", opts.MediaRoot)
	}
	return r
}

// limitBody caps the request body; the slack covers the multipart framing
// and the text fields around the photo.
func limitBody(maxUpload int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxUpload > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUpload+1<<20)
		}
		c.Next()
	}
}
