package httpapi

import (
	"net/http"

	"socialfeed/internal/adapters/httpapi/middleware"
	postPort "socialfeed/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HomeController struct {
	uc     UserUseCase
	pc     PostUseCase
	cc     CommentUseCase
	logger *zap.Logger
}

func NewHomeController(uc UserUseCase, pc PostUseCase, cc CommentUseCase, logger *zap.Logger) *HomeController {
	return &HomeController{uc: uc, pc: pc, cc: cc, logger: logger}
}

// Home renders the feed. GET lists every post, POST filters by search_terms;
// any other method gets an empty feed.
func (ctl *HomeController) Home(c *gin.Context) {
	ctx := c.Request.Context()
	posts := []*postPort.PostDTO{}
	var searchTerms string
	var err error

	switch c.Request.Method {
	case http.MethodGet:
		posts, err = ctl.pc.ListPosts(ctx)
	case http.MethodPost:
		if verr := CheckPostRequest(c.Request, "search_terms"); verr != nil {
			c.String(http.StatusBadRequest, verr.Error())
			return
		}
		searchTerms = c.PostForm("search_terms")
		posts, err = ctl.pc.SearchPosts(ctx, searchTerms)
	}
	if err != nil {
		ctl.logger.Error("could not load feed", zap.Error(err))
		c.String(http.StatusInternalServerError, "could not load posts")
		return
	}

	if err := ctl.attachComments(c, posts); err != nil {
		ctl.logger.Error("could not load comments", zap.Error(err))
		c.String(http.StatusInternalServerError, "could not load comments")
		return
	}

	data := gin.H{
		"Title":       "Home",
		"Posts":       posts,
		"SearchTerms": searchTerms,
	}
	if userID, ok := middleware.CurrentUserID(c); ok {
		if u, err := ctl.uc.GetUser(ctx, userID); err == nil {
			data["User"] = u
		} else {
			ctl.logger.Warn("could not load current user", zap.String("userID", userID), zap.Error(err))
		}
	}
	c.HTML(http.StatusOK, "home.html", data)
}

func (ctl *HomeController) attachComments(c *gin.Context, posts []*postPort.PostDTO) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	byPost, err := ctl.cc.CommentsForPosts(c.Request.Context(), ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		p.Comments = byPost[p.ID]
	}
	return nil
}
