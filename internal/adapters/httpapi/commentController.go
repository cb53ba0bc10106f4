package httpapi

import (
	"errors"
	"net/http"

	"socialfeed/internal/adapters/httpapi/middleware"
	postPort "socialfeed/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentController struct {
	cc     CommentUseCase
	logger *zap.Logger
}

func NewCommentController(cc CommentUseCase, logger *zap.Logger) *CommentController {
	return &CommentController{cc: cc, logger: logger}
}

func (ctl *CommentController) AddComment(c *gin.Context) {
	if err := CheckPostRequest(c.Request, "comment", "post_id"); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	userID, _ := middleware.CurrentUserID(c)

	_, err := ctl.cc.AddComment(c.Request.Context(), c.PostForm("comment"), userID, c.PostForm("post_id"))
	if err != nil {
		var notFound *postPort.PostNotFoundError
		if errors.As(err, &notFound) {
			c.String(http.StatusBadRequest, notFound.Error())
			return
		}
		ctl.logger.Error("could not create comment", zap.String("userID", userID), zap.Error(err))
		c.String(http.StatusInternalServerError, "could not create comment")
		return
	}

	c.Redirect(http.StatusFound, homePath)
}
