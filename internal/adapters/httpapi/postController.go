package httpapi

import (
	"errors"
	"net/http"

	"socialfeed/internal/adapters/httpapi/middleware"
	photoPort "socialfeed/internal/ports/photo"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostController struct {
	pc     PostUseCase
	photos photoPort.PhotoStorage
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, photos photoPort.PhotoStorage, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, photos: photos, logger: logger}
}

func (ctl *PostController) AddPost(c *gin.Context) {
	if err := CheckPostRequest(c.Request, "text"); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	userID, _ := middleware.CurrentUserID(c)
	ctx := c.Request.Context()

	photo, err := ctl.savePhoto(c)
	if err != nil {
		if errors.Is(err, photoPort.ErrNotAnImage) || errors.Is(err, photoPort.ErrPhotoTooLarge) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		ctl.logger.Error("could not store photo", zap.String("userID", userID), zap.Error(err))
		c.String(http.StatusInternalServerError, "could not store photo")
		return
	}

	if _, err := ctl.pc.CreatePost(ctx, c.PostForm("text"), userID, photo); err != nil {
		ctl.logger.Error("could not create post", zap.String("userID", userID), zap.Error(err))
		if photo != "" {
			if derr := ctl.photos.Delete(ctx, photo); derr != nil {
				ctl.logger.Warn("could not remove orphaned photo", zap.String("photo", photo), zap.Error(derr))
			}
		}
		c.String(http.StatusInternalServerError, "could not create post")
		return
	}

	c.Redirect(http.StatusFound, homePath)
}

// savePhoto stores the optional "photo" upload and returns its name, or ""
// when the request carries no file.
func (ctl *PostController) savePhoto(c *gin.Context) (string, error) {
	fh, err := c.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if fh.Size == 0 {
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return ctl.photos.Save(c.Request.Context(), f)
}
