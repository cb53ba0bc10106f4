package httpapi

import (
	"errors"
	"net/http"

	"socialfeed/internal/adapters/httpapi/middleware"
	userPort "socialfeed/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const invalidCredentialsMessage = "The combination of username and password does not exist."

type UserController struct {
	uc           UserUseCase
	sc           SessionUseCase
	cookieSecure bool
	logger       *zap.Logger
}

func NewUserController(uc UserUseCase, sc SessionUseCase, cookieSecure bool, logger *zap.Logger) *UserController {
	return &UserController{uc: uc, sc: sc, cookieSecure: cookieSecure, logger: logger}
}

func (ctl *UserController) Login(c *gin.Context) {
	if err := CheckPostRequest(c.Request, "username", "password"); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	u, err := ctl.uc.Authenticate(c.Request.Context(), c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, userPort.ErrInvalidCredentials) {
			c.String(http.StatusBadRequest, invalidCredentialsMessage)
			return
		}
		ctl.logger.Error("login failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "could not log in")
		return
	}

	token, err := ctl.sc.Start(c.Request.Context(), u.ID)
	if err != nil {
		ctl.logger.Error("could not start session", zap.String("userID", u.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "could not log in")
		return
	}

	middleware.SetSessionCookie(c, token.Value, token.ExpiresAt, ctl.cookieSecure)
	c.Redirect(http.StatusFound, homePath)
}

func (ctl *UserController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := ctl.sc.End(c.Request.Context(), token); err != nil {
			ctl.logger.Error("could not end session", zap.Error(err))
		}
	}
	middleware.ClearSessionCookie(c, ctl.cookieSecure)
	c.Redirect(http.StatusFound, indexPath)
}
