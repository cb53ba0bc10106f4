package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type IndexController struct{}

func NewIndexController() *IndexController { return &IndexController{} }

func (ctl *IndexController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Social"})
}
