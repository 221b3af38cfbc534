package http

import (
	"net/http"

	"github.com/erievs/FourthTube/usecase"

	"github.com/gin-gonic/gin"
)

type IHomeHandler interface {
	GetHome(c *gin.Context)
	LoadMore(c *gin.Context)
	Healthz(c *gin.Context)
}

type HomeHandler struct {
	HomeUsecase usecase.IHomeUsecase
}

func NewHomeHandler(homeUsecase usecase.IHomeUsecase) IHomeHandler {
	return &HomeHandler{HomeUsecase: homeUsecase}
}

func (h *HomeHandler) GetHome(c *gin.Context) {
	refresh := c.Query("refresh") == "true"
	feed := h.HomeUsecase.Home(c.Request.Context(), refresh)
	status := http.StatusOK
	if feed.Error != "" && len(feed.Videos) == 0 {
		status = http.StatusBadGateway
	}
	c.JSON(status, feed)
}

func (h *HomeHandler) LoadMore(c *gin.Context) {
	feed := h.HomeUsecase.LoadMore(c.Request.Context())
	c.JSON(http.StatusOK, feed)
}

// Healthz returns OK for health checks
func (h *HomeHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
