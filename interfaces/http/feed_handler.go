package http

import (
	"net/http"

	"github.com/erievs/FourthTube/usecase"

	"github.com/gin-gonic/gin"
)

type IFeedHandler interface {
	GetFeed(c *gin.Context)
	Refresh(c *gin.Context)
	Progress(c *gin.Context)
}

type FeedHandler struct {
	FeedUsecase usecase.IFeedUsecase
}

func NewFeedHandler(feedUsecase usecase.IFeedUsecase) IFeedHandler {
	return &FeedHandler{FeedUsecase: feedUsecase}
}

func (h *FeedHandler) GetFeed(c *gin.Context) {
	c.JSON(http.StatusOK, h.FeedUsecase.Feed(c.Request.Context()))
}

// Refresh blocks until the rebuild finishes. Progress is available on the
// progress endpoint while this runs.
func (h *FeedHandler) Refresh(c *gin.Context) {
	res := h.FeedUsecase.RefreshFeed(c.Request.Context())
	status := http.StatusOK
	if res.Error != "" && len(res.Videos) == 0 {
		status = http.StatusBadGateway
	}
	c.JSON(status, res)
}

func (h *FeedHandler) Progress(c *gin.Context) {
	c.JSON(http.StatusOK, h.FeedUsecase.Progress())
}
