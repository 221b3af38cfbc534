package http

import (
	"errors"
	"net/http"

	"github.com/erievs/FourthTube/usecase"

	"github.com/gin-gonic/gin"
)

type IChannelHandler interface {
	GetChannel(c *gin.Context)
	MoreVideos(c *gin.Context)
	GetPlaylists(c *gin.Context)
	MoreCommunity(c *gin.Context)
}

type ChannelHandler struct {
	ChannelUsecase usecase.IChannelUsecase
}

func NewChannelHandler(channelUsecase usecase.IChannelUsecase) IChannelHandler {
	return &ChannelHandler{ChannelUsecase: channelUsecase}
}

func (h *ChannelHandler) GetChannel(c *gin.Context) {
	channelID := c.Param("id")
	refresh := c.Query("refresh") == "true"
	detail := h.ChannelUsecase.Channel(c.Request.Context(), channelID, refresh)
	status := http.StatusOK
	if detail.Error != "" && detail.ID == "" {
		status = http.StatusBadGateway
	}
	c.JSON(status, detail)
}

func (h *ChannelHandler) MoreVideos(c *gin.Context) {
	detail, err := h.ChannelUsecase.MoreVideos(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForLoadMoreError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ChannelHandler) GetPlaylists(c *gin.Context) {
	detail, err := h.ChannelUsecase.Playlists(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForLoadMoreError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ChannelHandler) MoreCommunity(c *gin.Context) {
	detail, err := h.ChannelUsecase.MoreCommunity(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForLoadMoreError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// statusForLoadMoreError distinguishes caller mistakes (load-more before load,
// overlapping loads) from upstream failures.
func statusForLoadMoreError(err error) int {
	if errors.Is(err, usecase.ErrChannelNotLoaded) || errors.Is(err, usecase.ErrLoadInProgress) {
		return http.StatusConflict
	}
	return http.StatusBadGateway
}
