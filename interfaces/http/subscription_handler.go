package http

import (
	"net/http"

	"github.com/erievs/FourthTube/domain/dto"
	"github.com/erievs/FourthTube/domain/model"
	"github.com/erievs/FourthTube/usecase"

	"github.com/gin-gonic/gin"
)

type ISubscriptionHandler interface {
	List(c *gin.Context)
	Subscribe(c *gin.Context)
	Unsubscribe(c *gin.Context)
	Status(c *gin.Context)
	Import(c *gin.Context)
}

type SubscriptionHandler struct {
	SubscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{SubscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	var (
		channels []model.ChannelSummary
		err      error
	)
	if c.Query("all") == "true" {
		channels, err = h.SubscriptionUsecase.ListAll(c.Request.Context())
	} else {
		channels, err = h.SubscriptionUsecase.List(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": channels})
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	channel := model.ChannelSummary{
		ID:                  req.ID,
		URL:                 req.URL,
		Name:                req.Name,
		IconURL:             req.IconURL,
		SubscriberCountText: req.SubscriberCountText,
	}
	if err := h.SubscriptionUsecase.Subscribe(c.Request.Context(), channel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": channel.ID})
}

func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	channelID := c.Param("id")
	if err := h.SubscriptionUsecase.Unsubscribe(c.Request.Context(), channelID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unsubscribed": channelID})
}

func (h *SubscriptionHandler) Status(c *gin.Context) {
	channelID := c.Param("id")
	subscribed, err := h.SubscriptionUsecase.IsSubscribed(c.Request.Context(), channelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": channelID, "subscribed": subscribed})
}

func (h *SubscriptionHandler) Import(c *gin.Context) {
	stored, err := h.SubscriptionUsecase.Import(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": stored})
}
