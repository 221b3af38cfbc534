package server

import (
	"time"

	httpHandler "github.com/erievs/FourthTube/interfaces/http"
	"github.com/erievs/FourthTube/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	homeHandler httpHandler.IHomeHandler,
	channelHandler httpHandler.IChannelHandler,
	subscriptionHandler httpHandler.ISubscriptionHandler,
	feedHandler httpHandler.IFeedHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", homeHandler.Healthz)

	api := router.Group("api")
	api.Use(middleware.Auth())

	api.GET("/home", homeHandler.GetHome)
	api.POST("/home/more", homeHandler.LoadMore)

	api.GET("/channels/:id", channelHandler.GetChannel)
	api.POST("/channels/:id/videos/more", channelHandler.MoreVideos)
	api.GET("/channels/:id/playlists", channelHandler.GetPlaylists)
	api.POST("/channels/:id/community/more", channelHandler.MoreCommunity)

	api.GET("/subscriptions", subscriptionHandler.List)
	api.POST("/subscriptions", subscriptionHandler.Subscribe)
	api.DELETE("/subscriptions/:id", subscriptionHandler.Unsubscribe)
	api.GET("/subscriptions/:id/status", subscriptionHandler.Status)
	api.POST("/subscriptions/import", subscriptionHandler.Import)

	api.GET("/feed", feedHandler.GetFeed)
	api.POST("/feed/refresh", feedHandler.Refresh)
	api.GET("/feed/progress", feedHandler.Progress)

	return router
}
