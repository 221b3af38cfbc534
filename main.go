package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erievs/FourthTube/domain/repository"
	"github.com/erievs/FourthTube/infrastructure/cache"
	"github.com/erievs/FourthTube/infrastructure/configuration"
	"github.com/erievs/FourthTube/infrastructure/innertube"
	"github.com/erievs/FourthTube/infrastructure/logger"
	"github.com/erievs/FourthTube/infrastructure/oauth"
	"github.com/erievs/FourthTube/infrastructure/persistence"
	httpHandler "github.com/erievs/FourthTube/interfaces/http"
	"github.com/erievs/FourthTube/server"
	"github.com/erievs/FourthTube/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	configuration.LoadEnvFromFile("config.env", ".env")
	app := configuration.C.App

	psqlDb, err := persistence.NewPsqlDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Database initialization failed")
		os.Exit(1)
	}
	if err := persistence.EnsureSubscriptionSchema(psqlDb); err != nil {
		logger.GetLogger().WithField("error", err).Error("failed ensuring subscription schema")
		os.Exit(1)
	}
	logger.GetLogger().WithField("PSQLDb", psqlDb.Ping()).Info("Database connected.")

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().Warn("Redis not available - continuing without feed caching")
		redisClient = nil
	} else {
		logger.GetLogger().Info("Redis client initialized successfully.")
	}
	feedCache := cache.NewFeedCache(redisClient)

	authState := oauth.New(oauth.Config{
		ClientID:     configuration.C.OAuth.ClientID,
		ClientSecret: configuration.C.OAuth.ClientSecret,
		AccessToken:  configuration.C.OAuth.AccessToken,
		RefreshToken: configuration.C.OAuth.RefreshToken,
		TokenURL:     configuration.C.OAuth.TokenURL,
	})
	logger.GetLogger().WithField("authenticated", authState.IsAuthenticated()).Info("Upstream auth state loaded")

	var innertubeClient repository.IInnertube = innertube.New(innertube.Config{
		APIBase:       configuration.C.Innertube.APIBase,
		Language:      configuration.C.Innertube.Language,
		Region:        configuration.C.Innertube.Region,
		UserAgent:     configuration.C.Innertube.UserAgent,
		MaxConcurrent: configuration.C.Feed.MaxConcurrentFetches,
	}, nil, authState)

	subscriptionRepository := persistence.NewSubscriptionRepository(psqlDb)

	cutoffUnit := usecase.RecencyUnitIndex(configuration.C.Feed.CutoffUnit)
	if cutoffUnit < 0 {
		logger.GetLogger().WithField("unit", configuration.C.Feed.CutoffUnit).Warn("unknown feed cutoff unit, using month")
		cutoffUnit = usecase.RecencyUnitIndex("month")
	}

	homeUsecase := usecase.NewHomeUsecase(innertubeClient, feedCache,
		time.Duration(configuration.C.Feed.CacheTTLSeconds)*time.Second)
	channelUsecase := usecase.NewChannelUsecase(innertubeClient)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, innertubeClient)
	feedUsecase := usecase.NewFeedUsecase(innertubeClient, subscriptionRepository, usecase.FeedConfig{
		ContentLanguage: configuration.C.Innertube.ContentLanguage,
		Cutoff:          usecase.RecencyKey{Unit: cutoffUnit, Magnitude: configuration.C.Feed.CutoffMagnitude},
	})

	router := server.InitiateRouter(
		httpHandler.NewHomeHandler(homeUsecase),
		httpHandler.NewChannelHandler(channelUsecase),
		httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		httpHandler.NewFeedHandler(feedUsecase),
	)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-interrupt:
			logger.GetLogger().Info("Shutdown signal received")
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if httpServer != nil {
			_ = httpServer.Shutdown(shutdownCtx)
		}
		_ = psqlDb.Close()
		if redisClient != nil {
			_ = redisClient.Close()
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application stopped with error")
	}
}
