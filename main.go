package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stevenhalase/vetrant-api/config"
	"github.com/stevenhalase/vetrant-api/database"
	"github.com/stevenhalase/vetrant-api/giphy"
	"github.com/stevenhalase/vetrant-api/handlers"
	"github.com/stevenhalase/vetrant-api/logger"
	"github.com/stevenhalase/vetrant-api/repositories"
	"github.com/stevenhalase/vetrant-api/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	logger.InitLogger(cfg.LogFile)

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("connected to database")

	imageRepo := repositories.NewImageRepository(db)
	userRepo := repositories.NewUserRepository(db, imageRepo)
	reactionRepo := repositories.NewReactionRepository(db)
	commentRepo := repositories.NewCommentRepository(db, userRepo, imageRepo, reactionRepo)
	postRepo := repositories.NewPostRepository(db, userRepo, imageRepo, commentRepo, reactionRepo)
	channelRepo := repositories.NewChannelRepository(db)

	userHandler := handlers.NewUserHandler(userRepo, imageRepo)
	postHandler := handlers.NewPostHandler(postRepo, commentRepo, reactionRepo, imageRepo)
	channelHandler := handlers.NewChannelHandler(channelRepo)
	giphyHandler := handlers.NewGiphyHandler(giphy.NewClient(cfg.GiphyURL))

	router := routes.SetupRoutes(userHandler, postHandler, channelHandler, giphyHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown failed")
	}
	if err := db.Close(shutdownCtx); err != nil {
		logrus.WithError(err).Error("database disconnect failed")
	}
	logrus.Info("server stopped")
}
