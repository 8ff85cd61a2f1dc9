package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yihao03/Aistronaut/config"
	"github.com/yihao03/Aistronaut/database"
	conversationRepoPkg "github.com/yihao03/Aistronaut/database/repository/conversation"
	userRepoPkg "github.com/yihao03/Aistronaut/database/repository/user"
	"github.com/yihao03/Aistronaut/handlers"
	"github.com/yihao03/Aistronaut/middleware"
	"github.com/yihao03/Aistronaut/routes"
	"github.com/yihao03/Aistronaut/services/assistant"
	"github.com/yihao03/Aistronaut/services/catalog"
	"github.com/yihao03/Aistronaut/services/chat"
	"github.com/yihao03/Aistronaut/services/notification"
	"github.com/yihao03/Aistronaut/services/user"
	"github.com/yihao03/Aistronaut/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	convRepo := conversationRepoPkg.NewMongoConversationRepo()

	// services.
	userService := user.NewUserService(userRepo)

	gateway := assistant.NewHTTPClient()
	sessions := chat.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute)
	notifier := notification.NewFCMService(userRepo, utils.GetMessagingClient())

	chatService := chat.NewChatService(
		convRepo,
		gateway,
		sessions,
		catalog.RandomEstimator{},
		notifier,
	)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(userRepo, userService, chatService)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
