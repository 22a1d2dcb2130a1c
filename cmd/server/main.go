package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ryanguest/HEDAP/internal/describe"
	"github.com/ryanguest/HEDAP/internal/infrastructure/database"
	"github.com/ryanguest/HEDAP/internal/infrastructure/persistence"
	"github.com/ryanguest/HEDAP/internal/interfaces/middleware"
	"github.com/ryanguest/HEDAP/internal/interfaces/rest"
	"github.com/ryanguest/HEDAP/pkg/constants"
	"github.com/ryanguest/HEDAP/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	db, err := database.GetInstance()
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("✅ Database connection established")

	mode := describe.StaticMode(utils.ToBool(os.Getenv("DESCRIBE_TEST_MODE")))
	namespace := utils.NewNamespacePrefix(os.Getenv("DESCRIBE_NAMESPACE"))
	defaultProfile := os.Getenv("DESCRIBE_DEFAULT_PROFILE")
	recordTypes := persistence.NewRecordTypeRepository(db.DB())

	// One cache per request: the request is the execution context
	newCache := func(c *gin.Context) *describe.Cache {
		profileID := c.GetHeader(constants.HeaderXProfileID)
		if profileID == "" {
			profileID = defaultProfile
		}
		return describe.New(
			persistence.NewMetadataRepository(db.DB(), profileID),
			recordTypes,
			describe.WithExecutionMode(mode),
			describe.WithNamespace(namespace),
			describe.WithLogger(logger.With(zap.String("profile_id", profileID))),
		)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/describe")
	api.Use(middleware.DescribeScope(newCache))
	rest.NewDescribeHandler().RegisterRoutes(api)

	logger.Info("🚀 Describe service started",
		zap.String("addr", "http://localhost:"+port),
		zap.Bool("test_mode", bool(mode)),
		zap.String("namespace", namespace.Namespace),
	)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give in-flight requests 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
