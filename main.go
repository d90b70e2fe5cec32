package main

import (
	"context"
	"log"
	"os"
	"time"

	"learntrack/data"
	"learntrack/handler"
	"learntrack/middleware"
	"learntrack/repository"
	"learntrack/usecase"
	"learntrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()
}

func newBlobStore() repository.BlobStore {
	backend := utils.GetEnvAsString("STORAGE_BACKEND", "redis")

	switch backend {
	case "redis":
		store, err := repository.NewRedisStore(
			utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379"))
		if err != nil {
			log.Fatalf("Failed to initialize Redis storage: %v", err)
		}
		return store
	case "mongo":
		store, err := repository.NewMongoStore(
			utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
			utils.GetEnvAsString("MONGO_DB", "learntrack"),
			utils.GetEnvAsString("MONGO_COLLECTION", "blobs"))
		if err != nil {
			log.Fatalf("Failed to initialize MongoDB storage: %v", err)
		}
		return store
	case "memory":
		log.Println("Using in-memory storage; state will not survive restart")
		return repository.NewMemoryStore()
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (want redis, mongo, or memory)", backend)
		return nil
	}
}

func setupRouter(service *usecase.LearningService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	taskHandler := handler.NewTaskHandler(service)
	moduleHandler := handler.NewModuleHandler(service)
	logHandler := handler.NewLogHandler(service)
	statsHandler := handler.NewStatsHandler(service)

	api := router.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/today", taskHandler.TodaysTasks)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/toggle", taskHandler.ToggleTask)
		}

		modules := api.Group("/modules")
		{
			modules.GET("", moduleHandler.ListModules)
			modules.PUT("/:id/progress", moduleHandler.UpdateProgress)
		}

		logs := api.Group("/logs")
		{
			logs.GET("", logHandler.ListLogs)
			logs.POST("", logHandler.CreateLog)
		}

		api.GET("/stats", statsHandler.GetStats)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"backend": utils.GetEnvAsString("STORAGE_BACKEND", "redis"),
		})
	})

	return router
}

func main() {
	blob := newBlobStore()

	service := usecase.NewLearningService(blob, data.Curriculum())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	service.Load(ctx)
	cancel()

	utils.StartSystemMetrics(utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 15*time.Second))

	router := setupRouter(service)

	port := utils.GetEnvAsString("PORT", "8080")
	log.Printf("Listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
