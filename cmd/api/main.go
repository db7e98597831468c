package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/favourop/portfolio-backend/config"
	"github.com/favourop/portfolio-backend/internal/assistant"
	assistanthttp "github.com/favourop/portfolio-backend/internal/assistant/http"
	"github.com/favourop/portfolio-backend/internal/auth"
	authhttp "github.com/favourop/portfolio-backend/internal/auth/http"
	authservice "github.com/favourop/portfolio-backend/internal/auth/service"
	"github.com/favourop/portfolio-backend/internal/auth/session"
	contenthttp "github.com/favourop/portfolio-backend/internal/content/http"
	"github.com/favourop/portfolio-backend/internal/content/repository"
	contentservice "github.com/favourop/portfolio-backend/internal/content/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	profile, err := assistant.LoadProfile(cfg.Assistant.ProfilePath)
	if err != nil {
		log.Fatalf("profile: %v", err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})

	api := r.Group("/api/v1")

	contentService := contentservice.NewContentService(store)
	contentHandler := contenthttp.NewHandler(contentService)

	assistantService := assistant.NewService(profile, assistant.NewClient(cfg.Assistant))
	assistanthttp.NewHandler(assistantService).Register(api)

	switch cfg.Auth.Mode {
	case "firebase":
		client, err := auth.InitializeFirebase(&cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
		contentHandler.Register(api, auth.NewFirebaseAuthorizer(client))

	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}

		sessions := session.NewStore(rdb, cfg.Auth.SessionTTL)
		authorizer := session.NewAuthorizer(sessions)
		contentHandler.Register(api, authorizer)
		authhttp.NewHandler(authservice.NewAuthService(cfg.Auth, sessions)).
			Register(api.Group("/auth"), authorizer)
	}

	log.Printf("listening on :%s (store=%s auth=%s)", cfg.Server.Port, cfg.Store.Backend, cfg.Auth.Mode)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func buildStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.Store.Backend {
	case "postgres":
		return repository.NewPostgresStore(cfg.Postgres.URL), nil
	case "memory":
		return repository.NewMemoryStore(), nil
	default:
		return repository.NewSurrealStore(context.Background(), cfg.Surreal)
	}
}
