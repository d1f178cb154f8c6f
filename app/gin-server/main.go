package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/apexshade/playbook/config"
	"github.com/apexshade/playbook/internal/api/handlers"
	"github.com/apexshade/playbook/internal/api/middleware"
	"github.com/apexshade/playbook/internal/api/routes"
	"github.com/apexshade/playbook/internal/cache"
	"github.com/apexshade/playbook/internal/logger"
	"github.com/apexshade/playbook/internal/providers/llm"
	mongorepo "github.com/apexshade/playbook/internal/repositories/mongo"
	"github.com/apexshade/playbook/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// Mongo holds the interactions; unreachable store is fatal at startup.
	mongoClient, db, err := config.NewMongo(cfg)
	if err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	l.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(db); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	// Redis only caches the rendered corpus; run without it if absent.
	var corpusCache cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err := config.NewRedis(cfg)
		if err != nil {
			l.WithError(err).Warn("Redis unavailable; corpus caching disabled")
		} else {
			corpusCache = cache.NewRedisCache(rdb)
			defer func() { _ = rdb.Close() }()
			l.Info("Redis connected")
		}
	}

	provider, err := llm.NewVertexGemini(context.Background(), cfg.GoogleProjectID, cfg.GoogleLocation, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Vertex init error: %v", err)
	}
	defer func() { _ = provider.Close() }()

	interactions := mongorepo.NewInteractionRepo(db)
	knowledge := services.NewKnowledgeService(interactions, corpusCache, cfg.CorpusCacheTTL, cfg.CorpusMaxEntries, l)
	interactionSvc := services.NewInteractionService(interactions, knowledge, provider, cfg.GenerateTimeout)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, routes.Deps{
		Simulator:      handlers.NewSimulatorHandler(interactionSvc),
		Library:        handlers.NewLibraryHandler(interactionSvc),
		Admin:          handlers.NewAdminHandler(interactionSvc, cfg.AdminPassword, cfg.AdminJWTSecret, cfg.AdminTokenTTL),
		AdminJWTSecret: cfg.AdminJWTSecret,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
