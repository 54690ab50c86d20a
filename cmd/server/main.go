// @title           DailyToon Backend API
// @version         1.0.0
// @description     Backend API that turns free-text diary entries into multi-panel comic strips. Narrative adaptation runs on Gemini, panel images on Imagen, and rendered panels are served from Supabase Storage.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "dailytoon-backend/docs"
	"dailytoon-backend/internal/config"
	"dailytoon-backend/internal/database"
	"dailytoon-backend/internal/gemini"
	"dailytoon-backend/internal/handlers"
	"dailytoon-backend/internal/imagen"
	"dailytoon-backend/internal/logger"
	"dailytoon-backend/internal/middleware"
	"dailytoon-backend/internal/services"
	"dailytoon-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment != "production")
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer log.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	// Run migrations before serving any traffic
	migrator, err := database.NewMigrator(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Run(); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	migrator.Close()
	log.Info("migrations completed")

	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to initialize database client", zap.Error(err))
	}
	defer dbClient.Close()

	geminiClient, err := gemini.NewClient(
		context.Background(),
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.GeminiTimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatal("failed to initialize gemini client", zap.Error(err))
	}
	defer geminiClient.Close()

	imagenClient := imagen.NewClient(
		cfg.ImagenAPIBaseURL,
		cfg.GeminiAPIKey,
		cfg.ImagenModel,
		time.Duration(cfg.ImagenTimeoutSeconds)*time.Second,
	)

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatal("failed to initialize supabase client", zap.Error(err))
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatal("failed to initialize storage client", zap.Error(err))
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	genService := services.NewGenerationService(
		geminiClient,
		imagenClient,
		storageClient,
		dbClient,
		realtimeClient,
		log,
		cfg,
	)

	authHandler := handlers.NewAuthHandler(dbClient, cfg, log)
	diariesHandler := handlers.NewDiariesHandler(dbClient, genService, log)
	cutsHandler := handlers.NewCutsHandler(dbClient, genService, log)

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Auth endpoints issue the tokens, so they sit outside the middleware
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))

	authed.POST("/diaries", diariesHandler.CreateDiary)
	authed.GET("/diaries", diariesHandler.ListDiaries)
	authed.GET("/diaries/:diary_id", diariesHandler.GetDiary)
	authed.PUT("/diaries/:diary_id", diariesHandler.UpdateDiary)
	authed.DELETE("/diaries/:diary_id", diariesHandler.DeleteDiary)
	authed.POST("/diaries/:diary_id/regenerate", diariesHandler.RegenerateDiary)

	authed.POST("/cuts/:cut_id/regenerate", cutsHandler.RegenerateCut)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
