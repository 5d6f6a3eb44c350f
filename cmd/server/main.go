package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/walkroute/backend/internal/application/services"
	"github.com/walkroute/backend/internal/infrastructure/config"
	"github.com/walkroute/backend/internal/infrastructure/gemini"
	"github.com/walkroute/backend/internal/infrastructure/maps"
	"github.com/walkroute/backend/internal/interfaces/middleware"
	"github.com/walkroute/backend/internal/interfaces/rest"
)

func main() {
	// Load .env
	// Try multiple paths; the container runtime normally provides the
	// variables directly and no file is present.
	paths := []string{".env", "../.env", "../../.env"}
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			log.Printf("📁 Loaded .env from %s", p)
			break
		}
	}

	// Resolve configuration once, at entry. PORT is taken verbatim: no
	// default, no validation. A missing or malformed value fails the
	// listener below and exits the container non-zero.
	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️  GOOGLE_API_KEY is not set - trail generation will fail")
	}
	if cfg.MapsAPIKey == "" {
		log.Println("⚠️  GOOGLE_MAPS_API_KEY is not set - geocoding will fail")
	}

	// Initialize external clients
	llm := gemini.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	resolver := maps.NewClient(cfg.MapsBaseURL, cfg.MapsAPIKey)

	// Initialize service manager
	svcMgr := services.NewServiceManager(llm, resolver)
	log.Println("🔧 Service manager initialized")

	// Create Gin router
	router := gin.Default()

	// CORS middleware - Allow credentials from any origin
	router.Use(middleware.Cors())
	router.Use(middleware.RequestID())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"server": "golang",
		})
	})

	// Initialize handlers
	recommendHandler := rest.NewRecommendHandler(svcMgr.Recommendation)

	// Recommendation routes
	router.POST("/recommend", recommendHandler.Recommend)
	router.GET("/recommend/:id", recommendHandler.GetRecommendation)

	// Start scheduled cache eviction
	svcMgr.StartScheduler()
	log.Println("⏰ Scheduler service started (60s polling)")

	// Start server
	log.Println("\n═══════════════════════════════════════════════════════════")
	log.Println("🚀 WalkRoute Backend Started Successfully")
	log.Println("═══════════════════════════════════════════════════════════")
	log.Printf("\n📍 Server:         http://localhost:%s", cfg.Port)
	log.Printf("🥾 Recommend API:  http://localhost:%s/recommend", cfg.Port)
	log.Printf("💚 Health check:   http://localhost:%s/health\n", cfg.Port)

	// Create HTTP Server
	srv := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop background workers
	svcMgr.StopScheduler()
	log.Println("🛑 Scheduler stopped")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
