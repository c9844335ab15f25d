package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/config"
	"github.com/goblue0808/Genesis-Frontier/internal/database"
	"github.com/goblue0808/Genesis-Frontier/internal/handler"
	"github.com/goblue0808/Genesis-Frontier/internal/middleware"
	"github.com/goblue0808/Genesis-Frontier/internal/repository"
	"github.com/goblue0808/Genesis-Frontier/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	// Database
	db, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied successfully")

	// Repositories
	playerRepo := repository.NewPlayerRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	saveRepo := repository.NewGameSaveRepository(db)

	// Services
	authSvc := service.NewAuthService(playerRepo, sessionRepo, cfg.JWTSecret)
	wsHub := service.NewWSHub()
	gameSvc := service.NewGameService(saveRepo, playerRepo, wsHub)

	// Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // 1MB
	})

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// Health
	healthH := handler.NewHealthHandler(db)
	app.Get("/health", healthH.Health)
	app.Get("/ready", healthH.Ready)

	// API v1
	v1 := app.Group("/api/v1")

	// Auth (public)
	authH := handler.NewAuthHandler(authSvc, gameSvc)
	auth := v1.Group("/auth")
	auth.Post("/register", middleware.RateLimit(5, time.Minute), authH.Register)
	auth.Post("/login", middleware.RateLimit(10, time.Minute), authH.Login)
	auth.Post("/refresh", middleware.RateLimit(20, time.Minute), authH.Refresh)
	auth.Post("/logout", authH.Logout)

	// Public stats and rankings
	publicH := handler.NewPublicHandler(playerRepo, wsHub, cfg.LeaderboardLimit)
	v1.Get("/stats", publicH.Stats)
	v1.Get("/leaderboard", publicH.Leaderboard)

	// JWT-protected game routes
	protected := v1.Group("", middleware.Auth(cfg.JWTSecret))

	gameH := handler.NewGameHandler(gameSvc)
	game := protected.Group("/game")
	game.Get("/state", gameH.GetState)
	game.Post("/turn", gameH.AdvanceTurn)
	game.Post("/reset", gameH.ResetPlanet)
	game.Post("/planet-type", gameH.ChangePlanetType)
	game.Post("/facilities/:kind", gameH.PurchaseFacility)
	game.Post("/ships/:kind", gameH.BuildShip)
	game.Post("/explore", gameH.Explore)
	game.Post("/colonize", gameH.Colonize)
	game.Post("/treaty", gameH.ProposeTreaty)
	game.Post("/trade-routes", gameH.CreateTradeRoute)
	game.Post("/spy", gameH.SendSpy)
	game.Post("/invade", gameH.LaunchInvasion)
	game.Post("/defenses", gameH.BuildDefense)
	game.Post("/projects/:kind", gameH.StartMegaProject)

	// WebSocket
	wsH := handler.NewWSHandler(wsHub, authSvc)
	app.Get("/ws", wsH.Upgrade)

	// Start hub
	go wsHub.Run()

	// Periodic session cleanup
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := sessionRepo.CleanupExpired(ctx); err != nil {
				log.Printf("Session cleanup failed: %v", err)
			}
			cancel()
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Printf("Genesis Frontier backend running on :%s (%s)", cfg.Port, cfg.Env)

	<-quit
	log.Println("Shutting down...")
	_ = app.ShutdownWithTimeout(5 * time.Second)
	wsHub.Shutdown()
	log.Println("Server stopped")
}
