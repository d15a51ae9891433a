package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/reversi/backend/internal/config"
	"github.com/iamasit07/reversi/backend/internal/repository/postgres"
	"github.com/iamasit07/reversi/backend/internal/repository/redis"
	"github.com/iamasit07/reversi/backend/internal/service/cleanup"
	"github.com/iamasit07/reversi/backend/internal/service/game"
	"github.com/iamasit07/reversi/backend/internal/service/score"
	transportHttp "github.com/iamasit07/reversi/backend/internal/transport/http"
	"github.com/iamasit07/reversi/backend/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. Persistence is optional: without DATABASE_URL games live in memory only
	var (
		gameRepo   game.GameRepository
		history    transportHttp.HistoryService
		scoreStore game.ScoreRecorder
		bestScore  transportHttp.BestScoreReader
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.InitDB(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		log.Println("Running database migrations...")
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

		if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
			log.Printf("Failed to initialize Redis: %v", err)
		}
		defer redis.CloseRedis()

		var cache score.CacheRepository
		if redis.IsRedisEnabled() && redis.RedisClient != nil {
			cache = redis.NewRedisCache(redis.RedisClient)
		}

		repo := postgres.NewGameRepo(db)
		scores := score.NewService(postgres.NewBestScoreRepo(db), cache, cfg.BestScoreCacheTTL)
		gameRepo = repo
		history = game.NewService(repo)
		scoreStore = scores
		bestScore = scores
	} else {
		log.Println("DATABASE_URL not set, finished games will not be stored")
	}

	// 2. Sessions push their updates through the websocket connections
	connManager := websocket.NewConnectionManager()
	sessionManager := game.NewSessionManager(gameRepo, scoreStore, connManager, game.Options{
		ComputerDelay:  cfg.ComputerDelay,
		GameStartDelay: cfg.GameStartDelay,
	})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.FinishedSessionTTL, cfg.SessionIdleTTL)
	cleanupWorker.Start(ctx)

	// 3. HTTP and WebSocket handlers
	wsHandler := websocket.NewHandler(connManager, sessionManager, cfg.AllowedOrigins)
	router := transportHttp.NewRouter(transportHttp.Handlers{
		Game:      transportHttp.NewGameHandler(sessionManager),
		History:   transportHttp.NewHistoryHandler(history),
		Score:     transportHttp.NewScoreHandler(bestScore),
		Watch:     transportHttp.NewWatchHandler(sessionManager, connManager),
		WebSocket: wsHandler.HandleWebSocket,
	})
	serveFrontend(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// let games that just ended reach the database
	sessionManager.Wait()
	log.Println("Server exited gracefully")
}

// serveFrontend serves a built SPA from ./static when one is present
func serveFrontend(router *gin.Engine) {
	if _, err := os.Stat("./static"); err != nil {
		return
	}

	router.Static("/assets", "./static/assets")
	router.GET("/", func(c *gin.Context) {
		c.File("./static/index.html")
	})

	router.NoRoute(func(c *gin.Context) {
		path := "./static" + c.Request.URL.Path
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") || strings.HasPrefix(c.Request.URL.Path, "/assets/") {
			c.Status(http.StatusNotFound)
			return
		}

		// SPA fallback
		c.File("./static/index.html")
	})
}
