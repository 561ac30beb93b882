package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripplanr/config"
	"tripplanr/itinerary"
	"tripplanr/logger"
	"tripplanr/middleware"
	"tripplanr/planner"
	"tripplanr/providers/gemini"
	"tripplanr/providers/opentripmap"
	"tripplanr/providers/youtube"
	"tripplanr/ratelim"
	"tripplanr/routes"
	"tripplanr/telemetry"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// buildPlanner enables each real provider only when its key is configured.
func buildPlanner(cfg *config.Config, events telemetry.Publisher, zl *zap.Logger) *planner.Planner {
	opts := planner.Options{Events: events, Logger: zl}
	p := cfg.Providers
	if p.GeminiAPIKey != "" {
		opts.Itineraries = gemini.NewClient(p.GeminiAPIKey, p.GeminiModel, p.GeminiTimeout)
	}
	if p.YouTubeAPIKey != "" {
		opts.Videos = youtube.NewClient(p.YouTubeAPIKey, p.Timeout)
	}
	if p.OpenTripMapAPIKey != "" {
		opts.Attractions = opentripmap.NewClient(p.OpenTripMapAPIKey, p.Timeout)
	}
	return planner.New(opts)
}

func setupRouter(cfg *config.Config, h *itinerary.Handler, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	routes.AddHealthRoutes(router)
	routes.AddItineraryRoutes(router, h, rateLimiter)
	routes.AddStaticRoutes(router, cfg.StaticDir)
	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	zl, err := logger.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer zl.Sync()
	zl.Info("starting", zap.Stringer("config", cfg))

	var events telemetry.Publisher = telemetry.NopPublisher{}
	if cfg.Redis.Addr != "" {
		conn := telemetry.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := telemetry.Ping(pingCtx, conn); err != nil {
			zl.Warn("redis unreachable, provider events will not be published", zap.Error(err))
		} else {
			events = telemetry.NewRedisPublisher(conn)
		}
		cancel()
		defer conn.Close()
	}

	rateLimiter := ratelim.NewRateLimiter(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.Enabled)
	go rateLimiter.Cleanup(time.Minute)

	h := itinerary.NewHandler(buildPlanner(cfg, events, zl), zl)
	router := setupRouter(cfg, h, rateLimiter)

	// apply middleware: request id → logging → security headers → CORS → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.GetCORSOrigins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{itinerary.SourceHeader, middleware.RequestIDHeader, "Content-Disposition"},
	}).Handler(router)

	handler := middleware.RequestID(middleware.Logging(zl)(middleware.SecurityHeaders(corsHandler)))

	server := &http.Server{
		Addr:              cfg.GetServerAddr(),
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		zl.Info("stopping rate limiter janitor")
		rateLimiter.Stop()
	})

	go func() {
		zl.Info("🚀 server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zl.Info("🛑 shutdown signal received; shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zl.Fatal("graceful shutdown failed", zap.Error(err))
	}

	zl.Info("✅ server stopped cleanly")
}
