package main

import (
	"context"
	"errors"
	"facttech_landing_go/config"
	"facttech_landing_go/db"
	"facttech_landing_go/handlers"
	"facttech_landing_go/middleware"
	"facttech_landing_go/models"
	"facttech_landing_go/services"
	"facttech_landing_go/services/i18n"
	"facttech_landing_go/services/intake"
	"facttech_landing_go/services/jobs"
	"facttech_landing_go/services/leads"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.LeadSubmission{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	middleware.InitAssetVersions("static", middleware.LandingAssets...)

	// One workflow per visitor, all sharing the intake client
	client := intake.NewClient(cfg.IntakeURL, cfg.IntakeTimeout)
	registry := leads.NewRegistry(func() *leads.Workflow {
		return leads.NewWorkflow(client, leads.Options{
			ReopenOnError: cfg.DemoReopenOnError,
			Classify:      intake.Classify,
		})
	}, cfg.SessionTTL)
	log.Printf("[INFO] Demo requests go to %s (timeout %s)", client.Endpoint(), cfg.IntakeTimeout)

	stop := make(chan struct{})
	registry.StartSweeper(time.Minute, stop)

	scheduler, err := jobs.StartScheduler(db.DB, cfg)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	metricsHandler, leadMetrics := setupLeadMetrics(registry.Len)
	demo := handlers.NewDemoHandler(registry, leadMetrics)

	e := newServer(cfg, demo, metricsHandler)

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down")
	close(stop)
	<-scheduler.Stop().Done()
	middleware.DemoSubmitRateLimiter.Stop()
	middleware.PublicFormRateLimiter.Stop()
	middleware.FieldUpdateRateLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.IntakeTimeout+5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("[WARNING] Graceful shutdown failed: %v", err)
	}
}

// setupLeadMetrics registers the demo collectors on a dedicated registry and
// returns the handler that exposes it
func setupLeadMetrics(activeWorkflows func() int) (http.Handler, *services.LeadMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := services.NewLeadMetrics(reg, activeWorkflows)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), m
}

func newServer(cfg *config.Config, demo *handlers.DemoHandler, metricsHandler http.Handler) *echo.Echo {
	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.Visitor(cfg))
	e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:" + middleware.CSRFHeader + ",form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   cfg.IsProduction(),
	}))
	e.Use(middleware.CSRFToContext())

	// Static files
	e.Static("/static", "static")

	// Page
	e.GET("/", demo.Landing)
	e.GET("/htmx/nav", handlers.NavHTMX)

	// Demo request dialog
	demoRoutes := e.Group("/demo")
	{
		demoRoutes.POST("/open", demo.Open, middleware.PublicFormRateLimiter.Middleware())
		demoRoutes.POST("/fields", demo.Fields, middleware.FieldUpdateRateLimiter.Middleware())
		demoRoutes.POST("/close", demo.Close, middleware.PublicFormRateLimiter.Middleware())
		demoRoutes.POST("/dismiss", demo.Dismiss, middleware.PublicFormRateLimiter.Middleware())
		demoRoutes.POST("/submit", demo.Submit, middleware.DemoSubmitRateLimiter.Middleware())
	}

	// SEO and operations
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	return e
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
