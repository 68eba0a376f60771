package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"insure-backend/internal/auth"
	"insure-backend/internal/cache"
	"insure-backend/internal/config"
	"insure-backend/internal/database"
	"insure-backend/internal/db"
	"insure-backend/internal/handlers"
	"insure-backend/internal/health"
	h "insure-backend/internal/http"
	"insure-backend/internal/mail"
	"insure-backend/internal/middleware"
	"insure-backend/internal/relay"
	"insure-backend/internal/repositories"
	"insure-backend/internal/seed"
	"insure-backend/internal/services"
	"insure-backend/internal/storage"
	"insure-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis is optional; the dashboard just skips caching without it
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (dashboard caching disabled)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run embedded schema migrations on startup
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator := database.NewMigrator(pool, migrations.FS)
	if err := migrator.Run(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)
	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	leadRepo := repositories.NewLeadRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	companyRepo := repositories.NewCompanyRepository(pool)
	policyRepo := repositories.NewPolicyRepository(pool)

	// First-run data: admin account and partner carriers
	if err := seed.New(userRepo, companyRepo, cfg).Run(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Outbound integrations - each degrades to a no-op when unconfigured
	var mailer services.QuoteMailer
	emailSender := mail.NewEmailSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.AdminTo)
	if emailSender.Configured() {
		mailer = emailSender
		log.Println("[Mail] Quote notifications enabled")
	} else {
		log.Println("[Mail] SMTP not configured, quote notifications disabled")
	}

	var formRelay services.QuoteRelay
	relayClient := relay.NewClient(cfg.Relay.Endpoint, cfg.Relay.AccessKey, cfg.Relay.FromName)
	if relayClient.Configured() {
		formRelay = relayClient
		log.Println("[Relay] Form relay enabled")
	} else {
		log.Println("[Relay] RELAY_ACCESS_KEY not set, form relay disabled")
	}

	var logoStore services.LogoUploader
	if cfg.Storage.Endpoint != "" && cfg.Storage.Bucket != "" && cfg.Storage.AccessKey != "" {
		store, err := storage.NewLogoStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize logo storage: %v", err)
		}
		logoStore = store
		log.Println("[Storage] Company logo uploads enabled")
	} else {
		log.Println("[Storage] Object storage not configured, logo uploads disabled")
	}

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	leadService := services.NewLeadService(leadRepo)
	customerService := services.NewCustomerService(customerRepo, leadRepo, policyRepo)
	companyService := services.NewCompanyService(companyRepo, logoStore)
	policyService := services.NewPolicyService(policyRepo, customerRepo, companyRepo)
	dashboardService := services.NewDashboardService(policyRepo, customerRepo, companyRepo, leadRepo)
	renewalService := services.NewRenewalService(policyRepo, customerRepo, companyRepo)
	reportService := services.NewReportService(renewalService)
	quoteService := services.NewQuoteService(leadRepo, mailer, formRelay)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	leadHandler := handlers.NewLeadHandler(leadService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	policyHandler := handlers.NewPolicyHandler(policyService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	renewalHandler := handlers.NewRenewalHandler(renewalService, reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		authHandler,
		quoteHandler,
		leadHandler,
		customerHandler,
		companyHandler,
		policyHandler,
		dashboardHandler,
		renewalHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
