package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/charplate01/tesla-checkout/docs"
	"github.com/charplate01/tesla-checkout/internal/config"
	"github.com/charplate01/tesla-checkout/internal/database"
	mW "github.com/charplate01/tesla-checkout/internal/middleware"
	"github.com/charplate01/tesla-checkout/internal/processor"
	"github.com/charplate01/tesla-checkout/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Tesla Checkout Backend API
// @version 1.0
// @description Payment collection backend delegating card processing to Stripe
// @host localhost:4242
// @BasePath /
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	docs.SwaggerInfo.Title = "Tesla Checkout Backend API"
	docs.SwaggerInfo.Description = "Payment collection backend delegating card processing to Stripe"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db := database.InitDatabase(cfg.DatabasePath)
	defer db.Close()

	stripeProcessor := processor.NewStripeProcessor(cfg.StripeSecretKey)

	ledgerService := services.NewLedgerService(db)
	reconcilerService := services.NewReconcilerService(ledgerService, stripeProcessor)
	captchaService := services.NewCaptchaService(cfg.RecaptchaSecret)
	checkoutService := services.NewCheckoutService(ledgerService, reconcilerService, stripeProcessor, captchaService, cfg.StripePublishableKey)
	webhookService := services.NewWebhookService(ledgerService, stripeProcessor, cfg.WebhookSecret)

	if cfg.WebhookSecret == "" {
		log.Println("[WEBHOOK] insecure mode: no signing secret configured, events will be accepted unverified")
	}
	if !captchaService.Enabled() {
		log.Println("[CHECKOUT] reCAPTCHA verification disabled")
	}

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Stripe-Signature", "x-admin-token"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:" + cfg.Port + "/swagger/doc.json"),
	))

	// Static pages: landing plus the checkout redirect targets
	r.Handle("/", mW.StaticPage("./static", "index.html"))
	r.Handle("/success.html", mW.StaticPage("./static", "success.html"))
	r.Handle("/cancel.html", mW.StaticPage("./static", "cancel.html"))

	// Public endpoints
	r.Get("/config", checkoutService.GetPublicConfig)
	r.Post("/create-checkout-session", checkoutService.CreateCheckoutSession)
	r.Post("/webhook", webhookService.HandleWebhook)

	// Admin endpoints (shared token required)
	r.Route("/admin", func(r chi.Router) {
		r.Use(mW.AdminAuth(cfg.AdminToken))

		r.Get("/customers", checkoutService.AdminListCustomers)
		r.Post("/charge", checkoutService.AdminCharge)
		r.Post("/create-subscription", checkoutService.AdminCreateSubscription)
	})

	// Start server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
