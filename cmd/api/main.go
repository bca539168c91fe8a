package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/flowcraft/payment-service/internal/config"
	"github.com/flowcraft/payment-service/internal/handler"
	"github.com/flowcraft/payment-service/internal/models"
	"github.com/flowcraft/payment-service/internal/service"
	"github.com/flowcraft/payment-service/pkg/payment"
	"github.com/flowcraft/payment-service/pkg/utils"
)

const version = "1.0.0"

func main() {
	// Load .env, if present
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	zapLogger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Incomplete Stripe configuration is logged, not fatal: the service
	// keeps serving and webhook verification fails per-request instead.
	if err := cfg.Validate(); err != nil {
		zapLogger.Error("STRIPE CONFIGURATION ERROR", zap.Error(err))
		zapLogger.Warn("running in degraded mode, Stripe calls will fail until configuration is fixed")
	}

	// Plan catalog
	catalog := models.NewPlanCatalog(cfg.Stripe.StarterPriceID, cfg.Stripe.ProPriceID)

	// Stripe service
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.ClientURL)

	// Validator
	validator := utils.NewValidator()

	// Services
	paymentService := service.NewPaymentService(stripeService, catalog, validator, zapLogger)
	webhookService := service.NewWebhookService(stripeService, zapLogger)

	// Handlers
	paymentHandler := handler.NewPaymentHandler(paymentService, webhookService, zapLogger)
	healthHandler := handler.NewHealthHandler(cfg.AppEnv, version)

	// Router
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Stripe-Signature",
		AllowMethods:     "GET, POST",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"service": "FlowCraft Payment Service",
			"message": "Business Automation Workflows - Payment API",
			"version": version,
			"endpoints": fiber.Map{
				"health":         "GET /api/health",
				"plans":          "GET /api/plans",
				"createCheckout": "POST /api/create-checkout-session",
				"webhook":        "POST /api/stripe-webhook",
			},
		})
	})

	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)
	api.Get("/plans", paymentHandler.GetPlans)
	api.Post("/create-checkout-session", paymentHandler.CreateCheckoutSession)

	// Stripe webhook: raw body, authenticated by signature instead of
	// any app-level auth
	api.Post("/stripe-webhook", paymentHandler.HandleStripeWebhook)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Endpoint not found",
			"availableEndpoints": []string{
				"GET /api/health",
				"GET /api/plans",
				"POST /api/create-checkout-session",
				"POST /api/stripe-webhook",
			},
		})
	})

	zapLogger.Info("starting payment service", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
