package handler

import (
	"errors"
	"fmt"

	"github.com/flowcraft/payment-service/internal/models"
	"github.com/flowcraft/payment-service/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	webhookService *service.WebhookService
	logger         *zap.Logger
}

func NewPaymentHandler(paymentService *service.PaymentService, webhookService *service.WebhookService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		webhookService: webhookService,
		logger:         logger,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var req models.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	result, err := h.paymentService.CreateCheckoutSession(req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(validationErr.Message))
		}

		var providerErr *service.ProviderError
		if errors.As(err, &providerErr) {
			h.logger.Error("checkout session creation failed", zap.Error(providerErr.Err))
			return c.Status(fiber.StatusInternalServerError).JSON(
				models.ErrorResponseWithDetails("Failed to create checkout session", providerErr.Err.Error()))
		}

		h.logger.Error("unexpected checkout error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error"))
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"sessionId": result.SessionID,
		"url":       result.URL,
		"plan":      result.Plan,
	})
}

// HandleStripeWebhook must see the request body exactly as Stripe sent
// it; the signature covers the literal bytes. c.Body() is the raw
// payload, no decoder runs before this handler.
func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	signatureHeader := c.Get("Stripe-Signature")
	if signatureHeader == "" {
		h.logger.Warn("webhook request without Stripe-Signature header")
		return c.Status(fiber.StatusBadRequest).SendString("No signature")
	}

	ack, err := h.webhookService.HandleEvent(c.Body(), signatureHeader)
	if err != nil {
		var sigErr *service.SignatureError
		if errors.As(err, &sigErr) {
			h.logger.Warn("webhook signature verification failed", zap.Error(sigErr.Err))
			return c.Status(fiber.StatusBadRequest).SendString(fmt.Sprintf("Webhook Error: %v", sigErr.Err))
		}

		var procErr *service.ProcessingError
		if errors.As(err, &procErr) {
			h.logger.Error("webhook processing failed",
				zap.String("event_type", procErr.EventType),
				zap.String("event_id", procErr.EventID),
				zap.Error(procErr.Err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Webhook processing failed",
				"details": procErr.Err.Error(),
			})
		}

		h.logger.Error("unexpected webhook error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Webhook processing failed",
		})
	}

	return c.JSON(ack)
}

func (h *PaymentHandler) GetPlans(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse(h.paymentService.Plans(), ""))
}
