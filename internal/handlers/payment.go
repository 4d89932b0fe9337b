// internal/handlers/payment.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shoply/shoply-backend/internal/config"
	"github.com/shoply/shoply-backend/internal/services"
	"github.com/shoply/shoply-backend/internal/utils"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
	cfg            *config.Config
}

func NewPaymentHandler(paymentService *services.PaymentService, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		cfg:            cfg,
	}
}

type checkoutSessionRequest struct {
	Items []services.CheckoutItemInput `json:"items"`
}

// CreateCheckoutSession handles POST /api/payments/checkout-session.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req checkoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}
	if len(req.Items) == 0 {
		utils.BadRequestResponse(c, "Missing or empty items", nil)
		return
	}
	for _, item := range req.Items {
		if err := utils.ValidateStruct(&item); err != nil {
			utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
			return
		}
	}

	result, err := h.paymentService.CreateCheckoutSession(req.Items)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, result)
}

// GetConfig exposes the publishable key the frontend needs to start checkout.
func (h *PaymentHandler) GetConfig(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"publishable_key": h.cfg.Payment.StripePublishableKey,
		"currency":        h.cfg.Payment.Currency,
	})
}
