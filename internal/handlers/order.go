// internal/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/shoply-backend/internal/i18n"
	"github.com/shoply/shoply-backend/internal/services"
	"github.com/shoply/shoply-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderSuccessRequest struct {
	UserID      string                    `json:"userId"`
	Items       []services.OrderItemInput `json:"items"`
	TotalAmount float64                   `json:"totalAmount"`
	SessionID   string                    `json:"sessionId"`
}

// RecordOrder handles POST /api/orders/success. The frontend calls this after
// Stripe confirms payment, so the order is recorded as already paid.
func (h *OrderHandler) RecordOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req orderSuccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	if req.UserID == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderMissingUser), nil)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderMissingUser), nil)
		return
	}
	if len(req.Items) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderMissingItems), nil)
		return
	}

	order, err := h.orderService.PlaceOrder(&services.PlaceOrderInput{
		UserID:      userID,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		SessionID:   req.SessionID,
	})
	if err != nil {
		var notFound *services.ProductNotFoundError
		var noStock *services.InsufficientStockError
		switch {
		case errors.Is(err, services.ErrOrderUserRequired):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderMissingUser), nil)
		case errors.Is(err, services.ErrOrderItemsRequired):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderMissingItems), nil)
		case errors.As(err, &notFound):
			utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND",
				fmt.Sprintf("%s: %s", i18n.T(lang, i18n.KeyProductNotFound), notFound.Name), nil)
		case errors.As(err, &noStock):
			utils.BadRequestResponse(c,
				fmt.Sprintf("Insufficient stock for %s: %d available", noStock.Name, noStock.Available), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderRecorded),
		"order":   order,
	})
}

// GetOrders handles GET /api/orders (admin listing with user display fields).
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, orders)
}

// GetUserOrders handles GET /api/orders/user/:userId.
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user id", nil)
		return
	}

	orders, err := h.orderService.GetUserOrders(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, orders)
}
