// internal/handlers/notification.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/shoply-backend/internal/i18n"
	"github.com/shoply/shoply-backend/internal/models"
	"github.com/shoply/shoply-backend/internal/services"
	"github.com/shoply/shoply-backend/internal/utils"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.notificationService.GetNotifications()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, notifications)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.notificationService.GetUnreadCount()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"count": count})
}

type createNotificationRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
		return
	}

	input := &services.CreateNotificationInput{
		Type:    models.NotificationType(req.Type),
		Title:   req.Title,
		Message: req.Message,
	}
	if req.OrderID != "" {
		orderID, err := uuid.Parse(req.OrderID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid order id", nil)
			return
		}
		input.OrderID = &orderID
	}
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid user id", nil)
			return
		}
		input.UserID = &userID
	}

	notification, err := h.notificationService.CreateNotification(input)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.CreatedResponse(c, notification)
}

// MarkAsRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid notification id", nil)
		return
	}

	notification, err := h.notificationService.MarkAsRead(notificationID)
	if err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			utils.NotFoundResponse(c, "notification")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, notification)
}

// MarkAllAsRead handles PUT /api/notifications/mark-all-read.
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.notificationService.MarkAllAsRead(); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyNotificationsAllRead)})
}
