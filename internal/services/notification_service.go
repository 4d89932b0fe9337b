// internal/services/notification_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shoply/shoply-backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// GetNotifications returns the 100 most recent notifications, newest first.
func (s *NotificationService) GetNotifications() ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Preload("Order").Preload("User").
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) GetUnreadCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

type CreateNotificationInput struct {
	Type    models.NotificationType
	Title   string
	Message string
	OrderID *uuid.UUID
	UserID  *uuid.UUID
}

func (s *NotificationService) CreateNotification(input *CreateNotificationInput) (*models.Notification, error) {
	notificationType := input.Type
	if notificationType == "" {
		notificationType = models.NotificationTypeOrder
	}

	notification := &models.Notification{
		Type:    notificationType,
		Title:   input.Title,
		Message: input.Message,
		OrderID: input.OrderID,
		UserID:  input.UserID,
	}

	if err := s.db.Create(notification).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return notification, nil
}

func (s *NotificationService) MarkAsRead(notificationID uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	if err := s.db.First(&notification, "id = ?", notificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	if err := s.db.Model(&notification).Update("is_read", true).Error; err != nil {
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	notification.IsRead = true
	return &notification, nil
}

func (s *NotificationService) MarkAllAsRead() error {
	err := s.db.Model(&models.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// NotifyOrderCreated records an order notification. Called from a goroutine
// after checkout, so failures are logged rather than returned.
func (s *NotificationService) NotifyOrderCreated(order *models.Order, itemCount int) {
	_, err := s.CreateNotification(&CreateNotificationInput{
		Type:    models.NotificationTypeOrder,
		Title:   "New order received",
		Message: fmt.Sprintf("Order for %d item(s) totaling $%.2f was placed", itemCount, order.TotalAmount),
		OrderID: &order.ID,
		UserID:  &order.UserID,
	})
	if err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Error("Failed to create order notification")
	}
}

// NotifyLowStock records a stock notification when a product falls below the
// low-stock threshold after a sale or manual adjustment.
func (s *NotificationService) NotifyLowStock(product *models.Product) {
	_, err := s.CreateNotification(&CreateNotificationInput{
		Type:    models.NotificationTypeStock,
		Title:   "Low stock alert",
		Message: fmt.Sprintf("%s is running low: %d left in stock", product.Name, product.Stock),
	})
	if err != nil {
		logrus.WithError(err).WithField("product_id", product.ID).Error("Failed to create low stock notification")
	}
}
