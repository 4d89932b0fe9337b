// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shoply/shoply-backend/internal/database"
	"github.com/shoply/shoply-backend/internal/models"
)

var (
	ErrOrderUserRequired  = errors.New("missing userId")
	ErrOrderItemsRequired = errors.New("missing or empty items")
)

// ProductNotFoundError names the cart item whose product no longer exists.
type ProductNotFoundError struct {
	Name string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.Name)
}

// InsufficientStockError names the product and how many units remain.
type InsufficientStockError struct {
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available", e.Name, e.Available)
}

type OrderService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

func NewOrderService(db *gorm.DB, notificationService *NotificationService) *OrderService {
	return &OrderService{
		db:                  db,
		notificationService: notificationService,
	}
}

type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Qty       int       `json:"qty" validate:"min=1"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
}

type PlaceOrderInput struct {
	UserID      uuid.UUID
	Items       []OrderItemInput
	TotalAmount float64
	SessionID   string
}

// PlaceOrder validates the cart against current stock, persists the order with
// a denormalized line-item snapshot, and decrements stock per item. The whole
// flow runs in one transaction with conditional decrements, so concurrent
// orders for the same product cannot drive stock negative: if another order
// wins the race between the pre-check and the decrement, the decrement matches
// zero rows and the transaction rolls back.
func (s *OrderService) PlaceOrder(input *PlaceOrderInput) (*models.Order, error) {
	if input.UserID == uuid.Nil {
		return nil, ErrOrderUserRequired
	}
	if len(input.Items) == 0 {
		return nil, ErrOrderItemsRequired
	}

	var order *models.Order
	var lowStock []models.Product

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		// Pre-check pass over all items before any mutation, so a bad item
		// fails the whole request without touching the ledger.
		for _, item := range input.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{Name: item.Name}
				}
				return fmt.Errorf("failed to look up product: %w", err)
			}
			if product.Stock < item.Qty {
				return &InsufficientStockError{Name: product.Name, Available: product.Stock}
			}
		}

		order = &models.Order{
			UserID:          input.UserID,
			TotalAmount:     input.TotalAmount,
			PaymentStatus:   models.PaymentStatusPaid,
			StripeSessionID: input.SessionID,
		}
		for _, item := range input.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Category:  item.Category,
				Qty:       item.Qty,
				Price:     item.Price,
				Image:     item.Image,
			})
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		// Conditional decrement per item; zero rows affected means a
		// concurrent order consumed the stock since the pre-check.
		for _, item := range input.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Qty).
				Update("stock", gorm.Expr("stock - ?", item.Qty))
			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				var product models.Product
				if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
					return &ProductNotFoundError{Name: item.Name}
				}
				return &InsufficientStockError{Name: product.Name, Available: product.Stock}
			}

			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err == nil {
				if product.Stock < models.LowStockThreshold {
					lowStock = append(lowStock, product)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"user_id":      order.UserID,
		"total_amount": order.TotalAmount,
		"items":        len(order.Items),
	}).Info("Order placed")

	// Notifications are best-effort side effects; the order stands either way.
	go func(o models.Order, low []models.Product) {
		s.notificationService.NotifyOrderCreated(&o, len(o.Items))
		for i := range low {
			s.notificationService.NotifyLowStock(&low[i])
		}
	}(*order, lowStock)

	return order, nil
}

// GetOrders returns all orders with their line items and user display fields,
// newest first.
func (s *OrderService) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetUserOrders(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}
	return orders, nil
}
