// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoply/shoply-backend/internal/models"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *OrderService
	user    *models.User
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewOrderService(s.db, NewNotificationService(s.db))
	s.user = createTestUser(s.T(), s.db, "buyer")
}

func (s *OrderServiceTestSuite) orderCount() int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.Order{}).Count(&count).Error)
	return count
}

func (s *OrderServiceTestSuite) productStock(id uuid.UUID) int {
	var product models.Product
	s.Require().NoError(s.db.First(&product, "id = ?", id).Error)
	return product.Stock
}

func (s *OrderServiceTestSuite) TestPlaceOrderMissingUser() {
	product := createTestProduct(s.T(), s.db, "Widget", 9.99, 5)

	_, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID: uuid.Nil,
		Items: []OrderItemInput{
			{ProductID: product.ID, Name: "Widget", Qty: 1, Price: 9.99},
		},
		TotalAmount: 9.99,
	})

	s.ErrorIs(err, ErrOrderUserRequired)
	s.Equal(int64(0), s.orderCount())
}

func (s *OrderServiceTestSuite) TestPlaceOrderEmptyItems() {
	_, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID:      s.user.ID,
		Items:       nil,
		TotalAmount: 0,
	})

	s.ErrorIs(err, ErrOrderItemsRequired)
	s.Equal(int64(0), s.orderCount())
}

func (s *OrderServiceTestSuite) TestPlaceOrderUnknownProduct() {
	_, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID: s.user.ID,
		Items: []OrderItemInput{
			{ProductID: uuid.New(), Name: "Ghost Widget", Qty: 1, Price: 9.99},
		},
		TotalAmount: 9.99,
	})

	var notFound *ProductNotFoundError
	s.ErrorAs(err, &notFound)
	s.Equal("Ghost Widget", notFound.Name)
	s.Equal(int64(0), s.orderCount())
}

func (s *OrderServiceTestSuite) TestPlaceOrderInsufficientStock() {
	product := createTestProduct(s.T(), s.db, "Widget", 9.99, 2)

	_, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID: s.user.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Name: "Widget", Qty: 5, Price: 9.99},
		},
		TotalAmount: 49.95,
	})

	var noStock *InsufficientStockError
	s.ErrorAs(err, &noStock)
	s.Equal("Widget", noStock.Name)
	s.Equal(2, noStock.Available)
	s.Equal(int64(0), s.orderCount())
	s.Equal(2, s.productStock(product.ID))
}

func (s *OrderServiceTestSuite) TestPlaceOrderOneBadItemAbortsAll() {
	good := createTestProduct(s.T(), s.db, "Widget", 9.99, 10)
	scarce := createTestProduct(s.T(), s.db, "Gadget", 19.99, 1)

	_, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID: s.user.ID,
		Items: []OrderItemInput{
			{ProductID: good.ID, Name: "Widget", Qty: 2, Price: 9.99},
			{ProductID: scarce.ID, Name: "Gadget", Qty: 3, Price: 19.99},
		},
		TotalAmount: 79.95,
	})

	var noStock *InsufficientStockError
	s.ErrorAs(err, &noStock)
	s.Equal(int64(0), s.orderCount())
	s.Equal(10, s.productStock(good.ID))
	s.Equal(1, s.productStock(scarce.ID))
}

func (s *OrderServiceTestSuite) TestPlaceOrderSuccess() {
	product := createTestProduct(s.T(), s.db, "Widget", 9.99, 5)

	order, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID: s.user.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Name: "Widget", Category: "Gadgets", Qty: 3, Price: 9.99, Image: "widget.png"},
		},
		TotalAmount: 29.97,
		SessionID:   "cs_test_123",
	})

	s.Require().NoError(err)
	s.Equal(models.PaymentStatusPaid, order.PaymentStatus)
	s.Equal("cs_test_123", order.StripeSessionID)

	s.Equal(int64(1), s.orderCount())
	s.Equal(2, s.productStock(product.ID))

	var stored models.Order
	s.Require().NoError(s.db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
	s.Require().Len(stored.Items, 1)
	item := stored.Items[0]
	s.Equal(product.ID, item.ProductID)
	s.Equal("Widget", item.Name)
	s.Equal("Gadgets", item.Category)
	s.Equal(3, item.Qty)
	s.InDelta(9.99, item.Price, 0.001)
	s.Equal("widget.png", item.Image)
}

func (s *OrderServiceTestSuite) TestPlaceOrderMultipleItems() {
	first := createTestProduct(s.T(), s.db, "Widget", 9.99, 5)
	second := createTestProduct(s.T(), s.db, "Gadget", 19.99, 4)

	order, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID: s.user.ID,
		Items: []OrderItemInput{
			{ProductID: first.ID, Name: "Widget", Qty: 2, Price: 9.99},
			{ProductID: second.ID, Name: "Gadget", Qty: 1, Price: 19.99},
		},
		TotalAmount: 39.97,
	})

	s.Require().NoError(err)
	s.Len(order.Items, 2)
	s.Equal(3, s.productStock(first.ID))
	s.Equal(3, s.productStock(second.ID))
}

func (s *OrderServiceTestSuite) TestPlaceOrderBelowThresholdNotifies() {
	product := createTestProduct(s.T(), s.db, "Widget", 9.99, 12)

	_, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID: s.user.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Name: "Widget", Qty: 5, Price: 9.99},
		},
		TotalAmount: 49.95,
	})
	s.Require().NoError(err)
	s.Equal(7, s.productStock(product.ID))

	// Notifications are written from a goroutine after the transaction
	// commits; one stock alert for the product that crossed the threshold.
	var stockCount int64
	s.Require().Eventually(func() bool {
		s.db.Model(&models.Notification{}).
			Where("type = ?", models.NotificationTypeStock).
			Count(&stockCount)
		return stockCount > 0
	}, 2*time.Second, 10*time.Millisecond)
	s.Equal(int64(1), stockCount)

	var orderCount int64
	s.Require().NoError(s.db.Model(&models.Notification{}).
		Where("type = ?", models.NotificationTypeOrder).
		Count(&orderCount).Error)
	s.Equal(int64(1), orderCount)
}

func (s *OrderServiceTestSuite) TestGetOrdersNewestFirst() {
	product := createTestProduct(s.T(), s.db, "Widget", 9.99, 20)

	for i := 0; i < 3; i++ {
		_, err := s.service.PlaceOrder(&PlaceOrderInput{
			UserID: s.user.ID,
			Items: []OrderItemInput{
				{ProductID: product.ID, Name: "Widget", Qty: 1, Price: 9.99},
			},
			TotalAmount: 9.99,
		})
		s.Require().NoError(err)
	}

	orders, err := s.service.GetOrders()
	s.Require().NoError(err)
	s.Require().Len(orders, 3)
	s.Require().NotNil(orders[0].User)
	s.Equal("buyer", orders[0].User.Username)
	for i := 1; i < len(orders); i++ {
		s.False(orders[i].CreatedAt.After(orders[i-1].CreatedAt))
	}
}

func (s *OrderServiceTestSuite) TestGetUserOrders() {
	product := createTestProduct(s.T(), s.db, "Widget", 9.99, 20)
	other := createTestUser(s.T(), s.db, "other")

	_, err := s.service.PlaceOrder(&PlaceOrderInput{
		UserID: s.user.ID,
		Items: []OrderItemInput{
			{ProductID: product.ID, Name: "Widget", Qty: 1, Price: 9.99},
		},
		TotalAmount: 9.99,
	})
	s.Require().NoError(err)

	orders, err := s.service.GetUserOrders(other.ID)
	s.Require().NoError(err)
	s.Empty(orders)

	orders, err = s.service.GetUserOrders(s.user.ID)
	s.Require().NoError(err)
	s.Len(orders, 1)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
