// internal/handlers/order_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shoply/shoply-backend/internal/models"
	"github.com/shoply/shoply-backend/internal/services"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	user   *models.User
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Notification{},
	))
	s.db = db

	notificationService := services.NewNotificationService(db)
	orderService := services.NewOrderService(db, notificationService)
	handler := NewOrderHandler(orderService)

	s.router = gin.New()
	s.router.POST("/api/orders/success", handler.RecordOrder)

	s.user = &models.User{
		Username: "buyer",
		Email:    "buyer@example.com",
		Role:     models.UserRoleCustomer,
	}
	s.Require().NoError(s.user.SetPassword("Str0ng!pass"))
	s.Require().NoError(db.Create(s.user).Error)
}

func (s *OrderHandlerTestSuite) createProduct(name string, price float64, stock int) *models.Product {
	product := &models.Product{Name: name, Price: price, Stock: stock}
	s.Require().NoError(s.db.Create(product).Error)
	return product
}

func (s *OrderHandlerTestSuite) postOrder(body map[string]interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(s.T(), err)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/success", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *OrderHandlerTestSuite) orderCount() int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.Order{}).Count(&count).Error)
	return count
}

func itemPayload(product *models.Product, qty int) map[string]interface{} {
	return map[string]interface{}{
		"productId": product.ID.String(),
		"name":      product.Name,
		"category":  "Gadgets",
		"qty":       qty,
		"price":     product.Price,
		"image":     product.Image,
	}
}

func (s *OrderHandlerTestSuite) TestMissingUserID() {
	product := s.createProduct("Widget", 9.99, 5)

	w := s.postOrder(map[string]interface{}{
		"items":       []interface{}{itemPayload(product, 1)},
		"totalAmount": 9.99,
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(0), s.orderCount())
}

func (s *OrderHandlerTestSuite) TestEmptyItems() {
	w := s.postOrder(map[string]interface{}{
		"userId":      s.user.ID.String(),
		"items":       []interface{}{},
		"totalAmount": 0,
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(0), s.orderCount())
}

func (s *OrderHandlerTestSuite) TestUnknownProduct() {
	w := s.postOrder(map[string]interface{}{
		"userId": s.user.ID.String(),
		"items": []interface{}{
			map[string]interface{}{
				"productId": uuid.New().String(),
				"name":      "Ghost Widget",
				"qty":       1,
				"price":     9.99,
			},
		},
		"totalAmount": 9.99,
	})

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Ghost Widget")
	s.Equal(int64(0), s.orderCount())
}

func (s *OrderHandlerTestSuite) TestInsufficientStock() {
	product := s.createProduct("Widget", 9.99, 2)

	w := s.postOrder(map[string]interface{}{
		"userId":      s.user.ID.String(),
		"items":       []interface{}{itemPayload(product, 5)},
		"totalAmount": 49.95,
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Insufficient stock")
	s.Equal(int64(0), s.orderCount())

	var stored models.Product
	s.Require().NoError(s.db.First(&stored, "id = ?", product.ID).Error)
	s.Equal(2, stored.Stock)
}

func (s *OrderHandlerTestSuite) TestSuccessfulOrder() {
	product := s.createProduct("Widget", 9.99, 5)

	w := s.postOrder(map[string]interface{}{
		"userId":      s.user.ID.String(),
		"items":       []interface{}{itemPayload(product, 3)},
		"totalAmount": 29.97,
		"sessionId":   "cs_test_123",
	})

	s.Equal(http.StatusCreated, w.Code)
	s.Equal(int64(1), s.orderCount())

	var stored models.Product
	s.Require().NoError(s.db.First(&stored, "id = ?", product.ID).Error)
	s.Equal(2, stored.Stock)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Order models.Order `json:"order"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.Success)
	s.Equal(models.PaymentStatusPaid, response.Data.Order.PaymentStatus)
	s.Equal("cs_test_123", response.Data.Order.StripeSessionID)
}

func (s *OrderHandlerTestSuite) TestMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/orders/success", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(0), s.orderCount())
}

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
