// internal/services/analytics_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoply/shoply-backend/internal/models"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AnalyticsService
	user    *models.User
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewAnalyticsService(s.db)
	s.user = createTestUser(s.T(), s.db, "shopper")
}

func (s *AnalyticsServiceTestSuite) createOrder(status models.PaymentStatus, total float64, items ...models.OrderItem) *models.Order {
	order := &models.Order{
		UserID:        s.user.ID,
		TotalAmount:   total,
		PaymentStatus: status,
		Items:         items,
	}
	s.Require().NoError(s.db.Create(order).Error)
	return order
}

func (s *AnalyticsServiceTestSuite) TestCategoryDistributionOnlyCountsPaidOrders() {
	category := &models.Category{Name: "Gadgets"}
	s.Require().NoError(s.db.Create(category).Error)
	product := &models.Product{Name: "Widget", Price: 10, Stock: 5, CategoryID: &category.ID}
	s.Require().NoError(s.db.Create(product).Error)

	s.createOrder(models.PaymentStatusPaid, 20,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 2, Price: 10})
	s.createOrder(models.PaymentStatusCreated, 100,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 10, Price: 10})

	distribution, err := s.service.GetCategoryDistribution()
	s.Require().NoError(err)
	s.Require().Len(distribution, 1)
	s.Equal("Gadgets", distribution[0].Category)
	s.InDelta(20, distribution[0].Total, 0.001)
}

func (s *AnalyticsServiceTestSuite) TestTopProductsOnlyCountsPaidOrders() {
	product := createTestProduct(s.T(), s.db, "Widget", 10, 5)
	other := createTestProduct(s.T(), s.db, "Gadget", 50, 5)

	s.createOrder(models.PaymentStatusPaid, 30,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Category: "Gadgets", Qty: 3, Price: 10})
	s.createOrder(models.PaymentStatusPaid, 50,
		models.OrderItem{ProductID: other.ID, Name: "Gadget", Qty: 1, Price: 50})
	s.createOrder(models.PaymentStatusFailed, 500,
		models.OrderItem{ProductID: other.ID, Name: "Gadget", Qty: 10, Price: 50})

	top, err := s.service.GetTopProducts()
	s.Require().NoError(err)
	s.Require().Len(top, 2)

	// Revenue descending; the failed order contributes nothing.
	s.Equal("Gadget", top[0].Name)
	s.InDelta(50, top[0].Revenue, 0.001)
	s.Equal(int64(1), top[0].UnitsSold)

	s.Equal("Widget", top[1].Name)
	s.Equal("Gadgets", top[1].Category)
	s.InDelta(30, top[1].Revenue, 0.001)
}

func (s *AnalyticsServiceTestSuite) TestTopProductsCategoryFallsBackToUncategorized() {
	product := createTestProduct(s.T(), s.db, "Widget", 10, 5)

	s.createOrder(models.PaymentStatusPaid, 10,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 1, Price: 10})

	top, err := s.service.GetTopProducts()
	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal("Uncategorized", top[0].Category)
}

func (s *AnalyticsServiceTestSuite) TestSalesTrendGroupsPaidOrdersByDay() {
	product := createTestProduct(s.T(), s.db, "Widget", 10, 50)

	s.createOrder(models.PaymentStatusPaid, 30,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 3, Price: 10})
	s.createOrder(models.PaymentStatusPaid, 20,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 2, Price: 10})
	s.createOrder(models.PaymentStatusCreated, 999,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 1, Price: 10})

	trend, err := s.service.GetSalesTrend()
	s.Require().NoError(err)
	s.Require().Len(trend, 1)
	s.Regexp(`^\d{4}-\d{2}-\d{2}$`, trend[0].Date)
	s.InDelta(50, trend[0].Revenue, 0.001)
	s.Equal(int64(2), trend[0].OrderCount)
}

func (s *AnalyticsServiceTestSuite) TestCustomersReportIncludesAllStatuses() {
	product := createTestProduct(s.T(), s.db, "Widget", 10, 50)
	other := createTestUser(s.T(), s.db, "bigspender")

	s.createOrder(models.PaymentStatusPaid, 30,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 3, Price: 10})
	// Unpaid orders still count here, unlike the category/top-product reports.
	s.createOrder(models.PaymentStatusCreated, 20,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 2, Price: 10})

	bigOrder := &models.Order{
		UserID:        other.ID,
		TotalAmount:   200,
		PaymentStatus: models.PaymentStatusPaid,
		Items: []models.OrderItem{
			{ProductID: product.ID, Name: "Widget", Qty: 20, Price: 10},
		},
	}
	s.Require().NoError(s.db.Create(bigOrder).Error)

	report, err := s.service.GetCustomersReport()
	s.Require().NoError(err)
	s.Require().Len(report, 2)

	// Sorted by total spent descending.
	s.Equal("bigspender", report[0].Username)
	s.InDelta(200, report[0].TotalSpent, 0.001)
	s.Equal(int64(20), report[0].TotalItems)

	s.Equal("shopper", report[1].Username)
	s.InDelta(50, report[1].TotalSpent, 0.001)
	s.Equal(int64(2), report[1].OrderCount)
	s.Equal(int64(5), report[1].TotalItems)
	s.NotEmpty(report[1].LastPurchase)
}

func (s *AnalyticsServiceTestSuite) TestLowStockProducts() {
	createTestProduct(s.T(), s.db, "Plenty", 10, 50)
	createTestProduct(s.T(), s.db, "AtThreshold", 10, 10)
	low := createTestProduct(s.T(), s.db, "Low", 10, 3)
	lower := createTestProduct(s.T(), s.db, "Lower", 10, 1)

	products, err := s.service.GetLowStockProducts()
	s.Require().NoError(err)
	s.Require().Len(products, 2)

	// Ascending by stock; the threshold is exclusive.
	s.Equal(lower.ID, products[0].ID)
	s.Equal(low.ID, products[1].ID)
}

func (s *AnalyticsServiceTestSuite) TestLowStockLimitedToFive() {
	for i := 0; i < 7; i++ {
		createTestProduct(s.T(), s.db, "Scarce", 10, i)
	}

	products, err := s.service.GetLowStockProducts()
	s.Require().NoError(err)
	s.Len(products, 5)
}

func (s *AnalyticsServiceTestSuite) TestDashboardStats() {
	product := createTestProduct(s.T(), s.db, "Widget", 10, 5)
	createTestUser(s.T(), s.db, "another")

	admin := &models.User{Username: "boss", Email: "boss@example.com", Role: models.UserRoleAdmin}
	s.Require().NoError(admin.SetPassword("Str0ng!pass"))
	s.Require().NoError(s.db.Create(admin).Error)

	s.createOrder(models.PaymentStatusPaid, 30,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 3, Price: 10})
	s.createOrder(models.PaymentStatusCreated, 99,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 1, Price: 10})

	stats := s.service.GetDashboardStats()
	s.InDelta(30, stats.TotalRevenue, 0.001)
	s.Equal(int64(2), stats.TotalUsers)
	s.Equal(int64(2), stats.TotalOrders)
	s.Equal(int64(1), stats.TotalProducts)
}

func (s *AnalyticsServiceTestSuite) TestDashboardAggregatesSections() {
	category := &models.Category{Name: "Gadgets"}
	s.Require().NoError(s.db.Create(category).Error)
	product := &models.Product{Name: "Widget", Price: 10, Stock: 3, CategoryID: &category.ID}
	s.Require().NoError(s.db.Create(product).Error)
	createTestProduct(s.T(), s.db, "Loose Part", 2, 4)

	s.createOrder(models.PaymentStatusPaid, 30,
		models.OrderItem{ProductID: product.ID, Name: "Widget", Qty: 3, Price: 10})

	dashboard := s.service.GetDashboard()

	s.Require().Len(dashboard.InventoryByCategory, 2)
	s.Equal("Gadgets", dashboard.InventoryByCategory[0].Category)
	s.InDelta(30, dashboard.InventoryByCategory[0].Value, 0.001)
	s.Equal("Uncategorized", dashboard.InventoryByCategory[1].Category)
	s.InDelta(8, dashboard.InventoryByCategory[1].Value, 0.001)

	s.Require().Len(dashboard.HighestPricedProducts, 2)
	s.Equal("Widget", dashboard.HighestPricedProducts[0].Name)

	s.Len(dashboard.RecentProducts, 2)
	s.Require().Len(dashboard.RecentPurchases, 1)
	s.Require().NotNil(dashboard.RecentPurchases[0].User)
	s.Equal("shopper", dashboard.RecentPurchases[0].User.Username)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
