// internal/services/analytics_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shoply/shoply-backend/internal/models"
)

// AnalyticsService runs the read-only reporting queries behind the admin
// dashboard. Each report is an independent query; none of them share state.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type SalesTrendPoint struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	OrderCount int64   `json:"orders"`
}

type CategorySales struct {
	Category string  `json:"name"`
	Total    float64 `json:"value"`
}

type TopProduct struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	Category  string    `json:"categoryName"`
	UnitsSold int64     `json:"sold"`
	Revenue   float64   `json:"revenue"`
}

type CustomerReportRow struct {
	UserID       uuid.UUID `json:"userId"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	OrderCount   int64     `json:"orderCount"`
	TotalSpent   float64   `json:"totalSpent"`
	TotalItems   int64     `json:"totalProducts"`
	LastPurchase string    `json:"lastPurchase"`
}

type DashboardStats struct {
	TotalRevenue  float64 `json:"totalSales"`
	TotalUsers    int64   `json:"customers"`
	TotalOrders   int64   `json:"orders"`
	TotalProducts int64   `json:"products"`
}

// dayExpr renders a timestamp column as a YYYY-MM-DD string for grouping.
// Postgres and sqlite (used in tests) spell this differently.
func (s *AnalyticsService) dayExpr(column string) string {
	if s.db.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("strftime('%%Y-%%m-%%d', %s)", column)
	}
	return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", column)
}

func (s *AnalyticsService) timestampExpr(column string) string {
	if s.db.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("strftime('%%Y-%%m-%%d %%H:%%M:%%S', %s)", column)
	}
	return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD HH24:MI:SS')", column)
}

// GetSalesTrend groups paid orders by calendar day, summing revenue and
// counting orders. Returns the most recent 30 grouped days in ascending order.
func (s *AnalyticsService) GetSalesTrend() ([]SalesTrendPoint, error) {
	day := s.dayExpr("created_at")

	var points []SalesTrendPoint
	err := s.db.Model(&models.Order{}).
		Select(day+" AS date, SUM(total_amount) AS revenue, COUNT(id) AS order_count").
		Where("payment_status = ?", models.PaymentStatusPaid).
		Group(day).
		Order("date DESC").
		Limit(30).
		Scan(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get sales trend: %w", err)
	}

	// Reverse into ascending date order for charting.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}

// GetCategoryDistribution sums (qty x price) of paid orders' line items per
// category name, descending by total.
func (s *AnalyticsService) GetCategoryDistribution() ([]CategorySales, error) {
	var rows []CategorySales
	err := s.db.Raw(`
		SELECT COALESCE(c.name, 'Uncategorized') AS category,
		       SUM(oi.qty * oi.price) AS total
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN products p ON p.id = oi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE o.payment_status = ? AND o.deleted_at IS NULL AND oi.deleted_at IS NULL
		GROUP BY c.name
		ORDER BY total DESC
	`, models.PaymentStatusPaid).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category distribution: %w", err)
	}
	return rows, nil
}

// GetTopProducts returns the five highest-revenue products across paid orders.
// The category label prefers the line item's stored label, then the joined
// category name, then "Uncategorized".
func (s *AnalyticsService) GetTopProducts() ([]TopProduct, error) {
	var rows []TopProduct
	err := s.db.Raw(`
		SELECT oi.product_id AS product_id,
		       MAX(oi.name) AS name,
		       COALESCE(NULLIF(MAX(oi.category), ''), MAX(c.name), 'Uncategorized') AS category,
		       SUM(oi.qty) AS units_sold,
		       SUM(oi.qty * oi.price) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN products p ON p.id = oi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE o.payment_status = ? AND o.deleted_at IS NULL AND oi.deleted_at IS NULL
		GROUP BY oi.product_id
		ORDER BY revenue DESC
		LIMIT 5
	`, models.PaymentStatusPaid).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top products: %w", err)
	}
	return rows, nil
}

// GetCustomersReport groups every order by user regardless of payment status,
// left-joining the user profile with placeholder display fields for accounts
// that no longer exist. Sorted by total spent descending.
func (s *AnalyticsService) GetCustomersReport() ([]CustomerReportRow, error) {
	lastPurchase := s.timestampExpr("MAX(o.created_at)")

	var rows []CustomerReportRow
	err := s.db.Raw(`
		SELECT o.user_id AS user_id,
		       COALESCE(u.username, 'Unknown User') AS username,
		       COALESCE(u.email, 'No Email') AS email,
		       COUNT(o.id) AS order_count,
		       SUM(o.total_amount) AS total_spent,
		       COALESCE(SUM(iq.qty), 0) AS total_items,
		       `+lastPurchase+` AS last_purchase
		FROM orders o
		LEFT JOIN (
			SELECT order_id, SUM(qty) AS qty
			FROM order_items
			WHERE deleted_at IS NULL
			GROUP BY order_id
		) iq ON iq.order_id = o.id
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.deleted_at IS NULL
		GROUP BY o.user_id, u.username, u.email
		ORDER BY total_spent DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get customers report: %w", err)
	}
	return rows, nil
}

// GetLowStockProducts lists products below the low-stock threshold, lowest
// stock first, capped at 5.
func (s *AnalyticsService) GetLowStockProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Preload("Category").
		Where("stock < ?", models.LowStockThreshold).
		Order("stock ASC").
		Limit(5).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock products: %w", err)
	}
	return products, nil
}

// GetDashboardStats computes the four headline counters independently; a
// failing counter is logged and reported as zero without failing the others.
func (s *AnalyticsService) GetDashboardStats() *DashboardStats {
	stats := &DashboardStats{}

	err := s.db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to compute total revenue")
	}

	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.UserRoleCustomer).
		Count(&stats.TotalUsers).Error; err != nil {
		logrus.WithError(err).Error("Failed to count users")
	}

	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		logrus.WithError(err).Error("Failed to count orders")
	}

	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		logrus.WithError(err).Error("Failed to count products")
	}

	return stats
}

type CategoryInventory struct {
	Category string  `json:"name"`
	Value    float64 `json:"value"`
}

type Dashboard struct {
	InventoryByCategory   []CategoryInventory `json:"inventoryValueByCategory"`
	HighestPricedProducts []models.Product    `json:"highestPricedProducts"`
	RecentProducts        []models.Product    `json:"recentProducts"`
	RecentPurchases       []models.Order      `json:"recentPurchases"`
}

// GetDashboard assembles the store overview: current inventory value per
// category, the five priciest and five newest products, and the five most
// recent purchases. Individual section failures degrade to empty sections.
func (s *AnalyticsService) GetDashboard() *Dashboard {
	dashboard := &Dashboard{}

	err := s.db.Raw(`
		SELECT COALESCE(c.name, 'Uncategorized') AS category,
		       SUM(p.stock * p.price) AS value
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.deleted_at IS NULL
		GROUP BY c.name
		ORDER BY value DESC
	`).Scan(&dashboard.InventoryByCategory).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to compute inventory value by category")
	}

	err = s.db.Preload("Category").
		Order("price DESC").
		Limit(5).
		Find(&dashboard.HighestPricedProducts).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to load highest priced products")
	}

	err = s.db.Preload("Category").
		Order("created_at DESC").
		Limit(5).
		Find(&dashboard.RecentProducts).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to load recent products")
	}

	err = s.db.Preload("Items").Preload("User").
		Order("created_at DESC").
		Limit(5).
		Find(&dashboard.RecentPurchases).Error
	if err != nil {
		logrus.WithError(err).Error("Failed to load recent purchases")
	}

	return dashboard
}
