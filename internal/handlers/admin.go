// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/shoply-backend/internal/services"
	"github.com/shoply/shoply-backend/internal/utils"
)

// AdminHandler exposes the read-only reporting endpoints behind the admin
// dashboard.
type AdminHandler struct {
	analyticsService *services.AnalyticsService
	orderService     *services.OrderService
}

func NewAdminHandler(analyticsService *services.AnalyticsService, orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{
		analyticsService: analyticsService,
		orderService:     orderService,
	}
}

func (h *AdminHandler) GetDashboard(c *gin.Context) {
	utils.SuccessResponse(c, h.analyticsService.GetDashboard())
}

func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	utils.SuccessResponse(c, h.analyticsService.GetDashboardStats())
}

func (h *AdminHandler) GetSalesTrend(c *gin.Context) {
	trend, err := h.analyticsService.GetSalesTrend()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, trend)
}

func (h *AdminHandler) GetCategoryDistribution(c *gin.Context) {
	distribution, err := h.analyticsService.GetCategoryDistribution()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, distribution)
}

func (h *AdminHandler) GetTopProducts(c *gin.Context) {
	products, err := h.analyticsService.GetTopProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, products)
}

func (h *AdminHandler) GetLowStockProducts(c *gin.Context) {
	products, err := h.analyticsService.GetLowStockProducts()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, products)
}

func (h *AdminHandler) GetCustomersReport(c *gin.Context) {
	report, err := h.analyticsService.GetCustomersReport()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, report)
}

// GetCustomerOrders handles GET /api/admin/customer-orders/:userId.
func (h *AdminHandler) GetCustomerOrders(c *gin.Context) {
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
