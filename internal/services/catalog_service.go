// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/shoply/shoply-backend/internal/models"
	"github.com/shoply/shoply-backend/internal/utils"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrStockNegative    = errors.New("stock cannot go negative")
)

type CatalogService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

func NewCatalogService(db *gorm.DB, notificationService *NotificationService) *CatalogService {
	return &CatalogService{
		db:                  db,
		notificationService: notificationService,
	}
}

type CreateProductInput struct {
	Name        string     `json:"name" validate:"required,min=1,max=255"`
	Description string     `json:"description" validate:"max=5000"`
	Price       float64    `json:"price" validate:"required,gt=0"`
	Stock       int        `json:"stock" validate:"min=0"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Image       string     `json:"image" validate:"omitempty,max=512"`
}

type UpdateProductInput struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Price       *float64   `json:"price" validate:"omitempty,gt=0"`
	Stock       *int       `json:"stock" validate:"omitempty,min=0"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Image       *string    `json:"image" validate:"omitempty,max=512"`
}

func (s *CatalogService) GetProducts(params utils.PaginationParams) (*utils.PaginationResult, error) {
	var products []models.Product
	var total int64

	query := s.db.Model(&models.Product{}).Preload("Category")

	if params.Search != "" {
		search := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}

	if params.Category != "" {
		if categoryID, err := uuid.Parse(params.Category); err == nil {
			query = query.Where("category_id = ?", categoryID)
		} else {
			query = query.Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.name = ?", params.Category)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"name", "price", "stock", "rating", "created_at"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	result := utils.CreatePaginationResult(products, total, params)
	return &result, nil
}

func (s *CatalogService) GetProduct(productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Category").First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) CreateProduct(input *CreateProductInput) (*models.Product, error) {
	if input.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		Image:       input.Image,
	}
	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product created")

	return product, nil
}

func (s *CatalogService) UpdateProduct(productID uuid.UUID, input *UpdateProductInput) (*models.Product, error) {
	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	if input.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
		updates["category_id"] = *input.CategoryID
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}

	if len(updates) > 0 {
		if err := s.db.Model(product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.GetProduct(productID)
}

func (s *CatalogService) DeleteProduct(productID uuid.UUID) error {
	product, err := s.GetProduct(productID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// AdjustStock applies a signed delta to a product's stock in one atomic
// update. An adjustment that would push stock below zero is rejected, and a
// low-stock notification is raised when the new level falls below the
// threshold.
func (s *CatalogService) AdjustStock(productID uuid.UUID, delta int) (*models.Product, error) {
	result := s.db.Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", productID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the product is gone or the delta would go negative.
		if _, err := s.GetProduct(productID); err != nil {
			return nil, err
		}
		return nil, ErrStockNegative
	}

	product, err := s.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	if product.Stock < models.LowStockThreshold {
		go s.notificationService.NotifyLowStock(product)
	}

	return product, nil
}

func (s *CatalogService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

func (s *CatalogService) CreateCategory(input *CreateCategoryInput) (*models.Category, error) {
	var existing models.Category
	err := s.db.Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		return nil, ErrCategoryExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}
