// internal/handlers/favorite.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/shoply-backend/internal/i18n"
	"github.com/shoply/shoply-backend/internal/services"
	"github.com/shoply/shoply-backend/internal/utils"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// GetFavorites handles GET /api/favorites/:userId.
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user id", nil)
		return
	}

	favorites, err := h.favoriteService.GetFavorites(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, favorites)
}

type addFavoriteRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

// AddFavorite handles POST /api/favorites. A duplicate add reports a conflict
// as a 400 with a distinct message rather than creating a second row.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", nil)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user id", nil)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	favorite, err := h.favoriteService.AddFavorite(userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, services.ErrFavoriteExists):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFavoriteDuplicate), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyFavoriteAdded),
		"favorite": favorite,
	})
}

// RemoveFavorite handles DELETE /api/favorites/:userId/:productId.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user id", nil)
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	if err := h.favoriteService.RemoveFavorite(userID, productID); err != nil {
		if errors.Is(err, services.ErrFavoriteNotFound) {
			utils.NotFoundResponse(c, "favorite")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyFavoriteRemoved)})
}

// CheckFavorite handles GET /api/favorites/check/:userId/:productId.
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user id", nil)
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(userID, productID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"isFavorited": isFavorite})
}
