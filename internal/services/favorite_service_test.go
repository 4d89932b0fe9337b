// internal/services/favorite_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoply/shoply-backend/internal/models"
)

type FavoriteServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *FavoriteService
	user    *models.User
	product *models.Product
}

func (s *FavoriteServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.service = NewFavoriteService(s.db)
	s.user = createTestUser(s.T(), s.db, "collector")
	s.product = createTestProduct(s.T(), s.db, "Widget", 9.99, 5)
}

func (s *FavoriteServiceTestSuite) TestAddFavorite() {
	favorite, err := s.service.AddFavorite(s.user.ID, s.product.ID)
	s.Require().NoError(err)
	s.Equal(s.user.ID, favorite.UserID)
	s.Equal(s.product.ID, favorite.ProductID)
	s.Require().NotNil(favorite.Product)
	s.Equal("Widget", favorite.Product.Name)
}

func (s *FavoriteServiceTestSuite) TestAddFavoriteUnknownProduct() {
	_, err := s.service.AddFavorite(s.user.ID, uuid.New())
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *FavoriteServiceTestSuite) TestAddFavoriteTwiceReportsConflict() {
	_, err := s.service.AddFavorite(s.user.ID, s.product.ID)
	s.Require().NoError(err)

	_, err = s.service.AddFavorite(s.user.ID, s.product.ID)
	s.ErrorIs(err, ErrFavoriteExists)

	var count int64
	s.Require().NoError(s.db.Model(&models.Favorite{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *FavoriteServiceTestSuite) TestRemoveFavorite() {
	_, err := s.service.AddFavorite(s.user.ID, s.product.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.service.RemoveFavorite(s.user.ID, s.product.ID))

	isFavorite, err := s.service.IsFavorite(s.user.ID, s.product.ID)
	s.Require().NoError(err)
	s.False(isFavorite)
}

func (s *FavoriteServiceTestSuite) TestRemoveMissingFavorite() {
	err := s.service.RemoveFavorite(s.user.ID, s.product.ID)
	s.ErrorIs(err, ErrFavoriteNotFound)
}

func (s *FavoriteServiceTestSuite) TestGetFavoritesResolvesProducts() {
	category := &models.Category{Name: "Gadgets"}
	s.Require().NoError(s.db.Create(category).Error)
	s.Require().NoError(s.db.Model(s.product).Update("category_id", category.ID).Error)

	second := createTestProduct(s.T(), s.db, "Gadget", 19.99, 3)
	_, err := s.service.AddFavorite(s.user.ID, s.product.ID)
	s.Require().NoError(err)
	_, err = s.service.AddFavorite(s.user.ID, second.ID)
	s.Require().NoError(err)

	favorites, err := s.service.GetFavorites(s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(favorites, 2)

	for _, favorite := range favorites {
		s.Require().NotNil(favorite.Product)
		if favorite.ProductID == s.product.ID {
			s.Require().NotNil(favorite.Product.Category)
			s.Equal("Gadgets", favorite.Product.Category.Name)
		}
	}
}

func (s *FavoriteServiceTestSuite) TestIsFavorite() {
	isFavorite, err := s.service.IsFavorite(s.user.ID, s.product.ID)
	s.Require().NoError(err)
	s.False(isFavorite)

	_, err = s.service.AddFavorite(s.user.ID, s.product.ID)
	s.Require().NoError(err)

	isFavorite, err = s.service.IsFavorite(s.user.ID, s.product.ID)
	s.Require().NoError(err)
	s.True(isFavorite)
}

func TestFavoriteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FavoriteServiceTestSuite))
}
