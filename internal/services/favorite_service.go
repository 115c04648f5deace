package services

import (
	"github.com/Aslam-01/Food-Managment/internal/apperr"
	"github.com/Aslam-01/Food-Managment/internal/models"
	"gorm.io/gorm"
)

// FavoriteService manages the user/product favourite links.
type FavoriteService interface {
	// Add marks the product as a favourite of the user. Adding a product
	// that is already favourited is rejected with a Conflict error; no
	// duplicate link is ever created.
	Add(userID, productID uint) (*models.FoodProduct, error)
	// ListForUser returns the products the user has favourited.
	ListForUser(userID uint) ([]models.FoodProduct, error)
}

type favoriteService struct {
	db       *gorm.DB
	products ProductService
}

func NewFavoriteService(db *gorm.DB, products ProductService) FavoriteService {
	return &favoriteService{db: db, products: products}
}

func (s *favoriteService) Add(userID, productID uint) (*models.FoodProduct, error) {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}

	var linked int64
	err = s.db.Table("favourite_foods").
		Where("food_product_id = ? AND user_id = ?", productID, userID).
		Count(&linked).Error
	if err != nil {
		return nil, err
	}
	if linked > 0 {
		return product, apperr.Conflictf("%s is already in favourite list", product.Name)
	}

	// Concurrent adds for the same pair are resolved by the composite
	// primary key on the join table, not by application locking.
	err = s.db.Model(product).Association("FavoritedBy").Append(&models.User{ID: userID})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *favoriteService) ListForUser(userID uint) ([]models.FoodProduct, error) {
	var products []models.FoodProduct
	err := s.db.Preload("Customizations").
		Joins("JOIN favourite_foods ON favourite_foods.food_product_id = food_products.id").
		Where("favourite_foods.user_id = ?", userID).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
