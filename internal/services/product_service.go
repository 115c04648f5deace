package services

import (
	"errors"

	"github.com/Aslam-01/Food-Managment/internal/apperr"
	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Filter is the typed set of optional catalog filters. All set fields
// are ANDed together. Values arrive already normalized; raw request
// field names never reach the query builder.
type Filter struct {
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	MinRating   *float64
	Categories  []string
	Toppings    *string
	ProductType *string
}

// ProductUpdate carries the fields of a full or partial product update.
// Nil fields are left untouched. A non-nil Customizations slice replaces
// the product's customization set wholesale.
type ProductUpdate struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	AverageRating  *float64
	Category       *string
	ProductType    *string
	Customizations *[]models.Customization
}

// ProductService provides catalog reads and admin mutations.
type ProductService interface {
	// List returns products matching the filter, customizations preloaded.
	List(filter Filter) ([]models.FoodProduct, error)
	// GetByID retrieves a product with its customizations.
	GetByID(id uint) (*models.FoodProduct, error)
	// Create persists the product together with its nested customizations
	// in a single transaction.
	Create(product *models.FoodProduct) error
	// Update applies the non-nil fields and returns the updated product.
	Update(id uint, update ProductUpdate) (*models.FoodProduct, error)
	// Delete removes the product, its customizations and favorite links.
	// The deleted product is returned so callers can name it.
	Delete(id uint) (*models.FoodProduct, error)
}

type productService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) ProductService {
	return &productService{db: db}
}

func (s *productService) List(filter Filter) ([]models.FoodProduct, error) {
	q := s.db.Model(&models.FoodProduct{}).Preload("Customizations")

	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		q = q.Where("average_rating >= ?", *filter.MinRating)
	}
	if len(filter.Categories) > 0 {
		q = q.Where("category IN ?", filter.Categories)
	}
	if filter.Toppings != nil {
		sub := s.db.Model(&models.Customization{}).
			Select("food_product_id").
			Where("toppings = ?", *filter.Toppings)
		q = q.Where("id IN (?)", sub)
	}
	if filter.ProductType != nil {
		q = q.Where("product_type = ?", *filter.ProductType)
	}

	var products []models.FoodProduct
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productService) GetByID(id uint) (*models.FoodProduct, error) {
	var product models.FoodProduct
	err := s.db.Preload("Customizations").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("food product not found")
		}
		return nil, err
	}
	return &product, nil
}

func (s *productService) Create(product *models.FoodProduct) error {
	// gorm persists the product and its customizations in one transaction.
	return s.db.Create(product).Error
}

func (s *productService) Update(id uint, update ProductUpdate) (*models.FoodProduct, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if update.Name != nil {
			product.Name = *update.Name
		}
		if update.Description != nil {
			product.Description = *update.Description
		}
		if update.Price != nil {
			product.Price = *update.Price
		}
		if update.AverageRating != nil {
			product.AverageRating = *update.AverageRating
		}
		if update.Category != nil {
			product.Category = *update.Category
		}
		if update.ProductType != nil {
			product.ProductType = *update.ProductType
		}

		if err := tx.Omit("Customizations").Save(product).Error; err != nil {
			return err
		}

		// A supplied customizations payload replaces the existing set
		// wholesale. Delete and recreate inside this transaction so
		// readers never observe the empty window.
		if update.Customizations != nil {
			if err := tx.Where("food_product_id = ?", product.ID).
				Delete(&models.Customization{}).Error; err != nil {
				return err
			}
			replacement := make([]models.Customization, len(*update.Customizations))
			copy(replacement, *update.Customizations)
			for i := range replacement {
				replacement[i].ID = 0
				replacement[i].FoodProductID = product.ID
			}
			if len(replacement) > 0 {
				if err := tx.Create(&replacement).Error; err != nil {
					return err
				}
			}
			product.Customizations = replacement
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(id uint) (*models.FoodProduct, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_product_id = ?", product.ID).
			Delete(&models.Customization{}).Error; err != nil {
			return err
		}
		if err := tx.Model(product).Association("FavoritedBy").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.FoodProduct{}, product.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
