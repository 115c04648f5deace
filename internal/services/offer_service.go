package services

import (
	"fmt"
	"math/rand"

	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Offer is a product with an ephemeral discount applied at read time.
// Discounts are never persisted; every call re-rolls them.
type Offer struct {
	models.FoodProduct
	Note string `json:"note"`
}

// OfferService computes randomized special offers over the catalog.
type OfferService interface {
	// RandomOffers picks up to 3 distinct products at random and applies
	// a random discount between 10% and 30% to each.
	RandomOffers() ([]Offer, error)
}

type offerService struct {
	db *gorm.DB
}

func NewOfferService(db *gorm.DB) OfferService {
	return &offerService{db: db}
}

const (
	offerCount     = 3
	minDiscountPct = 10
	maxDiscountPct = 30
)

func (s *offerService) RandomOffers() ([]Offer, error) {
	var ids []uint
	if err := s.db.Model(&models.FoodProduct{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	if len(ids) > offerCount {
		ids = ids[:offerCount]
	}

	offers := make([]Offer, 0, len(ids))
	if len(ids) == 0 {
		return offers, nil
	}

	var products []models.FoodProduct
	err := s.db.Preload("Customizations").Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		pct := minDiscountPct + rand.Intn(maxDiscountPct-minDiscountPct+1)
		product.Price = discounted(product.Price, pct)
		offers = append(offers, Offer{
			FoodProduct: product,
			Note:        fmt.Sprintf("You Get %d%% Off On This Food", pct),
		})
	}
	return offers, nil
}

// discounted returns price reduced by pct percent, rounded to 2 places.
func discounted(price decimal.Decimal, pct int) decimal.Decimal {
	return price.
		Mul(decimal.NewFromInt(int64(100 - pct))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}
