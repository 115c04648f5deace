package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allowed values for FoodProduct.ProductType.
const (
	ProductTypeVeg    = "Veg"
	ProductTypeNonVeg = "NonVeg"
)

// FoodProduct is a catalog entry together with its customization groups
// and the set of users who marked it as favourite.
type FoodProduct struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"not null" json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	AverageRating  float64         `json:"average_rating"`
	Category       string          `gorm:"size:50" json:"category"`
	ProductType    string          `gorm:"size:10" json:"product_type"`
	Customizations []Customization `gorm:"constraint:OnDelete:CASCADE" json:"customizations"`
	FavoritedBy    []User          `gorm:"many2many:favourite_foods" json:"-"`
}

// AfterFind restores the two decimal place price scale after scanning.
// SQLite stores the decimal column with numeric affinity, so a stored
// 10.00 comes back as the number 10 and would render as "10".
func (p *FoodProduct) AfterFind(*gorm.DB) error {
	p.Price = p.Price.Round(2)
	return nil
}

// Customization is an add-on group owned by exactly one product.
// It never outlives the product; deleting the product deletes it.
type Customization struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	Group         string `gorm:"size:50" json:"group"`
	Toppings      string `json:"toppings"`
	FoodProductID uint   `gorm:"index;not null" json:"-"`
}
