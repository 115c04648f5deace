package controllers

import (
	"fmt"
	"net/http"

	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/Aslam-01/Food-Managment/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductController handles catalog reads and product mutations.
type ProductController struct {
	products services.ProductService
}

func NewProductController(products services.ProductService) *ProductController {
	return &ProductController{products: products}
}

type customizationInput struct {
	Name     string `json:"name" binding:"required"`
	Group    string `json:"group"`
	Toppings string `json:"toppings"`
}

// productInput is the full payload required by POST and PUT.
type productInput struct {
	Name           string               `json:"name" binding:"required"`
	Description    string               `json:"description" binding:"required"`
	Price          *decimal.Decimal     `json:"price" binding:"required"`
	AverageRating  *float64             `json:"average_rating" binding:"required"`
	Category       string               `json:"category" binding:"required"`
	ProductType    string               `json:"product_type" binding:"required,oneof=Veg NonVeg"`
	Customizations []customizationInput `json:"customizations" binding:"required,dive"`
}

// productPatch allows any subset of fields for PATCH.
type productPatch struct {
	Name           *string               `json:"name"`
	Description    *string               `json:"description"`
	Price          *decimal.Decimal      `json:"price"`
	AverageRating  *float64              `json:"average_rating"`
	Category       *string               `json:"category"`
	ProductType    *string               `json:"product_type" binding:"omitempty,oneof=Veg NonVeg"`
	Customizations *[]customizationInput `json:"customizations"`
}

var productFieldNames = map[string]string{
	"AverageRating": "average_rating",
	"ProductType":   "product_type",
}

func toCustomizations(inputs []customizationInput) []models.Customization {
	customizations := make([]models.Customization, len(inputs))
	for i, in := range inputs {
		customizations[i] = models.Customization{
			Name:     in.Name,
			Group:    in.Group,
			Toppings: in.Toppings,
		}
	}
	return customizations
}

// List serves the filtered, optionally paginated catalog. Filters are
// parsed into a typed struct here; the data layer never sees raw query
// parameter names.
func (pc *ProductController) List(ctx *gin.Context) {
	var filter services.Filter

	if v := ctx.Query("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price parameter"})
			return
		}
		filter.MinPrice = &d
	}
	if v := ctx.Query("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price parameter"})
			return
		}
		filter.MaxPrice = &d
	}
	if v := ctx.Query("average_rating"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid average_rating parameter"})
			return
		}
		rating, _ := d.Float64()
		filter.MinRating = &rating
	}
	for _, category := range ctx.QueryArray("category") {
		filter.Categories = append(filter.Categories, capitalize(category))
	}
	if v := ctx.Query("toppings"); v != "" {
		toppings := capitalize(v)
		filter.Toppings = &toppings
	}
	if v := ctx.Query("type"); v != "" {
		productType := capitalize(v)
		filter.ProductType = &productType
	}

	products, err := pc.products.List(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondPaginated(ctx, products)
}

// Get serves a single product with its customizations.
func (pc *ProductController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	product, err := pc.products.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// Create adds a product together with its nested customizations.
func (pc *ProductController) Create(ctx *gin.Context) {
	var input productInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, validationFields(err, productFieldNames))
		return
	}
	if input.Price.IsNegative() {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"price": []string{"Ensure this value is greater than or equal to 0"},
		})
		return
	}

	product := models.FoodProduct{
		Name:           input.Name,
		Description:    input.Description,
		Price:          *input.Price,
		AverageRating:  *input.AverageRating,
		Category:       input.Category,
		ProductType:    input.ProductType,
		Customizations: toCustomizations(input.Customizations),
	}
	if err := pc.products.Create(&product); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"msg": fmt.Sprintf("%s Is Added Successfully", product.Name)})
}

// Update fully replaces a product; all fields are required and a
// supplied customizations list replaces the existing set wholesale.
func (pc *ProductController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var input productInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, validationFields(err, productFieldNames))
		return
	}
	if input.Price.IsNegative() {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"price": []string{"Ensure this value is greater than or equal to 0"},
		})
		return
	}

	customizations := toCustomizations(input.Customizations)
	update := services.ProductUpdate{
		Name:           &input.Name,
		Description:    &input.Description,
		Price:          input.Price,
		AverageRating:  input.AverageRating,
		Category:       &input.Category,
		ProductType:    &input.ProductType,
		Customizations: &customizations,
	}

	product, err := pc.products.Update(id, update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("%s is updated", product.Name)})
}

// PartialUpdate applies any subset of product fields. The same
// customization replacement rule applies when they are supplied.
func (pc *ProductController) PartialUpdate(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var patch productPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, validationFields(err, productFieldNames))
		return
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"price": []string{"Ensure this value is greater than or equal to 0"},
		})
		return
	}

	update := services.ProductUpdate{
		Name:          patch.Name,
		Description:   patch.Description,
		Price:         patch.Price,
		AverageRating: patch.AverageRating,
		Category:      patch.Category,
		ProductType:   patch.ProductType,
	}
	if patch.Customizations != nil {
		customizations := toCustomizations(*patch.Customizations)
		update.Customizations = &customizations
	}

	product, err := pc.products.Update(id, update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("%s is updated", product.Name)})
}

// Delete removes a product, cascading to customizations and favourites.
func (pc *ProductController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	product, err := pc.products.Delete(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("%s deleted", product.Name)})
}
