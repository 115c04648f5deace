package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aslam-01/Food-Managment/internal/auth"
	"github.com/Aslam-01/Food-Managment/internal/middleware"
	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/Aslam-01/Food-Managment/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	issuer *auth.Issuer
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.FoodProduct{}, &models.Customization{})
	require.NoError(t, err)

	return db
}

// newTestEnv wires the full route table the way cmd/main.go does.
func newTestEnv(t *testing.T, adminOnlyUpdates bool) *testEnv {
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	issuer := auth.NewIssuer("test-jwt-secret-key-32-characters", time.Hour, 24*time.Hour)

	userService := services.NewUserService(db)
	productService := services.NewProductService(db)
	favoriteService := services.NewFavoriteService(db, productService)
	offerService := services.NewOfferService(db)

	authController := NewAuthController(userService, issuer)
	productController := NewProductController(productService)
	favoriteController := NewFavoriteController(favoriteService)
	offerController := NewOfferController(offerService)

	router := gin.New()
	router.POST("/sign-up/", authController.Signup)
	router.POST("/sign-in/", authController.Login)

	router.GET("/products/", productController.List)
	router.GET("/products/:id", productController.Get)
	router.POST("/products/", middleware.JWTAuth(issuer), middleware.RequireAdmin(), productController.Create)
	router.DELETE("/products/:id", middleware.JWTAuth(issuer), middleware.RequireAdmin(), productController.Delete)

	updates := router.Group("/", middleware.JWTAuth(issuer))
	if adminOnlyUpdates {
		updates.Use(middleware.RequireAdmin())
	}
	updates.PUT("/products/:id", productController.Update)
	updates.PATCH("/products/:id", productController.PartialUpdate)

	router.POST("/add-to-fvrt/:id", middleware.JWTAuth(issuer), favoriteController.Add)
	router.GET("/get-fvrt/", middleware.JWTAuth(issuer), favoriteController.List)
	router.GET("/get-offers/", middleware.JWTAuth(issuer), offerController.Get)

	return &testEnv{router: router, db: db, issuer: issuer}
}

func (e *testEnv) createUser(t *testing.T, email string, admin bool) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		FullName: "Test User",
		Age:      30,
		City:     "New York",
		Password: "testpassword",
		IsAdmin:  admin,
	}
	require.NoError(t, user.HashPassword())
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	pair, err := e.issuer.IssueFor(user)
	require.NoError(t, err)
	return pair.Access
}

func (e *testEnv) seedProduct(t *testing.T, name, category, productType, price string, rating float64, customizations ...models.Customization) *models.FoodProduct {
	t.Helper()
	product := &models.FoodProduct{
		Name:           name,
		Description:    name + " description",
		Price:          decimal.RequireFromString(price),
		AverageRating:  rating,
		Category:       category,
		ProductType:    productType,
		Customizations: customizations,
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

// request performs a JSON request against the router. token may be empty
// for unauthenticated calls.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}
