package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavorite(t *testing.T) {
	env := newTestEnv(t, false)
	user := env.createUser(t, "user@example.com", false)
	product := env.seedProduct(t, "Margherita", "Pizza", models.ProductTypeVeg, "10.00", 4.5)

	w := env.request(t, http.MethodPost, fmt.Sprintf("/add-to-fvrt/%d", product.ID), env.tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Margherita added to favourite", decodeBody(t, w)["msg"])
}

func TestAddFavoriteTwice(t *testing.T) {
	env := newTestEnv(t, false)
	user := env.createUser(t, "user@example.com", false)
	product := env.seedProduct(t, "Margherita", "Pizza", models.ProductTypeVeg, "10.00", 4.5)
	token := env.tokenFor(t, user)
	path := fmt.Sprintf("/add-to-fvrt/%d", product.ID)

	w := env.request(t, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Margherita is already in favourite list", decodeBody(t, w)["msg"])

	var links int64
	require.NoError(t, env.db.Table("favourite_foods").
		Where("food_product_id = ? AND user_id = ?", product.ID, user.ID).
		Count(&links).Error)
	assert.EqualValues(t, 1, links)
}

func TestAddFavoriteUnknownProductID(t *testing.T) {
	env := newTestEnv(t, false)
	user := env.createUser(t, "user@example.com", false)

	w := env.request(t, http.MethodPost, "/add-to-fvrt/999", env.tokenFor(t, user), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddFavoriteRequiresAuth(t *testing.T) {
	env := newTestEnv(t, false)
	product := env.seedProduct(t, "Margherita", "Pizza", models.ProductTypeVeg, "10.00", 4.5)

	w := env.request(t, http.MethodPost, fmt.Sprintf("/add-to-fvrt/%d", product.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListFavorites(t *testing.T) {
	env := newTestEnv(t, false)
	user := env.createUser(t, "user@example.com", false)
	token := env.tokenFor(t, user)

	pizza := env.seedProduct(t, "Margherita", "Pizza", models.ProductTypeVeg, "10.00", 4.5)
	burger := env.seedProduct(t, "Burger", "Burger", models.ProductTypeNonVeg, "8.00", 3.5)
	for _, id := range []uint{pizza.ID, burger.ID} {
		w := env.request(t, http.MethodPost, fmt.Sprintf("/add-to-fvrt/%d", id), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.request(t, http.MethodGet, "/get-fvrt/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	// Paginated form
	w = env.request(t, http.MethodGet, "/get-fvrt/?limit=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["count"])
	assert.Len(t, body["results"].([]interface{}), 1)
}

func TestListFavoritesEmptyIsNotFound(t *testing.T) {
	env := newTestEnv(t, false)
	user := env.createUser(t, "user@example.com", false)

	w := env.request(t, http.MethodGet, "/get-fvrt/", env.tokenFor(t, user), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "You dont have any fvrt food", decodeBody(t, w)["msg"])
}
