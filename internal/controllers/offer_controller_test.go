package controllers

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"testing"

	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOffersRequiresAuth(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.request(t, http.MethodGet, "/get-offers/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetOffers(t *testing.T) {
	env := newTestEnv(t, false)
	user := env.createUser(t, "user@example.com", false)

	prices := map[string]string{"A": "10.00", "B": "7.50", "C": "19.99", "D": "4.20", "E": "12.00"}
	for name, price := range prices {
		env.seedProduct(t, name, "Snack", models.ProductTypeVeg, price, 4.0)
	}

	w := env.request(t, http.MethodGet, "/get-offers/", env.tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, w.Code)

	offers := decodeList(t, w)
	require.Len(t, offers, 3)

	noteRe := regexp.MustCompile(`^You Get (\d+)% Off On This Food$`)
	seen := make(map[string]bool)
	for _, offer := range offers {
		name := offer["name"].(string)
		assert.False(t, seen[name], "offers must be distinct products")
		seen[name] = true

		m := noteRe.FindStringSubmatch(offer["note"].(string))
		require.NotNil(t, m, "unexpected note: %v", offer["note"])
		pct, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pct, 10)
		assert.LessOrEqual(t, pct, 30)

		price, err := decimal.NewFromString(fmt.Sprintf("%v", offer["price"]))
		require.NoError(t, err)
		original := decimal.RequireFromString(prices[name])
		assert.True(t, price.LessThanOrEqual(original),
			"discounted price %s exceeds original %s for %s", price, original, name)
	}
}

func TestGetOffersSmallCatalog(t *testing.T) {
	env := newTestEnv(t, false)
	user := env.createUser(t, "user@example.com", false)
	env.seedProduct(t, "Only", "Snack", models.ProductTypeVeg, "10.00", 4.0)

	w := env.request(t, http.MethodGet, "/get-offers/", env.tokenFor(t, user), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)
}
