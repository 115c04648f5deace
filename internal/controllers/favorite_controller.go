package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Aslam-01/Food-Managment/internal/apperr"
	"github.com/Aslam-01/Food-Managment/internal/middleware"
	"github.com/Aslam-01/Food-Managment/internal/services"
	"github.com/gin-gonic/gin"
)

// FavoriteController handles the caller's favourite-food endpoints.
type FavoriteController struct {
	favorites services.FavoriteService
}

func NewFavoriteController(favorites services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

// Add marks a product as a favourite of the caller.
func (fc *FavoriteController) Add(ctx *gin.Context) {
	ident, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	product, err := fc.favorites.Add(ident.UserID, id)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Kind == apperr.Conflict {
			ctx.JSON(appErr.Status(), gin.H{"msg": appErr.Message})
			return
		}
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("%s added to favourite", product.Name)})
}

// List serves the caller's favourite products, paginated like the
// catalog. An empty favourites list is a distinguishable terminal
// state, not an empty array.
func (fc *FavoriteController) List(ctx *gin.Context) {
	ident, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	products, err := fc.favorites.ListForUser(ident.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if len(products) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"msg": "You dont have any fvrt food"})
		return
	}
	respondPaginated(ctx, products)
}
