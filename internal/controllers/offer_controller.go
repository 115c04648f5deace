package controllers

import (
	"net/http"

	"github.com/Aslam-01/Food-Managment/internal/services"
	"github.com/gin-gonic/gin"
)

// OfferController serves the randomized special offers.
type OfferController struct {
	offers services.OfferService
}

func NewOfferController(offers services.OfferService) *OfferController {
	return &OfferController{offers: offers}
}

// Get returns up to 3 random products with fresh discounts applied.
func (oc *OfferController) Get(ctx *gin.Context) {
	offers, err := oc.offers.RandomOffers()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, offers)
}
