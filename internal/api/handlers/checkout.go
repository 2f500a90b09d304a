package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cocosmart/shopcore/internal/cart"
	"github.com/cocosmart/shopcore/internal/domain"
	"github.com/cocosmart/shopcore/internal/service"
	"github.com/cocosmart/shopcore/pkg/errors"
)

// BuyNowRequest is an immediate purchase of a single product, bypassing
// the cart.
type BuyNowRequest struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// CheckoutRequest represents the checkout confirmation payload
type CheckoutRequest struct {
	Customer domain.Customer `json:"customer"`
	BuyNow   *BuyNowRequest  `json:"buyNow,omitempty"`
}

func HandleCheckout(store *cart.Store, checkouts *service.CheckoutService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		var draft *domain.CheckoutDraft
		if req.BuyNow != nil {
			draft = domain.BuyNowDraft(req.BuyNow.Product, req.BuyNow.Quantity)
		} else {
			draft = domain.NewDraft(store.Load(c.Request.Context()))
		}
		draft.Customer = req.Customer

		result, err := checkouts.Submit(c.Request.Context(), draft)
		if err != nil {
			switch e := err.(type) {
			case *errors.ErrValidation:
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":   "validation failed",
					"field":   e.Field,
					"details": e.Message,
				})
			case *errors.ErrEmptyCart:
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": "cart is empty",
				})
			case *errors.ErrOrderSubmission:
				// draft is preserved upstream for a retry
				c.JSON(http.StatusBadGateway, gin.H{
					"error":   "order submission failed",
					"details": e.Message,
				})
			default:
				logger.Error("Checkout failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
