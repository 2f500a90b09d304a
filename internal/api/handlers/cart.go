package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/cocosmart/shopcore/internal/cart"
	"github.com/cocosmart/shopcore/internal/checkout"
	"github.com/cocosmart/shopcore/internal/domain"
)

// AddCartItemRequest represents the add-to-cart payload. Quantity may be
// negative: the UI passes the negated current quantity to remove a line.
type AddCartItemRequest struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// CartResponse represents the cart with its derived totals
type CartResponse struct {
	Lines    []domain.CartLine `json:"lines"`
	Totals   domain.Totals     `json:"totals"`
	Currency string            `json:"currency"`
}

func cartResponse(lines []domain.CartLine, cur currency.Unit) CartResponse {
	return CartResponse{
		Lines:    lines,
		Totals:   checkout.ComputeTotals(lines),
		Currency: cur.String(),
	}
}

func HandleGetCart(store *cart.Store, cur currency.Unit, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines := store.Load(c.Request.Context())
		c.JSON(http.StatusOK, cartResponse(lines, cur))
	}
}

func HandleAddCartItem(store *cart.Store, cur currency.Unit, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Product.ID == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": "product.productID is required",
			})
			return
		}

		if err := store.Add(c.Request.Context(), req.Product, req.Quantity); err != nil {
			logger.Error("Failed to update cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}

		lines := store.Load(c.Request.Context())
		c.JSON(http.StatusOK, cartResponse(lines, cur))
	}
}

func HandleRemoveCartItem(store *cart.Store, cur currency.Unit, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productID")
		if err := store.Remove(c.Request.Context(), productID); err != nil {
			logger.Error("Failed to remove cart line", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}

		lines := store.Load(c.Request.Context())
		c.JSON(http.StatusOK, cartResponse(lines, cur))
	}
}

func HandleGetCartTotal(store *cart.Store, cur currency.Unit, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		total := store.Total(c.Request.Context())
		money := domain.NewMoney(total, cur)
		c.JSON(http.StatusOK, gin.H{
			"total":     total,
			"formatted": money.String(),
		})
	}
}
