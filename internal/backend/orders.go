package backend

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/cocosmart/shopcore/internal/domain"
	"github.com/cocosmart/shopcore/pkg/errors"
)

// OrderItem is the wire shape for one ordered product. Prices are deliberately
// absent: the server re-prices from its own catalog.
type OrderItem struct {
	ProductID string `json:"productID"`
	Quantity  int    `json:"quantity"`
}

// ItemsFromLines maps checkout lines to their order API wire shape.
func ItemsFromLines(lines []domain.CartLine) []OrderItem {
	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return items
}

type createOrderRequest struct {
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Address string      `json:"address"`
	Items   []OrderItem `json:"items"`
}

type createOrderResponse struct {
	Order struct {
		OrderID string `json:"orderID"`
	} `json:"order"`
}

// SubmitOrder creates the order remotely and returns the server-assigned
// order ID. Transport errors are logged and translated; they are never
// surfaced verbatim to the user.
func (c *Client) SubmitOrder(ctx context.Context, customer domain.Customer, items []OrderItem) (string, error) {
	if len(items) == 0 {
		return "", &errors.ErrEmptyCart{}
	}

	req := createOrderRequest{
		Name:    customer.FullName(),
		Phone:   customer.Phone,
		Address: customer.Address,
		Items:   items,
	}

	status, body, err := c.postJSON(ctx, "/orders", req)
	if err != nil {
		c.logger.Warn("Order API request failed", zap.Error(err))
		return "", &errors.ErrOrderSubmission{}
	}

	if status < 200 || status > 299 {
		c.logger.Warn("Order API rejected order",
			zap.Int("status", status),
			zap.ByteString("body", body),
		)
		return "", &errors.ErrOrderSubmission{
			Message: serverMessage(body),
			Status:  status,
		}
	}

	var resp createOrderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Warn("Order API returned unparseable body", zap.Error(err))
		return "", &errors.ErrOrderSubmission{Status: status}
	}
	if resp.Order.OrderID == "" {
		c.logger.Warn("Order API response missing order ID")
		return "", &errors.ErrOrderSubmission{Status: status}
	}

	c.logger.Info("Order created", zap.String("order_id", resp.Order.OrderID))
	return resp.Order.OrderID, nil
}
