package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cocosmart/shopcore/pkg/errors"
)

type createIncomeRequest struct {
	Items   []OrderItem `json:"items"`
	OrderID string      `json:"orderID"`
}

// RecordIncome creates the income record linked to an already-placed order.
// This is the second step of the submission pipeline and only ever runs
// after SubmitOrder succeeded. A failure here does not undo the order: there
// is no compensating transaction, the caller reports it as a warning.
func (c *Client) RecordIncome(ctx context.Context, items []OrderItem, orderID string) error {
	req := createIncomeRequest{
		Items:   items,
		OrderID: orderID,
	}

	status, body, err := c.postJSON(ctx, "/finances/createByOrder", req)
	if err != nil {
		c.logger.Warn("Finance API request failed",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return &errors.ErrFinanceRecord{OrderID: orderID, Cause: err}
	}

	if status < 200 || status > 299 {
		c.logger.Warn("Finance API rejected income record",
			zap.String("order_id", orderID),
			zap.Int("status", status),
			zap.ByteString("body", body),
		)
		cause := fmt.Errorf("finance API returned %d", status)
		if msg := serverMessage(body); msg != "" {
			cause = fmt.Errorf("finance API returned %d: %s", status, msg)
		}
		return &errors.ErrFinanceRecord{OrderID: orderID, Cause: cause}
	}

	c.logger.Info("Income record created", zap.String("order_id", orderID))
	return nil
}
