package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cocosmart/shopcore/internal/domain"
	"github.com/cocosmart/shopcore/internal/storage"
)

// Store owns the persisted cart: a JSON array of cart lines under a single
// key, unique by product ID. All consumers go through Load/Add/Total; nobody
// touches the raw key directly.
type Store struct {
	kv     storage.KV
	key    string
	logger *zap.Logger
}

func NewStore(kv storage.KV, key string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

// Load returns the current persisted cart. A missing value initializes the
// cart to an empty sequence and persists it; corrupted content is reset the
// same way. Load never fails: the cart is user-facing state, not critical
// data, so storage trouble degrades to an empty cart.
func (s *Store) Load(ctx context.Context) []domain.CartLine {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("Failed to read cart, treating as empty", zap.Error(err))
		return []domain.CartLine{}
	}
	if !ok {
		lines := []domain.CartLine{}
		if err := s.persist(ctx, lines); err != nil {
			s.logger.Warn("Failed to initialize empty cart", zap.Error(err))
		}
		return lines
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.logger.Warn("Corrupted cart content, resetting to empty", zap.Error(err))
		lines = []domain.CartLine{}
		if err := s.persist(ctx, lines); err != nil {
			s.logger.Warn("Failed to reset corrupted cart", zap.Error(err))
		}
		return lines
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines
}

// Add merges a product into the cart by product ID. delta may be negative:
// callers pass the negated quantity to remove a line, and any delta that
// drives an existing line's quantity below 1 removes it. A non-positive
// delta for a product not yet in the cart is a logged no-op.
func (s *Store) Add(ctx context.Context, p domain.Product, delta int) error {
	lines := s.Load(ctx)

	idx := -1
	for i := range lines {
		if lines[i].ProductID == p.ID {
			idx = i
			break
		}
	}

	if idx < 0 {
		if delta < 1 {
			s.logger.Warn("Rejected non-positive quantity for new cart line",
				zap.String("product_id", p.ID),
				zap.Int("quantity", delta),
			)
			return nil
		}
		lines = append(lines, domain.LineFromProduct(p, delta))
	} else {
		newQuantity := lines[idx].Quantity + delta
		if newQuantity < 1 {
			lines = append(lines[:idx], lines[idx+1:]...)
		} else {
			lines[idx].Quantity = newQuantity
		}
	}

	return s.persist(ctx, lines)
}

// Remove deletes the line for a product ID regardless of its quantity.
func (s *Store) Remove(ctx context.Context, productID string) error {
	lines := s.Load(ctx)
	for i := range lines {
		if lines[i].ProductID == productID {
			return s.persist(ctx, append(lines[:i], lines[i+1:]...))
		}
	}
	return nil
}

// Clear empties the cart, e.g. after a successful checkout.
func (s *Store) Clear(ctx context.Context) error {
	return s.persist(ctx, []domain.CartLine{})
}

// Total re-reads the persisted cart and sums selling price times quantity.
// It is recomputed on every call so it always reflects the latest mutation,
// wherever it came from.
func (s *Store) Total(ctx context.Context) decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Load(ctx) {
		total = total.Add(line.LineTotal())
	}
	return total
}

func (s *Store) persist(ctx context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
