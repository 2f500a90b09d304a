package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"github.com/cocosmart/shopcore/internal/cart"
	"github.com/cocosmart/shopcore/internal/checkout"
	"github.com/cocosmart/shopcore/internal/config"
	"github.com/cocosmart/shopcore/internal/domain"
	"github.com/cocosmart/shopcore/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	kv, err := storage.NewRedis(cfg.Redis, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to cart storage: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	cur, err := currency.ParseISO(cfg.Cart.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid currency code %q: %v\n", cfg.Cart.Currency, err)
		os.Exit(1)
	}

	store := cart.NewStore(kv, cfg.Cart.Key, logger)
	lines := store.Load(context.Background())

	fmt.Printf("🛒 Cart (%d lines):\n", len(lines))
	for _, line := range lines {
		fmt.Printf("  %-20s x%-3d  %s  (labelled %s)\n",
			line.ProductID,
			line.Quantity,
			domain.NewMoney(line.UnitPrice, cur),
			domain.NewMoney(line.LabelledPrice, cur),
		)
	}

	totals := checkout.ComputeTotals(lines)
	fmt.Printf("\nSubtotal: %s\n", domain.NewMoney(totals.Subtotal, cur))
	fmt.Printf("Discount: %s\n", domain.NewMoney(totals.Discount, cur))
	fmt.Printf("Total:    %s\n", domain.NewMoney(totals.Total, cur))
}
