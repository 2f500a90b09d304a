package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cocosmart/shopcore/internal/backend"
	"github.com/cocosmart/shopcore/internal/checkout"
	"github.com/cocosmart/shopcore/internal/config"
	"github.com/cocosmart/shopcore/internal/domain"
)

// draftFile is the JSON shape expected on disk: customer details plus the
// cart lines to order.
type draftFile struct {
	Customer domain.Customer   `json:"customer"`
	Lines    []domain.CartLine `json:"lines"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <draft.json>\n", os.Args[0])
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read draft file: %v\n", err)
		os.Exit(1)
	}

	var draft draftFile
	if err := json.Unmarshal(raw, &draft); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse draft file: %v\n", err)
		os.Exit(1)
	}

	if err := checkout.ValidateShipping(draft.Customer); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid shipping details: %v\n", err)
		os.Exit(1)
	}

	client := backend.NewClient(cfg.Backend, logger)
	items := backend.ItemsFromLines(draft.Lines)

	ctx := context.Background()
	orderID, err := client.SubmitOrder(ctx, draft.Customer, items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Order submission failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Order created: %s\n", orderID)

	if err := client.RecordIncome(ctx, items, orderID); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Order placed but income record failed: %v\n", err)
		return
	}
	fmt.Println("✅ Income record created")
}
