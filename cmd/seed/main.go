package main

import (
	"context"
	"flag"
	"log"
	"os"

	"furniture-storefront/internal/commerce"
	"furniture-storefront/internal/config"
	"furniture-storefront/internal/seed"
)

func main() {
	quantity := flag.Int("quantity", 1, "quantity per product id argument")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	token := os.Getenv("COMMERCE_API_TOKEN")
	if token == "" {
		logger.Fatal("COMMERCE_API_TOKEN is required")
	}

	ctx := commerce.WithToken(context.Background(), token)
	client := commerce.NewClient(cfg.CommerceAPIURL, logger)

	var items []seed.Item
	for _, id := range flag.Args() {
		items = append(items, seed.Item{ProductID: id, Quantity: *quantity})
	}

	if err := seed.Apply(ctx, client, items); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}
	logger.Println("cart seeded")
}
