package main

import (
	"context"
	"log"
	"os"

	"digitalstore/internal/config"
	"digitalstore/internal/seed"
	"digitalstore/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	st := store.New(cfg.MongoURL, cfg.DatabaseName, logger)
	defer st.Close(ctx)

	if err := seed.Apply(ctx, st, logger); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
