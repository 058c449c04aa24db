package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/cloudvault/internal/server"
	"github.com/dmitrijs2005/cloudvault/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	// Optional .env for local development. Missing file is fine.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
