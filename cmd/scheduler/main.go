package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/vaxscheduler/internal/app"
	"github.com/dmitrijs2005/vaxscheduler/internal/config"
)

func main() {
	// A .env file is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	if err := app.NewApp(cfg).Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
