package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Gunvolt24/customer-api/config"
	"github.com/Gunvolt24/customer-api/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	_ = a.Run(ctx)
}
