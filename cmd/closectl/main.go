package main

import (
	"context"
	"fmt"
	"os"

	"pagalotodo/internal/bootstrap"
	"pagalotodo/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	if err := newRootCmd(buildApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return bootstrap.Build(ctx, cfg)
}
