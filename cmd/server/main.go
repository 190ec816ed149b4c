// Command server starts the HTTP API.
//
// Usage:
//
//	server
//
// Configuration is read from CONFIG_PATH (YAML) with environment variable
// overrides; DATABASE_DSN is required.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/fablecraft/fablecraft-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
