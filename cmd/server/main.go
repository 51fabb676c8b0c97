// Command server runs the vNEST backend: REST API, user bootstrapping,
// and the one-time CSV dataset import.
package main

import (
	"context"
	"log"

	"github.com/vnest-fi/vnest-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
