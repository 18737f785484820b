package main

import (
	"log"

	"github.com/brujula-viajes/brujula/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ brujula failed to start: %v", err)
	}
}
