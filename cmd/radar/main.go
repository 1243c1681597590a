package main

import (
	"log"

	"github.com/swingscene/radar/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ radar failed to start: %v", err)
	}
}
