package main

import (
	"flag"
	"log"

	"Sketchpad/internal/config"
	"Sketchpad/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML file with swatches and the initial stroke")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Println("Starting Sketchpad")
	if err := ui.RunApp(cfg); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
