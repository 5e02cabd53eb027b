package main

import (
	"flag"
	"log"

	"river-watch/internal/config"
	"river-watch/internal/server"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to the configuration file")
	flag.StringVar(&configPath, "c", "", "path to the configuration file (shorthand)")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
