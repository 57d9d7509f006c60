package main

import (
	"context"
	"log"

	"github.com/MikhailRaia/testpost/internal/app"
	"github.com/MikhailRaia/testpost/internal/config"
	"github.com/MikhailRaia/testpost/internal/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Error creating application: %v", err)
	}

	if err := application.Run(context.Background()); err != nil {
		log.Fatalf("Error running application: %v", err)
	}
}
