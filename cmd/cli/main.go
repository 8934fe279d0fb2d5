package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/splits-cli/internal/client/cli"
	"github.com/dmitrijs2005/splits-cli/internal/client/config"
	"github.com/dmitrijs2005/splits-cli/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
