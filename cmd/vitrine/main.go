package main

import (
	"context"
	"log"

	"github.com/brunohmachado/vitrine/internal/cli"
	"github.com/brunohmachado/vitrine/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
