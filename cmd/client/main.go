package main

import (
	"context"
	"log"

	"skillswap/internal/client/cli"
	"skillswap/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
