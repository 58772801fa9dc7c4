package main

import (
	"context"
	"log"

	"github.com/t4gged/t4gged/internal/server"
	"github.com/t4gged/t4gged/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
