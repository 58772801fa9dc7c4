package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/t4gged/t4gged/internal/client/cli"
	"github.com/t4gged/t4gged/internal/client/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
