package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "gold2btc",
		Usage: "estimate gold, silver and bitcoin prices from one another",
		Commands: []*cli.Command{
			serveCommand(),
			convertCommand(),
			tableCommand(),
		},
	}
}
