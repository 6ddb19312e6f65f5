package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"tasklist/internal/config"
	"tasklist/internal/logger"
	"tasklist/internal/manager"
)

func main() {
	demo := flag.Bool("demo", false, "Start with the demo tasks")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	session := manager.NewSession(nil)
	if *demo || cfg.SeedDemo {
		if err := session.SeedDemo(time.Now()); err != nil {
			logger.Error(ctx, err, "seed demo tasks")
			os.Exit(1)
		}
	}

	c := &cli{session: session, out: os.Stdout}
	if err := c.run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
