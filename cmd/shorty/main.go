package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/shorty/internal/app"
	"github.com/five82/shorty/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to "+config.DefaultPath()+")")
	apiURL := flag.String("api", "", "shortening service URL (overrides api_url)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides log_level)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		APIURL:     *apiURL,
		LogLevel:   *logLevel,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "shorty: %v\n", err)
		return 1
	}
	return 0
}
