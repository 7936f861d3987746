package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/alertface/internal/companion"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "companion YAML config path (optional)")
	listen := flag.String("listen", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := companion.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "companion: %v\n", err)
		return 1
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           companion.NewServer(cfg).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("companion listening on %s (fail_with=%s)", cfg.Listen, cfg.FailResult)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "companion: %v\n", err)
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "companion: shutdown: %v\n", err)
			return 1
		}
		log.Printf("companion stopped")
	}
	return 0
}
