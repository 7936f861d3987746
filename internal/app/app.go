package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/five82/alertface/internal/appmsg"
	"github.com/five82/alertface/internal/config"
	"github.com/five82/alertface/internal/prefs"
	"github.com/five82/alertface/internal/state"
	"github.com/five82/alertface/internal/ui"
	"github.com/five82/alertface/internal/watch"
)

// Options configure the alertface application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/alertface/prefs.toml
	PollEvery  int    // seconds; zero uses default
}

// Run boots the watch face until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := openLog(cfg.LogPath())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	prevOut := log.Writer()
	log.SetOutput(logFile)
	defer log.SetOutput(prevOut)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		log.Printf("load prefs: %v (using defaults)", err)
	}

	transport, err := appmsg.NewHTTPTransport(cfg.CompanionAddr, cfg.SendTimeout)
	if err != nil {
		return fmt.Errorf("init companion transport: %w", err)
	}

	store := &state.Store{}
	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	StartPoller(ctx, store, transport, interval)

	clock := &watch.SystemClock{Use24h: userPrefs.Is24Hour()}
	face := watch.NewApp(clock, appmsg.NewMessenger(transport))

	log.Printf("alertface started; companion %s", cfg.CompanionAddr)
	defer log.Printf("alertface stopped")

	return ui.Run(ui.Options{
		Context:   ctx,
		App:       face,
		Clock:     clock,
		Store:     store,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		LogPath:   cfg.LogPath(),
	})
}

func openLog(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
