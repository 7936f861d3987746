// Package app provides the orchestration layer for alertface.
//
// # Overview
//
// This package wires together configuration, logging, the companion
// transport, the link poller, the watch face and the terminal host. It is
// the composition root: every dependency is built here and handed down.
//
// # Architecture
//
//  1. Load config from ~/.config/alertface/config.toml (defaults if absent)
//  2. Redirect the standard logger to the app log file
//  3. Load display preferences (theme, 12/24 hour clock)
//  4. Build the HTTP transport for the companion
//  5. Launch the link poller against the companion status endpoint
//  6. Build the watch App and run the terminal host until the user quits
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()             companion address, log dir
//	       ├─────> appmsg.NewHTTPTransport() outbox delivery + status
//	       ├─────> StartPoller()             companion link state
//	       ├─────> watch.NewApp()            face + messenger
//	       └─────> ui.Run()                  event loop (blocks)
//
// # Polling Behavior
//
// The poller only reports whether the companion is reachable. It never
// touches the watch face; deliveries go through the messenger on the UI
// event loop. Failures back off exponentially up to 30 seconds and the
// interval resets on the first success.
//
// # Error Handling
//
// Fatal (returned from Run): unreadable config, log file that cannot be
// opened, invalid companion address. Everything else is logged: prefs that
// fail to load fall back to defaults, and an unreachable companion shows up
// as an offline link and as failed sends on the watch.
package app
