// Package state holds the companion link status shared between the
// background poller and the terminal UI.
//
// # Overview
//
// The watch face itself is single threaded and keeps its own state. The
// link poller is the only goroutine outside the event loop, so the one
// thing that needs a lock is the record of whether the companion answered
// its last heartbeat:
//
//	Producer (poller):            Consumer (UI):
//	┌─────────────────┐           ┌──────────────────┐
//	│ FetchStatus()   │           │                  │
//	│      ↓          │           │                  │
//	│ store.Update()  │──────────→│ store.Snapshot() │
//	│      ↓          │  (mutex)  │      ↓           │
//	│  repeat...      │           │  status line     │
//	└─────────────────┘           └──────────────────┘
//
// # Update Semantics
//
//	store.Update(status, nil)   // replace status, reset failure count
//	store.Update(nil, err)      // keep status, record err, count failure
//
// Snapshot.IsOffline reports two or more consecutive failures, which the UI
// shows as a disconnected companion.
//
// The zero Store is ready to use.
package state
