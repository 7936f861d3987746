// Package appmsg models the watch's inter-device messaging subsystem.
//
// # Overview
//
// The watch face talks to its paired companion through a single outbox. A
// sender stages a dictionary with OutboxBegin, writes fields into it, and
// submits it with OutboxSend. The outcome arrives later through one of two
// registered callbacks: sent (acknowledged) or failed (with a Result code).
//
// # Execution Model
//
// Messenger is driven by the host event loop and holds no locks. OutboxSend
// does not perform I/O; it returns a Delivery closure that the host runs off
// the loop (a tea.Cmd in the terminal host). The Outcome is then fed back on
// the loop through Complete, which fires the callbacks:
//
//	event loop                      background
//	──────────                      ──────────
//	OutboxBegin()
//	dict.WriteInt(0, 1)
//	OutboxSend() ── Delivery ─────> transport.Deliver(ctx, msg)
//	                                      │
//	Complete(outcome) <── Outcome ────────┘
//	  ├─> onSent()
//	  └─> onFailed(result)
//
// Only one message may be staged or in flight at a time. OutboxBegin
// returns Busy until the previous message completes.
//
// # Result Codes
//
// Result values mirror the watch SDK's AppMessageResult flags. Translate maps
// every known code to its MSG_* label and everything else to "UNKNOWN ERROR".
//
// # Transport
//
// HTTPTransport carries messages to the companion as JSON:
//
//	POST /api/appmessage
//	{"transaction_id": "<uuid>", "tuples": [{"key": 0, "type": "int", "value": 1}]}
//
//	200 {"result": 0}
//
// Request failures are mapped onto result codes (timeouts to SendTimeout,
// refused connections to NotConnected, 503 to Busy and so on) so the watch
// side only ever deals in Results.
package appmsg
