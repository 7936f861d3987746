// Package logtail reads the tail of the alertface log for the in-app log
// overlay.
//
// Read keeps a ring buffer of the last N non-blank lines, so memory use is
// bounded by N regardless of file size, and lines come back in file order.
// A missing log file is treated as empty.
//
// Classify marks failure lines (for example "outbox send failed: MSG_BUSY")
// so the overlay can highlight them.
package logtail
