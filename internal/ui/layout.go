package ui

import "time"

// Watch screen to terminal cell scaling. A cell is roughly twice as tall as
// it is wide, so one cell covers 4x8 watch pixels.
const (
	// CellWidthPx is the number of watch pixels per terminal column.
	CellWidthPx = 4

	// CellHeightPx is the number of watch pixels per terminal row.
	CellHeightPx = 8
)

// Log overlay limits.
const (
	// LogTailLines is the number of log lines shown in the overlay.
	LogTailLines = 200
)

// Timing constants.
const (
	// DefaultUIInterval is how often the link status and log overlay refresh.
	DefaultUIInterval = time.Second
)
