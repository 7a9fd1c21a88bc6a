package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Labels
const (
	LabelDatabaseURL = "Database URL:"
	LabelUpdateURL   = "Update URL"
	LabelRefresh     = "Refresh DB"
	LabelSearch      = "Search"
	LabelSortSmall   = "Sort: Smallest"
	LabelSortLarge   = "Sort: Largest"
	LabelDownload    = "Download (Open Magnet)"
	LabelHelp        = "Help"

	SearchPlaceholder = "Search torrents..."
)

// Status bar messages
const (
	StatusFetching = "Fetching uploads..."
	StatusSeedPlea = "Please seed the torrents to support the uploaders!"
)

// Verification badges shown in the info view
const (
	BadgeVerified    = "✔ Verified"
	BadgeNotVerified = "✘ Not Verified"
)

// Layout sizing
const (
	WindowWidth  float32 = 1200
	WindowHeight float32 = 700

	SplitOffset = 0.58

	HelpDialogWidth  float32 = 640
	HelpDialogHeight float32 = 480
)

// Status bar behavior
const (
	StatusMessageTimeout = 4 * time.Second
)
