package model

import (
	"strconv"
	"strings"
)

// Size unit multipliers relative to the megabyte target unit
const (
	KBPerMB = 1024.0
	MBPerGB = 1024.0
	MBPerTB = 1024.0 * 1024.0
)

// SizeNotAvailable is the placeholder the database uses for unknown sizes.
const SizeNotAvailable = "N/A"

// sizeUnits lists the recognized unit suffixes for unspaced inputs.
var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// ParseSizeMB converts a human-readable size string (e.g. "3.5 GB", "450MB")
// into a megabyte count for comparison. It accepts spaced and unspaced unit
// forms, is case-insensitive, and strips thousands separators. Anything it
// cannot make sense of resolves to 0 rather than an error, so sorting stays
// total even over dirty records.
func ParseSizeMB(text string) float64 {
	s := strings.ToUpper(strings.TrimSpace(text))
	if s == "" || s == SizeNotAvailable {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")

	var numText, unit string
	parts := strings.Fields(s)
	if len(parts) == 2 {
		numText, unit = parts[0], parts[1]
	} else {
		// Tolerate "3.5GB" / "450MB" with no separating space.
		for _, u := range sizeUnits {
			if strings.HasSuffix(s, u) {
				numText, unit = strings.TrimSpace(strings.TrimSuffix(s, u)), u
				break
			}
		}
		if unit == "" {
			// No recognized unit: treat the whole string as a bare number
			// already in the target unit.
			n, err := strconv.ParseFloat(s, 64)
			if err != nil || n < 0 {
				return 0
			}
			return n
		}
	}

	n, err := strconv.ParseFloat(numText, 64)
	if err != nil || n < 0 {
		return 0
	}

	switch {
	case strings.Contains(unit, "KB"):
		return n / KBPerMB
	case strings.Contains(unit, "MB"):
		return n
	case strings.Contains(unit, "GB"):
		return n * MBPerGB
	case strings.Contains(unit, "TB"):
		return n * MBPerTB
	default:
		return 0
	}
}
