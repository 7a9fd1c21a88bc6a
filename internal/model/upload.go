package model

import (
	"fmt"
	"strings"
)

// UploadRecord represents a single torrent entry from the uploads database.
// Field names match the remote JSON document exactly; Verified is optional
// and defaults to false when absent.
type UploadRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Size        string `json:"size"` // human readable size (e.g., "3.5 GB")
	Seeds       int    `json:"seeds"`
	Leeches     int    `json:"leeches"`
	Magnet      string `json:"magnet"`
	Verified    bool   `json:"verified"`
}

// Catalog is one fetch snapshot of the uploads database, in document order.
// A snapshot is never mutated in place; a refresh produces a new Catalog.
type Catalog []UploadRecord

// SizeMB returns the record's size normalized to megabytes for comparison.
func (u UploadRecord) SizeMB() float64 {
	return ParseSizeMB(u.Size)
}

// GetDisplayTitle returns the title, or a placeholder when the record has none.
func (u UploadRecord) GetDisplayTitle() string {
	if strings.TrimSpace(u.Title) != "" {
		return u.Title
	}
	return "Untitled"
}

// GetDisplaySize returns the size string, or "N/A" when the record has none.
func (u UploadRecord) GetDisplaySize() string {
	if strings.TrimSpace(u.Size) != "" {
		return u.Size
	}
	return "N/A"
}

// ListLabel returns the one-line list representation used by the front-ends.
func (u UploadRecord) ListLabel() string {
	return fmt.Sprintf("%s  |  %s  |  Seeds: %d", u.GetDisplayTitle(), u.GetDisplaySize(), u.Seeds)
}
