package model

import (
	"encoding/json"
	"testing"
)

func TestUploadRecord_Decode(t *testing.T) {
	raw := `{
		"id": "att-001",
		"title": "Ubuntu 24.04 ISO",
		"description": "Official release image",
		"size": "3.5 GB",
		"seeds": 120,
		"leeches": 8,
		"magnet": "magnet:?xt=urn:btih:abc&tr=http://a",
		"verified": true
	}`

	var record UploadRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.ID != "att-001" {
		t.Errorf("Expected ID 'att-001', got '%s'", record.ID)
	}
	if record.Title != "Ubuntu 24.04 ISO" {
		t.Errorf("Expected title 'Ubuntu 24.04 ISO', got '%s'", record.Title)
	}
	if record.Seeds != 120 || record.Leeches != 8 {
		t.Errorf("Expected seeds=120 leeches=8, got seeds=%d leeches=%d", record.Seeds, record.Leeches)
	}
	if !record.Verified {
		t.Error("Expected verified to be true")
	}
}

func TestUploadRecord_DecodeDefaults(t *testing.T) {
	// Records may omit optional fields; verified defaults to false and
	// missing display fields are tolerated.
	var record UploadRecord
	if err := json.Unmarshal([]byte(`{"id":"x"}`), &record); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.Verified {
		t.Error("Expected verified to default to false")
	}
	if record.Title != "" {
		t.Errorf("Expected empty title, got '%s'", record.Title)
	}
}

func TestUploadRecord_SizeMB(t *testing.T) {
	record := UploadRecord{Size: "2 GB"}
	if got := record.SizeMB(); got != 2048.0 {
		t.Errorf("SizeMB() = %v, expected 2048", got)
	}
}

func TestUploadRecord_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Some Torrent", "Some Torrent"},
		{"", "Untitled"},
		{"   ", "Untitled"},
	}

	for _, test := range tests {
		record := UploadRecord{Title: test.title}
		if got := record.GetDisplayTitle(); got != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s' = '%s', expected '%s'", test.title, got, test.expected)
		}
	}
}

func TestUploadRecord_ListLabel(t *testing.T) {
	record := UploadRecord{Title: "Ubuntu", Size: "3.5 GB", Seeds: 12}
	expected := "Ubuntu  |  3.5 GB  |  Seeds: 12"
	if got := record.ListLabel(); got != expected {
		t.Errorf("ListLabel() = '%s', expected '%s'", got, expected)
	}

	empty := UploadRecord{}
	expected = "Untitled  |  N/A  |  Seeds: 0"
	if got := empty.ListLabel(); got != expected {
		t.Errorf("ListLabel() on empty record = '%s', expected '%s'", got, expected)
	}
}
