package model

import "testing"

func TestParseSizeMB(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"", 0.0},
		{"N/A", 0.0},
		{"n/a", 0.0},
		{"garbage", 0.0},
		{"1 GB", 1024.0},
		{"1024 KB", 1.0},
		{"1 TB", 1024 * 1024.0},
		{"1 MB", 1.0},
		{"3.5 GB", 3.5 * 1024.0},
		{"450 MB", 450.0},
		{"3.5GB", 3.5 * 1024.0},
		{"450MB", 450.0},
		{"512KB", 0.5},
		{"2TB", 2 * 1024 * 1024.0},
		{"1,024 MB", 1024.0},
		{"1,048,576 KB", 1024.0},
		{"2 gb", 2048.0},
		{"100", 100.0},
		{"12.5", 12.5},
		{"abc GB", 0.0},
		{"1 XB", 0.0},
		{"  700 MB  ", 700.0},
		{"0 B", 0.0},
	}

	for _, test := range tests {
		result := ParseSizeMB(test.input)
		if result != test.expected {
			t.Errorf("ParseSizeMB(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestParseSizeMB_NeverNegative(t *testing.T) {
	inputs := []string{"-5 GB", "-1", "-0.5MB", "1 GB", "N/A", "junk"}

	for _, input := range inputs {
		if result := ParseSizeMB(input); result < 0 {
			t.Errorf("ParseSizeMB(%q) = %v, expected non-negative", input, result)
		}
	}
}
