package domain

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"bytes", 512, "512.0 B"},
		{"kilobytes", 2048, "2.0 KB"},
		{"megabytes", 5 * 1024 * 1024, "5.0 MB"},
		{"gigabytes", 3 * 1024 * 1024 * 1024, "3.0 GB"},
		{"zero", 0, "0.0 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.in); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInventory_WithoutMetadata(t *testing.T) {
	inv := &Inventory{
		Files: []InventoryFile{
			{Path: "a.txt", HasMetadata: true},
			{Path: "b.txt", HasMetadata: false},
			{Path: "c.txt", HasMetadata: false},
		},
	}

	missing := inv.WithoutMetadata()
	if len(missing) != 2 {
		t.Fatalf("expected 2 files without metadata, got %d", len(missing))
	}
	if missing[0].Path != "b.txt" || missing[1].Path != "c.txt" {
		t.Errorf("wrong files reported: %+v", missing)
	}
}
