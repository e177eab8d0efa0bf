package views

import "testing"

func TestFormatRecordValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "Quarterly Report", "Quarterly Report"},
		{"bool", true, "true"},
		{"whole number", float64(42), "42"},
		{"fractional number", 2.5, "2.5"},
		{"nil", nil, ""},
		{"string array", []any{"finance", "2024"}, "finance, 2024"},
		{"mixed array", []any{"a", float64(1)}, "a, 1"},
		{"nested object", map[string]any{"md5": "abc"}, `{"md5":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRecordValue(tt.in); got != tt.want {
				t.Errorf("formatRecordValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
