package views

import (
	"strings"
	"testing"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short unchanged", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello w…"},
		{"multibyte aware", "héllo wörld", 8, "héllo w…"},
		{"tiny budget", "hello", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateText(tt.in, tt.max); got != tt.want {
				t.Errorf("truncateText(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestFirstLines(t *testing.T) {
	t.Run("under limit returns unchanged", func(t *testing.T) {
		if got := firstLines("a\nb", 5); got != "a\nb" {
			t.Errorf("got %q, want %q", got, "a\nb")
		}
	})

	t.Run("strips trailing newline", func(t *testing.T) {
		if got := firstLines("a\nb\n", 5); got != "a\nb" {
			t.Errorf("got %q, want %q", got, "a\nb")
		}
	})

	t.Run("over limit keeps head and marks the rest", func(t *testing.T) {
		got := firstLines("a\nb\nc\nd\ne", 3)
		if !strings.HasPrefix(got, "a\nb\nc\n") {
			t.Errorf("expected first 3 lines kept, got %q", got)
		}
		if !strings.Contains(got, "2 more lines") {
			t.Errorf("expected remainder marker, got %q", got)
		}
	})
}
