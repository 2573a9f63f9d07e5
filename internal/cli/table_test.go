package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Grade", "Blue"})

	table.AddRow([]string{"50"})
	if len(table.rows[0]) != 2 || table.rows[0][1] != "" {
		t.Errorf("short row not padded: %q", table.rows[0])
	}

	table.AddRow([]string{"60", "#0b57d0", "extra"})
	if len(table.rows[1]) != 2 {
		t.Errorf("long row not truncated: %q", table.rows[1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Grade", "Blue", "Red"})
	table.AddRow([]string{"0", "#ffffff", "#ffffff"})
	table.AddRow([]string{"100", "#000000", "#000000"})

	lines := strings.Split(table.Render(), "\n")
	if len(lines) != 5 { // header + separator + 2 rows + trailing newline
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[1], "-----") {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[0] != "Grade  Blue     Red" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[3] != "100    #000000  #000000" {
		t.Errorf("row = %q", lines[3])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Render() = %q, want empty", out)
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	preview := colour.ColourPreview(colour.RGB{R: 255}, 2)

	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{preview, "x"})
	table.AddRow([]string{"ab", "y"})

	lines := strings.Split(table.Render(), "\n")
	if got := colour.StripANSI(lines[2]); got != "    x" {
		t.Errorf("visible row = %q, want %q", got, "    x")
	}
	if lines[3] != "ab  y" {
		t.Errorf("row = %q", lines[3])
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"}, // Width less than string length
		{"", 5, "     "},
		{"✓", 3, "✓  "},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}
