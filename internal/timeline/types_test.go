package timeline

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"blue", ColorBlue},
		{"GREEN", ColorGreen},
		{" red ", ColorRed},
		{"default", ColorDefault},
		{"chartreuse", ColorDefault},
		{"", ColorDefault},
	}

	for _, tt := range tests {
		if got := ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range Colors() {
		if got := ParseColor(c.String()); got != c {
			t.Errorf("ParseColor(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("event")
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
