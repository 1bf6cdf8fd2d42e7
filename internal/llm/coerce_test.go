package llm

import "testing"

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"plain number string", "42", 42},
		{"decimal string", "3.14", 3.14},
		{"currency prose", "$4.2 billion", 4.2},
		{"percent", "65%", 65},
		{"thousands prefix text", "approx. 1200", 1200},
		{"no digits", "not disclosed", 0},
		{"native float", 12.5, 12.5},
		{"native int", 12, 12},
		{"negative keeps magnitude only", "-7.5", 7.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.value); got != tt.want {
				t.Errorf("Number(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("Text(nil) = %q", got)
	}
	if got := Text("  padded  "); got != "padded" {
		t.Errorf("Text trimming failed: %q", got)
	}
	if got := Text(42); got != "42" {
		t.Errorf("Text(42) = %q", got)
	}
}

func TestTextOr(t *testing.T) {
	if got := TextOr(nil, "Unknown Fund"); got != "Unknown Fund" {
		t.Errorf("TextOr(nil) = %q", got)
	}
	if got := TextOr("   ", "fallback"); got != "fallback" {
		t.Errorf("TextOr(blank) = %q", got)
	}
	if got := TextOr("Alpha Fund III", "fallback"); got != "Alpha Fund III" {
		t.Errorf("TextOr(value) = %q", got)
	}
}
