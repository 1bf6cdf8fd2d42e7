package ocr

import (
	"strings"
	"testing"
)

func TestRenderTables(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   []string
	}{
		{
			name: "two aligned rows form a block",
			layout: "Revenue      1,200    1,350\n" +
				"EBITDA         350      410\n",
			want: []string{"Revenue | 1,200 | 1,350\nEBITDA | 350 | 410"},
		},
		{
			name:   "lone multi-column line is ignored",
			layout: "Total      9,999\nnarrative paragraph text\n",
			want:   nil,
		},
		{
			name: "prose splits blocks",
			layout: "A    1\nB    2\n" +
				"some narrative sentence\n" +
				"C    3\nD    4\n",
			want: []string{"A | 1\nB | 2", "C | 3\nD | 4"},
		},
		{
			name:   "empty input",
			layout: "",
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderTables(tt.layout)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d blocks, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("block %d:\nwant %q\ngot  %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestSplitColumns(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"Revenue      1,200    1,350", []string{"Revenue", "1,200", "1,350"}},
		{"single sentence with spaces", []string{"single sentence with spaces"}},
		{"   ", nil},
		{"  leading   trailing  ", []string{"leading", "trailing"}},
	}
	for _, tt := range tests {
		got := splitColumns(tt.line)
		if strings.Join(got, "||") != strings.Join(tt.want, "||") {
			t.Errorf("splitColumns(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
