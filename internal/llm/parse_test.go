package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
)

func TestDecodeObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    map[string]any
		wantErr error
	}{
		{
			name: "plain object",
			raw:  `{"fund_name":"Alpha","company_name":"Beta"}`,
			want: map[string]any{"fund_name": "Alpha", "company_name": "Beta"},
		},
		{
			name: "fenced with commentary",
			raw:  "Sure! Here is the JSON:\n```json\n{\"a\": 1}\n```",
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "unpaired fence",
			raw:  "```json\n{\"a\": 1}",
			want: map[string]any{"a": float64(1)},
		},
		{
			name: "prose before and after",
			raw:  "The extracted fields are {\"period\": \"FY2023\"} as requested.",
			want: map[string]any{"period": "FY2023"},
		},
		{
			name: "nested object keeps outer span",
			raw:  `{"outer": {"inner": "x"}}`,
			want: map[string]any{"outer": map[string]any{"inner": "x"}},
		},
		{
			name:    "no braces at all",
			raw:     "I could not find any of the requested fields.",
			wantErr: common.ErrNoObject,
		},
		{
			name:    "empty response",
			raw:     "",
			wantErr: common.ErrNoObject,
		},
		{
			name:    "braces but unparseable",
			raw:     `{"a": }`,
			wantErr: common.ErrMalformedResponse,
		},
		{
			name:    "reversed braces",
			raw:     "} nothing here {",
			wantErr: common.ErrNoObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeObject(tt.raw)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error wrapping %v, got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error wrapping %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d keys, got %d (%v)", len(tt.want), len(got), got)
			}
			for k, v := range tt.want {
				if inner, ok := v.(map[string]any); ok {
					gotInner, ok := got[k].(map[string]any)
					if !ok {
						t.Fatalf("key %q: expected nested object, got %v", k, got[k])
					}
					for ik, iv := range inner {
						if gotInner[ik] != iv {
							t.Errorf("key %q.%q: expected %v, got %v", k, ik, iv, gotInner[ik])
						}
					}
					continue
				}
				if got[k] != v {
					t.Errorf("key %q: expected %v, got %v", k, v, got[k])
				}
			}
		})
	}
}

func TestDecodeObjectExcerptBounded(t *testing.T) {
	// A long unparseable span must not flood the error message.
	span := `{"broken": ` + strings.Repeat("x", 5000)
	_, err := DecodeObject(span + "}")
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if !errors.Is(err, common.ErrMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
	if len(err.Error()) > 500 {
		t.Fatalf("error message not bounded: %d bytes", len(err.Error()))
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("short", 10); got != "short" {
		t.Errorf("expected passthrough, got %q", got)
	}
	got := Excerpt(strings.Repeat("a", 20), 10)
	if !strings.HasPrefix(got, strings.Repeat("a", 10)) || !strings.HasSuffix(got, "(truncated)") {
		t.Errorf("unexpected excerpt %q", got)
	}
}
