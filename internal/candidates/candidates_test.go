package candidates

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "numbered list",
			raw:  "1. Thanks for your reply.\n2. I appreciate your response.\n3. Thank you for getting back to me.",
			want: []string{"Thanks for your reply.", "I appreciate your response.", "Thank you for getting back to me."},
		},
		{
			name: "numbered list with preamble and extras",
			raw:  "Here are some options:\n1. A\n2. B\n3. C\n4. D",
			want: []string{"A", "B", "C"},
		},
		{
			name: "bulleted list",
			raw:  "- first\n* second\n  - third",
			want: []string{"first", "second", "third"},
		},
		{
			name: "fewer than three items falls back to lines",
			raw:  "Intro line\n1. only one\n\nlast",
			want: []string{"Intro line", "1. only one", "last"},
		},
		{
			name: "plain lines",
			raw:  "  alpha  \n\n\nbeta\n",
			want: []string{"alpha", "beta"},
		},
		{
			name: "empty",
			raw:  "",
			want: []string{},
		},
		{
			name: "whitespace only",
			raw:  " \n\t\n ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got == nil {
				t.Fatal("Parse returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseNeverExceedsMax(t *testing.T) {
	inputs := []string{
		"1. a\n2. b\n3. c\n4. d\n5. e",
		"a\nb\nc\nd\ne",
		"- a\n- b",
	}
	for _, raw := range inputs {
		if got := Parse(raw); len(got) > Max {
			t.Fatalf("Parse(%q) returned %d candidates", raw, len(got))
		}
	}
}
