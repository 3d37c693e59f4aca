package shell

import (
	"testing"
)

func TestParseMove(t *testing.T) {
	var tests = []struct {
		input string
		want  int
		ok    bool
	}{
		{"a1", 11, true},
		{"h8", 88, true},
		{"d3", 34, true},
		{"F5", 56, true},
		{" c4 ", 43, true},
		{"i1", 0, false},
		{"a9", 0, false},
		{"a", 0, false},
		{"a10", 0, false},
		{"", 0, false},
		{"quit", 0, false},
	}
	for _, test := range tests {
		var got, ok = ParseMove(test.input)
		if ok != test.ok || (ok && got != test.want) {
			t.Errorf("ParseMove(%q) = %d, %v; want %d, %v",
				test.input, got, ok, test.want, test.ok)
		}
	}
}

func TestFormatMove(t *testing.T) {
	var tests = []struct {
		square int
		want   string
	}{
		{11, "a1"},
		{88, "h8"},
		{34, "d3"},
		{0, "--"},
		{10, "--"},
	}
	for _, test := range tests {
		if got := FormatMove(test.square); got != test.want {
			t.Errorf("FormatMove(%d) = %q, want %q", test.square, got, test.want)
		}
	}
}

func TestMoveNotationRoundTrip(t *testing.T) {
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			var sq = row*10 + col
			var parsed, ok = ParseMove(FormatMove(sq))
			if !ok || parsed != sq {
				t.Fatalf("square %d round-tripped to %d", sq, parsed)
			}
		}
	}
}
