package sources

import (
	"math"
	"testing"
)

func TestParseRational(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 29.97002997002997},
		{"12", 12},
		{"23.976", 23.976},
	}

	for _, tc := range cases {
		got, err := parseRational(tc.in)
		if err != nil {
			t.Errorf("parseRational(%q) failed: %v", tc.in, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("parseRational(%q) = %f, want %f", tc.in, got, tc.want)
		}
	}
}

func TestParseRationalRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "fps", "30/0", "a/b"} {
		if _, err := parseRational(in); err == nil {
			t.Errorf("Expected parseRational(%q) to fail", in)
		}
	}
}
