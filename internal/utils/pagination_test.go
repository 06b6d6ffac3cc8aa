package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		s    string
		def  int
		want int
	}{
		// absent query param -> default
		{"", 1, 1},
		// valid page numbers
		{"2", 1, 2},
		{"100", 20, 100},
		{"0007", 1, 7},
		// negatives parse; clamping is the caller's job
		{"-3", 1, -3},
		// garbage -> default (no trimming)
		{"two", 1, 1},
		{" 2", 1, 1},
		// overflow -> default
		{"99999999999999999999", 20, 20},
	}

	for _, tc := range cases {
		if got := AtoiDefault(tc.s, tc.def); got != tc.want {
			t.Fatalf("AtoiDefault(%q, %d) = %d; want %d", tc.s, tc.def, got, tc.want)
		}
	}
}
