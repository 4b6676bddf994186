package classify

import "testing"

func TestPrice(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"dollar_thousands", "$1,234.56", 1234.56},
		{"plain", "500", 500},
		{"decimal", "$19.99", 19.99},
		{"embedded_text", "asking $250 obo", 250},
		{"empty", "", 0},
		{"words_only", "Free", 0},
		{"lone_dot", ".", 0},
		{"multiple_dots_leading_prefix", "1.2.3", 1.2},
		{"leading_dot", ".50", 0.5},
		{"currency_suffix", "300 USD", 300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Price(tc.in); got != tc.want {
				t.Fatalf("Price(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPriceNeverNegative(t *testing.T) {
	for _, in := range []string{"-100", "($50)", "minus 20"} {
		if got := Price(in); got < 0 {
			t.Fatalf("Price(%q) = %v, want >= 0", in, got)
		}
	}
}
