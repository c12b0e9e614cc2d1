// Package valueobject contains small domain value types and pure helpers.
package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSizeMultiplier(t *testing.T) {
	tests := []struct {
		name   string
		ukuran string
		want   string
	}{
		{"empty string defaults to one", "", "1"},
		{"whitespace only defaults to one", "   ", "1"},
		{"dimension pair multiplies", "2x3", "6"},
		{"asterisk separator multiplies", "2*3", "6"},
		{"uppercase separator multiplies", "2X3", "6"},
		{"decimal dimensions multiply", "1.5x2", "3"},
		{"comma decimal separator is accepted", "1,5x2", "3"},
		{"surrounding spaces are trimmed", " 2 x 3 ", "6"},
		{"single number passes through", "4", "4"},
		{"single decimal number passes through", "2.5", "2.5"},
		{"plain text defaults to one", "A3", "1"},
		{"pair with one bad side defaults to one", "2xbanner", "1"},
		{"double separator defaults to one", "2xx3", "1"},
		{"three dimensions default to one", "2x3x4", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SizeMultiplier(tt.ukuran)
			want, err := decimal.NewFromString(tt.want)
			if err != nil {
				t.Fatalf("bad expectation %q: %v", tt.want, err)
			}
			if !got.Equal(want) {
				t.Errorf("SizeMultiplier(%q) = %s, want %s", tt.ukuran, got, want)
			}
		})
	}
}
