package models

import "testing"

func TestCartItemPriceValue(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  float64
	}{
		{"plain integer", "100", 100},
		{"decimal", "100.50", 100.5},
		{"trailing currency", "100 INR", 100},
		{"leading whitespace", "  42", 42},
		{"negative", "-3.5", -3.5},
		{"second dot stops the parse", "1.2.3", 1.2},
		{"explicit plus is junk", "+5", 0},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"currency symbol prefix", "₹100", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := CartItem{Price: tt.price}
			if got := item.PriceValue(); got != tt.want {
				t.Errorf("PriceValue(%q) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}
