package domain

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestListingDiscountPercent(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		previousPrice *float64
		hasDiscount   bool
		percent       int
	}{
		{"twenty percent drop", 80000, floatPtr(100000), true, 20},
		{"fraction rounds to nearest", 66600, floatPtr(99900), true, 33},
		{"no previous price", 80000, nil, false, 0},
		{"previous equals current", 80000, floatPtr(80000), false, 0},
		{"price increase", 120000, floatPtr(100000), false, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Listing{Price: tt.price, PreviousPrice: tt.previousPrice}

			if got := l.HasDiscount(); got != tt.hasDiscount {
				t.Errorf("HasDiscount() = %v, want %v", got, tt.hasDiscount)
			}
			if got := l.DiscountPercent(); got != tt.percent {
				t.Errorf("DiscountPercent() = %d, want %d", got, tt.percent)
			}
		})
	}
}

func TestListingInStock(t *testing.T) {
	if (&Listing{Stock: 0}).InStock() {
		t.Error("zero stock must not report in stock")
	}
	if !(&Listing{Stock: 3}).InStock() {
		t.Error("positive stock must report in stock")
	}
}

func TestListingSellerName(t *testing.T) {
	l := Listing{}
	if got := l.SellerName(); got != "" {
		t.Errorf("expected empty seller name without relation, got %q", got)
	}

	l.Seller = &Seller{Name: "TecnoStore"}
	if got := l.SellerName(); got != "TecnoStore" {
		t.Errorf("SellerName() = %q, want TecnoStore", got)
	}
}
