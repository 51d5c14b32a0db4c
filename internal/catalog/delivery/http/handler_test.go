package http

import (
	"net/http/httptest"
	"testing"
)

func TestParseListingFilter(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/catalog/products?marketplace=falabella,paris&category=3&seller=7&seller=9"+
			"&price_min=100000&price_max=500000&in_stock=true"+
			"&characteristics=%7B%22RAM%22%3A%5B%2216GB%22%5D%7D", nil)

	f := parseListingFilter(r)

	if len(f.Marketplaces) != 2 || f.Marketplaces[0] != "falabella" || f.Marketplaces[1] != "paris" {
		t.Errorf("marketplaces = %v", f.Marketplaces)
	}
	if len(f.CategoryIDs) != 1 || f.CategoryIDs[0] != 3 {
		t.Errorf("categories = %v", f.CategoryIDs)
	}
	if len(f.SellerIDs) != 2 || f.SellerIDs[0] != 7 || f.SellerIDs[1] != 9 {
		t.Errorf("sellers = %v", f.SellerIDs)
	}
	if f.PriceMin == nil || *f.PriceMin != 100000 {
		t.Errorf("price_min = %v", f.PriceMin)
	}
	if f.PriceMax == nil || *f.PriceMax != 500000 {
		t.Errorf("price_max = %v", f.PriceMax)
	}
	if !f.InStockOnly {
		t.Error("expected in_stock filter")
	}
	if got := f.Characteristics["RAM"]; len(got) != 1 || got[0] != "16GB" {
		t.Errorf("characteristics = %v", f.Characteristics)
	}
}

func TestParseListingFilterEmpty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/catalog/products", nil)

	f := parseListingFilter(r)

	if len(f.Marketplaces) != 0 || len(f.CategoryIDs) != 0 || len(f.SellerIDs) != 0 {
		t.Errorf("expected empty filter, got %+v", f)
	}
	if f.PriceMin != nil || f.PriceMax != nil || f.InStockOnly {
		t.Errorf("expected no price or stock predicates, got %+v", f)
	}
}

func TestParseListingFilterIgnoresMalformedValues(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/catalog/products?price_min=abc&category=xyz&characteristics=notjson", nil)

	f := parseListingFilter(r)

	if f.PriceMin != nil {
		t.Error("malformed price_min must be ignored")
	}
	if len(f.CategoryIDs) != 0 {
		t.Error("malformed category id must be ignored")
	}
	if f.Characteristics != nil {
		t.Error("malformed characteristics JSON must be ignored")
	}
}
