package query

import (
	"context"
	"errors"
	"testing"

	"github.com/nrivas/marketscope/internal/catalog/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestAssembleComparisonEmptyIDSet(t *testing.T) {
	handler := NewAssembleComparisonHandler(&fakeCatalogRepository{})

	products, err := handler.Handle(context.Background(), AssembleComparisonQuery{})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if products == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %d", len(products))
	}
}

func TestAssembleComparisonExcludesProductsWithoutActiveListings(t *testing.T) {
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{
			{ID: 1, Name: "Laptop Pro 14"},
			{ID: 2, Name: "Laptop Air 13"},
		},
		listings: map[uint][]domain.Listing{
			1: {
				{ID: 11, BaseProductID: 1, Marketplace: "falabella", Price: 899990},
				{ID: 12, BaseProductID: 1, Marketplace: "paris", Price: 879990},
			},
			// base product 2 has no active listings
		},
	}

	handler := NewAssembleComparisonHandler(repo)

	products, err := handler.Handle(context.Background(), AssembleComparisonQuery{BaseProductIDs: []uint{1, 2}})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 comparison row, got %d", len(products))
	}
	if products[0].ID != 1 {
		t.Errorf("expected base product 1, got %d", products[0].ID)
	}
	if len(products[0].Variants) != 2 {
		t.Errorf("expected 2 variants, got %d", len(products[0].Variants))
	}
}

func TestAssembleComparisonIsRepeatable(t *testing.T) {
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{{ID: 1, Name: "Laptop Pro 14"}},
		listings: map[uint][]domain.Listing{
			1: {{ID: 11, BaseProductID: 1, Marketplace: "falabella", Price: 899990}},
		},
		characteristics: map[uint][]domain.Characteristic{
			11: {{ListingID: 11, Name: "RAM", Value: "16GB"}},
		},
	}

	handler := NewAssembleComparisonHandler(repo)

	first, err := handler.Handle(context.Background(), AssembleComparisonQuery{BaseProductIDs: []uint{1}})
	if err != nil {
		t.Fatalf("first Handle returned error: %v", err)
	}
	second, err := handler.Handle(context.Background(), AssembleComparisonQuery{BaseProductIDs: []uint{1}})
	if err != nil {
		t.Fatalf("second Handle returned error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result size changed between runs: %d vs %d", len(first), len(second))
	}
	if first[0].ID != second[0].ID || len(first[0].Variants) != len(second[0].Variants) {
		t.Error("same id set with unchanged data produced different rows")
	}
	if first[0].Characteristics[0] != second[0].Characteristics[0] {
		t.Error("characteristics differ between runs")
	}
}

func TestAssembleComparisonPreservesRequestOrder(t *testing.T) {
	// The fake hands back base products in stored order, like an IN query
	// free to return rows however it likes.
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{
			{ID: 1, Name: "Laptop Air 13"},
			{ID: 2, Name: "Laptop Pro 14"},
			{ID: 3, Name: "Laptop Max 16"},
		},
		listings: map[uint][]domain.Listing{
			1: {{ID: 11, BaseProductID: 1, Price: 749990}},
			2: {{ID: 21, BaseProductID: 2, Price: 899990}},
			3: {{ID: 31, BaseProductID: 3, Price: 1099990}},
		},
	}

	handler := NewAssembleComparisonHandler(repo)

	products, err := handler.Handle(context.Background(), AssembleComparisonQuery{BaseProductIDs: []uint{3, 1, 2, 1, 9}})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	want := []uint{3, 1, 2}
	if len(products) != len(want) {
		t.Fatalf("expected %d comparison rows, got %d", len(want), len(products))
	}
	for i, id := range want {
		if products[i].ID != id {
			t.Errorf("position %d: expected base product %d, got %d", i, id, products[i].ID)
		}
	}
}

func TestAssembleComparisonDropsProductOnListingError(t *testing.T) {
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{
			{ID: 1, Name: "Laptop Pro 14"},
			{ID: 2, Name: "Laptop Air 13"},
		},
		listings: map[uint][]domain.Listing{
			1: {{ID: 11, BaseProductID: 1, Price: 899990}},
			2: {{ID: 21, BaseProductID: 2, Price: 749990}},
		},
		listingsErr: map[uint]error{
			1: errors.New("connection reset"),
		},
	}

	handler := NewAssembleComparisonHandler(repo)

	products, err := handler.Handle(context.Background(), AssembleComparisonQuery{BaseProductIDs: []uint{1, 2}})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 2 {
		t.Fatalf("expected only base product 2 to survive, got %+v", products)
	}
}

func TestAssembleComparisonSetsDiscountPercent(t *testing.T) {
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{{ID: 1, Name: "Laptop Pro 14"}},
		listings: map[uint][]domain.Listing{
			1: {
				{ID: 11, BaseProductID: 1, Price: 80000, PreviousPrice: floatPtr(100000)},
				{ID: 12, BaseProductID: 1, Price: 90000},
			},
		},
	}

	handler := NewAssembleComparisonHandler(repo)

	products, err := handler.Handle(context.Background(), AssembleComparisonQuery{BaseProductIDs: []uint{1}})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	variants := products[0].Variants
	if variants[0].DiscountPercent == nil {
		t.Fatal("expected discount on discounted variant")
	}
	if *variants[0].DiscountPercent != 20 {
		t.Errorf("expected 20%% discount, got %d", *variants[0].DiscountPercent)
	}
	if variants[1].DiscountPercent != nil {
		t.Error("variant without previous price must not show a discount")
	}
}
