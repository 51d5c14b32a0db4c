package query

import (
	"errors"
	"testing"

	catalogdomain "github.com/nrivas/marketscope/internal/catalog/domain"
)

type fakeSellerRepository struct {
	sellers     []catalogdomain.Seller
	listings    []catalogdomain.Listing
	listingsErr error
}

func (f *fakeSellerRepository) FindActive(marketplace string) ([]catalogdomain.Seller, error) {
	if marketplace == "" {
		return f.sellers, nil
	}
	var out []catalogdomain.Seller
	for _, s := range f.sellers {
		if s.Marketplace == marketplace {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSellerRepository) FindListingsBySeller(sellerID uint) ([]catalogdomain.Listing, error) {
	var out []catalogdomain.Listing
	for _, l := range f.listings {
		if l.SellerID != nil && *l.SellerID == sellerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeSellerRepository) FindListingsBySellers(sellerIDs []uint, categoryID *uint) ([]catalogdomain.Listing, error) {
	if f.listingsErr != nil {
		return nil, f.listingsErr
	}
	var out []catalogdomain.Listing
	for _, l := range f.listings {
		if l.SellerID == nil {
			continue
		}
		for _, id := range sellerIDs {
			if *l.SellerID == id {
				out = append(out, l)
				break
			}
		}
	}
	return out, nil
}

func uintPtr(v uint) *uint { return &v }

func TestCompareSellersAggregates(t *testing.T) {
	sellerA := catalogdomain.Seller{ID: 1, Name: "TecnoStore", Marketplace: "falabella"}
	sellerB := catalogdomain.Seller{ID: 2, Name: "MegaOfertas", Marketplace: "paris"}

	repo := &fakeSellerRepository{
		listings: []catalogdomain.Listing{
			{ID: 11, SellerID: uintPtr(1), Seller: &sellerA, Price: 100000},
			{ID: 12, SellerID: uintPtr(1), Seller: &sellerA, Price: 200000},
			{ID: 21, SellerID: uintPtr(2), Seller: &sellerB, Price: 50000},
		},
	}

	handler := NewCompareSellersHandler(repo)

	comparisons, err := handler.Handle(CompareSellersQuery{SellerIDs: []uint{1, 2, 3}})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(comparisons) != 2 {
		t.Fatalf("expected 2 sellers in comparison, got %d", len(comparisons))
	}

	// Ordered by seller id
	if comparisons[0].SellerID != 1 || comparisons[1].SellerID != 2 {
		t.Fatalf("unexpected order: %+v", comparisons)
	}
	if comparisons[0].AveragePrice != 150000 {
		t.Errorf("expected average 150000 for seller 1, got %f", comparisons[0].AveragePrice)
	}
	if comparisons[0].ProductCount != 2 {
		t.Errorf("expected 2 products for seller 1, got %d", comparisons[0].ProductCount)
	}
	if comparisons[1].AveragePrice != 50000 {
		t.Errorf("expected average 50000 for seller 2, got %f", comparisons[1].AveragePrice)
	}
	if comparisons[0].Name != "TecnoStore" || comparisons[1].Marketplace != "paris" {
		t.Errorf("seller identity not carried through: %+v", comparisons)
	}
}

func TestCompareSellersEmptyIDSet(t *testing.T) {
	handler := NewCompareSellersHandler(&fakeSellerRepository{})

	comparisons, err := handler.Handle(CompareSellersQuery{})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(comparisons) != 0 {
		t.Fatalf("expected empty comparison, got %d entries", len(comparisons))
	}
}

func TestCompareSellersRepositoryError(t *testing.T) {
	repo := &fakeSellerRepository{listingsErr: errors.New("timeout")}
	handler := NewCompareSellersHandler(repo)

	if _, err := handler.Handle(CompareSellersQuery{SellerIDs: []uint{1}}); err == nil {
		t.Fatal("expected error when listings query fails")
	}
}

func TestListSellersFiltersByMarketplace(t *testing.T) {
	repo := &fakeSellerRepository{
		sellers: []catalogdomain.Seller{
			{ID: 1, Name: "TecnoStore", Marketplace: "falabella"},
			{ID: 2, Name: "MegaOfertas", Marketplace: "paris"},
		},
	}

	handler := NewListSellersHandler(repo)

	rows, err := handler.Handle(ListSellersQuery{Marketplace: "paris"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "MegaOfertas" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
