package query

import (
	"context"
	"errors"
	"testing"

	"github.com/nrivas/marketscope/internal/catalog/domain"
)

type fakeCatalogRepository struct {
	bases           []domain.BaseProduct
	basesErr        error
	listings        map[uint][]domain.Listing
	listingsErr     map[uint]error
	characteristics map[uint][]domain.Characteristic
	charErr         map[uint]error
}

func (f *fakeCatalogRepository) FindActiveBaseProducts(ctx context.Context, categoryIDs []uint) ([]domain.BaseProduct, error) {
	return f.bases, f.basesErr
}

func (f *fakeCatalogRepository) FindBaseProductsByIDs(ctx context.Context, ids []uint) ([]domain.BaseProduct, error) {
	var out []domain.BaseProduct
	for _, base := range f.bases {
		for _, id := range ids {
			if base.ID == id {
				out = append(out, base)
				break
			}
		}
	}
	return out, f.basesErr
}

func (f *fakeCatalogRepository) FindFilteredListings(ctx context.Context, baseProductID uint, filter domain.ListingFilter) ([]domain.Listing, error) {
	if err := f.listingsErr[baseProductID]; err != nil {
		return nil, err
	}
	return f.listings[baseProductID], nil
}

func (f *fakeCatalogRepository) FindActiveListings(ctx context.Context, baseProductID uint) ([]domain.Listing, error) {
	if err := f.listingsErr[baseProductID]; err != nil {
		return nil, err
	}
	return f.listings[baseProductID], nil
}

func (f *fakeCatalogRepository) FindAllListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, ls := range f.listings {
		out = append(out, ls...)
	}
	return out, nil
}

func (f *fakeCatalogRepository) FindListingByID(ctx context.Context, id uint) (*domain.Listing, error) {
	for _, ls := range f.listings {
		for i := range ls {
			if ls[i].ID == id {
				return &ls[i], nil
			}
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeCatalogRepository) FindCharacteristics(ctx context.Context, listingID uint) ([]domain.Characteristic, error) {
	if err := f.charErr[listingID]; err != nil {
		return nil, err
	}
	return f.characteristics[listingID], nil
}

func (f *fakeCatalogRepository) CharacteristicFacets(ctx context.Context, categoryID uint) ([]domain.CharacteristicFacet, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) PriceHistory(ctx context.Context, listingID uint) ([]domain.PricePoint, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) StockHistory(ctx context.Context, listingID uint) ([]domain.StockPoint, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

func TestResolveCatalogDropsProductsWithoutSurvivingListings(t *testing.T) {
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{
			{ID: 1, Name: "Laptop Pro 14"},
			{ID: 2, Name: "Laptop Air 13"},
		},
		listings: map[uint][]domain.Listing{
			1: {{ID: 11, BaseProductID: 1, Marketplace: "falabella", Price: 899990}},
			// base product 2 has no listings passing the filter
		},
	}

	handler := NewResolveCatalogHandler(repo)

	products, err := handler.Handle(context.Background(), ResolveCatalogQuery{})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 resolved product, got %d", len(products))
	}
	if products[0].ID != 1 {
		t.Errorf("expected base product 1, got %d", products[0].ID)
	}
	if len(products[0].Variants) != 1 {
		t.Errorf("expected 1 variant, got %d", len(products[0].Variants))
	}
}

func TestResolveCatalogSkipsProductOnListingError(t *testing.T) {
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{
			{ID: 1, Name: "Laptop Pro 14"},
			{ID: 2, Name: "Laptop Air 13"},
		},
		listings: map[uint][]domain.Listing{
			1: {{ID: 11, BaseProductID: 1, Marketplace: "falabella", Price: 899990}},
			2: {{ID: 21, BaseProductID: 2, Marketplace: "paris", Price: 749990}},
		},
		listingsErr: map[uint]error{
			2: errors.New("connection reset"),
		},
	}

	handler := NewResolveCatalogHandler(repo)

	products, err := handler.Handle(context.Background(), ResolveCatalogQuery{})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected the healthy product to survive, got %d products", len(products))
	}
	if products[0].ID != 1 {
		t.Errorf("expected base product 1, got %d", products[0].ID)
	}
}

func TestResolveCatalogFailsWhenBaseQueryFails(t *testing.T) {
	repo := &fakeCatalogRepository{
		basesErr: errors.New("relation does not exist"),
	}

	handler := NewResolveCatalogHandler(repo)

	if _, err := handler.Handle(context.Background(), ResolveCatalogQuery{}); err == nil {
		t.Fatal("expected error when base product query fails")
	}
}

func TestResolveCatalogCharacteristicFilter(t *testing.T) {
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{
			{ID: 1, Name: "Monitor 27"},
			{ID: 2, Name: "Monitor 24"},
		},
		listings: map[uint][]domain.Listing{
			1: {{ID: 11, BaseProductID: 1, Price: 249990}},
			2: {{ID: 21, BaseProductID: 2, Price: 179990}},
		},
		characteristics: map[uint][]domain.Characteristic{
			11: {{ListingID: 11, Name: "Resolución", Value: "4K"}},
			21: {{ListingID: 21, Name: "Resolución", Value: "Full HD"}},
		},
	}

	handler := NewResolveCatalogHandler(repo)

	products, err := handler.Handle(context.Background(), ResolveCatalogQuery{
		Filter: domain.ListingFilter{
			Characteristics: map[string][]string{"Resolución": {"4K"}},
		},
	})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 product matching the characteristic filter, got %d", len(products))
	}
	if products[0].ID != 1 {
		t.Errorf("expected base product 1, got %d", products[0].ID)
	}
}

func TestResolveCatalogSkipsProductOnCharacteristicError(t *testing.T) {
	repo := &fakeCatalogRepository{
		bases: []domain.BaseProduct{{ID: 1, Name: "Monitor 27"}},
		listings: map[uint][]domain.Listing{
			1: {{ID: 11, BaseProductID: 1, Price: 249990}},
		},
		charErr: map[uint]error{
			11: errors.New("timeout"),
		},
	}

	handler := NewResolveCatalogHandler(repo)

	products, err := handler.Handle(context.Background(), ResolveCatalogQuery{})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected product dropped on characteristic error, got %d products", len(products))
	}
}
