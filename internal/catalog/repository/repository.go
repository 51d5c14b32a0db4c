package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/catalog/domain"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) FindActiveBaseProducts(ctx context.Context, categoryIDs []uint) ([]domain.BaseProduct, error) {
	q := r.db.WithContext(ctx).Preload("Category").Where("activo = ?", true)
	if len(categoryIDs) > 0 {
		q = q.Where("id_categoria IN ?", categoryIDs)
	}

	var products []domain.BaseProduct
	err := q.Find(&products).Error
	return products, err
}

func (r *GormCatalogRepository) FindBaseProductsByIDs(ctx context.Context, ids []uint) ([]domain.BaseProduct, error) {
	var products []domain.BaseProduct
	err := r.db.WithContext(ctx).Where("id_producto_base IN ?", ids).Find(&products).Error
	return products, err
}

// applyListingFilter translates the filter set into WHERE clauses. Price and
// date bounds are inclusive; empty multi-valued fields do not constrain.
func applyListingFilter(q *gorm.DB, f domain.ListingFilter) *gorm.DB {
	if len(f.Marketplaces) > 0 {
		q = q.Where("marketplace IN ?", f.Marketplaces)
	}
	if len(f.SellerIDs) > 0 {
		q = q.Where("id_seller IN ?", f.SellerIDs)
	}
	if f.PriceMin != nil {
		q = q.Where("precio >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where("precio <= ?", *f.PriceMax)
	}
	if f.InStockOnly {
		q = q.Where("stock_disponible > 0")
	}
	if f.ExtractedFrom != nil {
		q = q.Where("fecha_extraccion >= ?", *f.ExtractedFrom)
	}
	if f.ExtractedTo != nil {
		q = q.Where("fecha_extraccion <= ?", *f.ExtractedTo)
	}
	return q
}

func (r *GormCatalogRepository) FindFilteredListings(ctx context.Context, baseProductID uint, filter domain.ListingFilter) ([]domain.Listing, error) {
	q := r.db.WithContext(ctx).Preload("Seller").
		Where("id_producto_base = ? AND activo = ?", baseProductID, true)
	q = applyListingFilter(q, filter)

	var listings []domain.Listing
	err := q.Find(&listings).Error
	return listings, err
}

func (r *GormCatalogRepository) FindActiveListings(ctx context.Context, baseProductID uint) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := r.db.WithContext(ctx).Preload("Seller").
		Where("id_producto_base = ? AND activo = ?", baseProductID, true).
		Find(&listings).Error
	return listings, err
}

func (r *GormCatalogRepository) FindAllListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	q := r.db.WithContext(ctx).Preload("Seller").Preload("Category").Where("activo = ?", true)
	if len(filter.CategoryIDs) > 0 {
		q = q.Where("id_categoria IN ?", filter.CategoryIDs)
	}
	q = applyListingFilter(q, filter)

	var listings []domain.Listing
	err := q.Find(&listings).Error
	return listings, err
}

func (r *GormCatalogRepository) FindListingByID(ctx context.Context, id uint) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.WithContext(ctx).Preload("Seller").Preload("Category").Preload("Characteristics").
		First(&listing, "id_producto = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *GormCatalogRepository) FindCharacteristics(ctx context.Context, listingID uint) ([]domain.Characteristic, error) {
	var characteristics []domain.Characteristic
	err := r.db.WithContext(ctx).Where("id_producto = ?", listingID).Find(&characteristics).Error
	return characteristics, err
}

func (r *GormCatalogRepository) CharacteristicFacets(ctx context.Context, categoryID uint) ([]domain.CharacteristicFacet, error) {
	var rows []struct {
		Name  string `gorm:"column:nombre_caracteristica"`
		Value string `gorm:"column:valor_caracteristica"`
	}

	err := r.db.WithContext(ctx).Model(&domain.Characteristic{}).
		Select("caracteristicas.nombre_caracteristica, caracteristicas.valor_caracteristica").
		Joins("JOIN productos ON productos.id_producto = caracteristicas.id_producto").
		Where("productos.activo = ? AND productos.id_categoria = ?", true, categoryID).
		Group("caracteristicas.nombre_caracteristica, caracteristicas.valor_caracteristica").
		Order("caracteristicas.nombre_caracteristica, caracteristicas.valor_caracteristica").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]string)
	for _, row := range rows {
		grouped[row.Name] = append(grouped[row.Name], row.Value)
	}

	facets := make([]domain.CharacteristicFacet, 0, len(grouped))
	for name, values := range grouped {
		facets = append(facets, domain.CharacteristicFacet{Name: name, Values: values})
	}
	sort.Slice(facets, func(i, j int) bool { return facets[i].Name < facets[j].Name })

	return facets, nil
}

func (r *GormCatalogRepository) PriceHistory(ctx context.Context, listingID uint) ([]domain.PricePoint, error) {
	var points []domain.PricePoint
	err := r.db.WithContext(ctx).Preload("Listing").
		Where("id_producto = ?", listingID).
		Order("fecha_registro ASC").
		Find(&points).Error
	return points, err
}

func (r *GormCatalogRepository) StockHistory(ctx context.Context, listingID uint) ([]domain.StockPoint, error) {
	var points []domain.StockPoint
	err := r.db.WithContext(ctx).Where("id_producto = ?", listingID).
		Order("fecha_registro ASC").
		Find(&points).Error
	return points, err
}

func (r *GormCatalogRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).Order("nivel, nombre_categoria").Find(&categories).Error
	return categories, err
}
