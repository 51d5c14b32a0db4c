package repository

import (
	"gorm.io/gorm"

	catalogdomain "github.com/nrivas/marketscope/internal/catalog/domain"
)

type GormSellerRepository struct {
	db *gorm.DB
}

func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

func (r *GormSellerRepository) FindActive(marketplace string) ([]catalogdomain.Seller, error) {
	q := r.db.Where("activo = ?", true)
	if marketplace != "" {
		q = q.Where("marketplace = ?", marketplace)
	}

	var sellers []catalogdomain.Seller
	err := q.Find(&sellers).Error
	return sellers, err
}

func (r *GormSellerRepository) FindListingsBySeller(sellerID uint) ([]catalogdomain.Listing, error) {
	var listings []catalogdomain.Listing
	err := r.db.Preload("Category").
		Where("id_seller = ? AND activo = ?", sellerID, true).
		Find(&listings).Error
	return listings, err
}

func (r *GormSellerRepository) FindListingsBySellers(sellerIDs []uint, categoryID *uint) ([]catalogdomain.Listing, error) {
	q := r.db.Preload("Seller").
		Where("id_seller IN ? AND activo = ?", sellerIDs, true)
	if categoryID != nil {
		q = q.Where("id_categoria = ?", *categoryID)
	}

	var listings []catalogdomain.Listing
	err := q.Find(&listings).Error
	return listings, err
}
