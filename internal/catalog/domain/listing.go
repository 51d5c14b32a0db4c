package domain

import (
	"math"
	"time"
)

// Listing is one marketplace's instance of a base product. Only rows with
// activo = true are ever surfaced by this service.
type Listing struct {
	ID            uint      `json:"id" gorm:"column:id_producto;primaryKey"`
	BaseProductID uint      `json:"base_product_id" gorm:"column:id_producto_base"`
	Name          string    `json:"name" gorm:"column:nombre_producto"`
	Brand         string    `json:"brand" gorm:"column:marca"`
	Model         string    `json:"model" gorm:"column:modelo"`
	SKU           string    `json:"sku" gorm:"column:sku"`
	Marketplace   string    `json:"marketplace" gorm:"column:marketplace"`
	Price         float64   `json:"price" gorm:"column:precio"`
	PreviousPrice *float64  `json:"previous_price" gorm:"column:precio_anterior"`
	Currency      string    `json:"currency" gorm:"column:moneda"`
	Stock         int       `json:"stock" gorm:"column:stock_disponible"`
	URL           string    `json:"url" gorm:"column:url_producto"`
	ImageURL      *string   `json:"image_url" gorm:"column:imagen_url"`
	Description   string    `json:"description" gorm:"column:descripcion"`
	CategoryID    *uint     `json:"category_id" gorm:"column:id_categoria"`
	Category      *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	SellerID      *uint     `json:"seller_id" gorm:"column:id_seller"`
	Seller        *Seller   `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	IsActive      bool      `json:"is_active" gorm:"column:activo"`
	ExtractedAt   time.Time `json:"extracted_at" gorm:"column:fecha_extraccion"`

	Characteristics []Characteristic `json:"-" gorm:"foreignKey:ListingID"`
}

func (Listing) TableName() string {
	return "productos"
}

// InStock reports whether the listing currently has units available.
func (l *Listing) InStock() bool {
	return l.Stock > 0
}

// HasDiscount reports whether the listing carries a price drop. A listing
// without a previous price never shows a discount.
func (l *Listing) HasDiscount() bool {
	return l.PreviousPrice != nil && *l.PreviousPrice > l.Price
}

// DiscountPercent returns the rounded discount percentage against the
// previous price, 0 when there is none.
func (l *Listing) DiscountPercent() int {
	if l.PreviousPrice == nil || *l.PreviousPrice <= 0 {
		return 0
	}
	return int(math.Round((*l.PreviousPrice - l.Price) / *l.PreviousPrice * 100))
}

// SellerName returns the embedded seller name, empty when the listing has no
// seller or the relation was not loaded.
func (l *Listing) SellerName() string {
	if l.Seller == nil {
		return ""
	}
	return l.Seller.Name
}

// ListingFilter is the conjunctive filter set applied when resolving the
// catalog. Multi-valued fields are set-membership within themselves; empty
// fields do not constrain.
type ListingFilter struct {
	Marketplaces    []string
	CategoryIDs     []uint
	SellerIDs       []uint
	PriceMin        *float64
	PriceMax        *float64
	InStockOnly     bool
	ExtractedFrom   *time.Time
	ExtractedTo     *time.Time
	Characteristics map[string][]string
}
