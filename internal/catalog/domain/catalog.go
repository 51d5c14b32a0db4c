package domain

import "time"

// The catalog tables are written by the external scraping pipeline; this
// service only reads them. Column names follow the scraper's schema.

// BaseProduct is the canonical, marketplace-independent product identity.
type BaseProduct struct {
	ID          uint      `json:"id" gorm:"column:id_producto_base;primaryKey"`
	Name        string    `json:"name" gorm:"column:nombre"`
	Brand       string    `json:"brand" gorm:"column:marca"`
	Model       string    `json:"model" gorm:"column:modelo"`
	SKU         string    `json:"sku" gorm:"column:sku"`
	Description string    `json:"description" gorm:"column:descripcion"`
	ImageURL    *string   `json:"image_url" gorm:"column:imagen_url"`
	CategoryID  *uint     `json:"category_id" gorm:"column:id_categoria"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsActive    bool      `json:"is_active" gorm:"column:activo"`
}

func (BaseProduct) TableName() string {
	return "productos_base"
}

// CategoryName returns the embedded category name, empty when not loaded.
func (p *BaseProduct) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// Category is a node in the scraped category tree.
type Category struct {
	ID       uint   `json:"id" gorm:"column:id_categoria;primaryKey"`
	Name     string `json:"name" gorm:"column:nombre_categoria"`
	Level    int    `json:"level" gorm:"column:nivel"`
	ParentID *uint  `json:"parent_id" gorm:"column:categoria_padre"`
}

func (Category) TableName() string {
	return "categorias"
}

// Seller is a marketplace-scoped storefront referenced by listings.
type Seller struct {
	ID          uint     `json:"id" gorm:"column:id_seller;primaryKey"`
	Name        string   `json:"name" gorm:"column:nombre_seller"`
	Marketplace string   `json:"marketplace" gorm:"column:marketplace"`
	Rating      *float64 `json:"rating" gorm:"column:calificacion"`
	SalesCount  *int     `json:"sales_count" gorm:"column:numero_ventas"`
	URL         *string  `json:"url" gorm:"column:url_seller"`
	IsActive    bool     `json:"is_active" gorm:"column:activo"`
}

func (Seller) TableName() string {
	return "sellers"
}

// Characteristic is a name/value attribute reported for one listing. Listings
// of the same base product may disagree on the same name; no merging happens
// at this level.
type Characteristic struct {
	ID        uint   `json:"id" gorm:"column:id_caracteristica;primaryKey"`
	ListingID uint   `json:"listing_id" gorm:"column:id_producto"`
	Name      string `json:"name" gorm:"column:nombre_caracteristica"`
	Value     string `json:"value" gorm:"column:valor_caracteristica"`
}

func (Characteristic) TableName() string {
	return "caracteristicas"
}

// PricePoint is one appended row of a listing's price series.
type PricePoint struct {
	ID         uint      `json:"id" gorm:"column:id_historial;primaryKey"`
	ListingID  uint      `json:"listing_id" gorm:"column:id_producto"`
	Price      float64   `json:"price" gorm:"column:precio"`
	Currency   string    `json:"currency" gorm:"column:moneda"`
	RecordedAt time.Time `json:"recorded_at" gorm:"column:fecha_registro"`
	Listing    *Listing  `json:"-" gorm:"foreignKey:ListingID"`
}

func (PricePoint) TableName() string {
	return "historial_precios"
}

// StockPoint is one appended row of a listing's stock series.
type StockPoint struct {
	ID         uint      `json:"id" gorm:"column:id_historial;primaryKey"`
	ListingID  uint      `json:"listing_id" gorm:"column:id_producto"`
	Stock      int       `json:"stock" gorm:"column:stock_disponible"`
	RecordedAt time.Time `json:"recorded_at" gorm:"column:fecha_registro"`
}

func (StockPoint) TableName() string {
	return "historial_stock"
}
