package domain

import (
	"time"

	catalogdomain "github.com/nrivas/marketscope/internal/catalog/domain"
)

// ReportView is a report projected for rendering. Products is populated only
// by the single-report load path; the list path carries ids alone.
type ReportView struct {
	ID         string                            `json:"id"`
	Name       string                            `json:"name"`
	UserID     string                            `json:"user_id"`
	CreatedAt  time.Time                         `json:"created_at"`
	UpdatedAt  time.Time                         `json:"updated_at"`
	ProductIDs []uint                            `json:"product_ids"`
	Products   []catalogdomain.ComparisonProduct `json:"products,omitempty"`
}
