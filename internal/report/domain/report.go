package domain

import (
	"errors"
	"fmt"
	"time"
)

// GuestUserID is the fixed identity applied when no authenticated user is
// available. All unauthenticated callers of a deployment share this pool of
// reports.
const GuestUserID = "c4d7a458-82e7-4a9b-b35d-b54a09c8e51e"

// ErrReportNotFound is returned when a report id does not exist.
var ErrReportNotFound = errors.New("comparison report not found")

// ValidationError marks caller-supplied input that violates a precondition,
// distinct from datastore failures so the UI can render a field message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ComparisonReport is a named, user-owned snapshot of a base-product id set.
// It references ids only; reopening a report always recomputes the comparison
// against current listing data.
type ComparisonReport struct {
	ID        string         `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"column:nombre;not null"`
	UserID    string         `json:"user_id" gorm:"column:user_id;type:uuid;index"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at"`
	Members   []ReportMember `json:"-" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

func (ComparisonReport) TableName() string {
	return "comparison_reports"
}

// ProductIDs returns the base-product ids referenced by the report.
func (r *ComparisonReport) ProductIDs() []uint {
	ids := make([]uint, 0, len(r.Members))
	for _, m := range r.Members {
		ids = append(ids, m.BaseProductID)
	}
	return ids
}

// ReportMember is one association row between a report and a base product.
// Rows are created atomically with the report and removed with it.
type ReportMember struct {
	ID            uint   `json:"id" gorm:"column:id;primaryKey"`
	ReportID      string `json:"report_id" gorm:"column:report_id;type:uuid;index"`
	BaseProductID uint   `json:"base_product_id" gorm:"column:producto_base_id"`
}

func (ReportMember) TableName() string {
	return "comparison_report_products"
}

// ReportRepository defines the contract for report persistence.
type ReportRepository interface {
	// Create writes the report row and its membership rows in one
	// transaction, so a membership failure never leaves an orphaned report.
	Create(report *ComparisonReport) error
	// FindByUser returns a user's reports newest-first, members loaded.
	FindByUser(userID string) ([]ComparisonReport, error)
	// FindByID returns one report with members, ErrReportNotFound when
	// missing.
	FindByID(id string) (*ComparisonReport, error)
	// Rename updates the name and bumps the updated timestamp.
	Rename(id, newName string) error
	// Delete removes the membership rows and the report row together.
	Delete(id string) error
}
