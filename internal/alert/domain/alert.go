package domain

import (
	"errors"
	"time"

	catalogdomain "github.com/nrivas/marketscope/internal/catalog/domain"
)

// Alert kinds and comparators, as the ingestion pipeline writes them.
const (
	KindPrice = "price"
	KindStock = "stock"

	ConditionLessThan          = "less_than"
	ConditionGreaterThan       = "greater_than"
	ConditionEqual             = "equal"
	ConditionPercentDifference = "percent_difference"
)

// ErrAlertNotFound is returned when an alert id does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// ErrNotificationNotFound is returned when a notification id does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// Alert is a standing threshold condition on one listing. This service only
// reads alerts and flips their active flag; firing them is the watcher
// pipeline's job.
type Alert struct {
	ID             uint                   `json:"id" gorm:"column:id_alerta;primaryKey"`
	ListingID      uint                   `json:"listing_id" gorm:"column:id_producto"`
	Listing        *catalogdomain.Listing `json:"-" gorm:"foreignKey:ListingID"`
	Kind           string                 `json:"kind" gorm:"column:tipo_alerta"`
	Condition      string                 `json:"condition" gorm:"column:condicion"`
	ReferenceValue float64                `json:"reference_value" gorm:"column:valor_referencia"`
	IsActive       bool                   `json:"is_active" gorm:"column:activa"`
	LastNotifiedAt *time.Time             `json:"last_notified_at" gorm:"column:ultima_notificacion"`
	CreatedAt      time.Time              `json:"created_at" gorm:"column:fecha_creacion"`
	UpdatedAt      time.Time              `json:"updated_at" gorm:"column:fecha_actualizacion"`
}

func (Alert) TableName() string {
	return "alertas"
}

// Notification is an immutable record of a fired alert; only the read flag
// ever changes.
type Notification struct {
	ID         uint      `json:"id" gorm:"column:id_notificacion;primaryKey"`
	AlertID    uint      `json:"alert_id" gorm:"column:id_alerta"`
	Alert      *Alert    `json:"-" gorm:"foreignKey:AlertID"`
	Message    string    `json:"message" gorm:"column:mensaje"`
	IsRead     bool      `json:"is_read" gorm:"column:leida"`
	NotifiedAt time.Time `json:"notified_at" gorm:"column:fecha_notificacion"`
}

func (Notification) TableName() string {
	return "notificaciones_alertas"
}

// AlertRow is one row of the alerts table view.
type AlertRow struct {
	ID             uint       `json:"id"`
	Kind           string     `json:"kind"`
	Product        string     `json:"product"`
	Condition      string     `json:"condition"`
	ReferenceValue float64    `json:"reference_value"`
	IsActive       bool       `json:"is_active"`
	LastNotifiedAt *time.Time `json:"last_notified_at"`
}

// NotificationRow is one entry of the notification badge dropdown.
type NotificationRow struct {
	ID         uint      `json:"id"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	NotifiedAt time.Time `json:"notified_at"`
	Kind       string    `json:"kind,omitempty"`
	Product    string    `json:"product"`
}

// AlertRepository defines the contract for alert data access.
type AlertRepository interface {
	// FindAll returns alerts newest-first with listings embedded.
	FindAll() ([]Alert, error)
	// FindNotifications returns the most recent notifications, alert and
	// listing embedded, capped at limit.
	FindNotifications(limit int) ([]Notification, error)
	// SetActive flips an alert's active flag and bumps its updated
	// timestamp.
	SetActive(id uint, active bool) error
	// MarkNotificationRead marks one notification as read.
	MarkNotificationRead(id uint) error
}
