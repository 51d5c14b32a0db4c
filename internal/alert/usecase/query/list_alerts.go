package query

import (
	"fmt"

	"github.com/nrivas/marketscope/internal/alert/domain"
)

// ListAlertsHandler lists all threshold alerts newest-first with the watched
// listing's name embedded.
type ListAlertsHandler struct {
	repo domain.AlertRepository
}

// NewListAlertsHandler creates a new list alerts handler
func NewListAlertsHandler(repo domain.AlertRepository) *ListAlertsHandler {
	return &ListAlertsHandler{repo: repo}
}

// Handle executes the list alerts query.
func (h *ListAlertsHandler) Handle() ([]domain.AlertRow, error) {
	alerts, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	rows := make([]domain.AlertRow, 0, len(alerts))
	for i := range alerts {
		a := &alerts[i]
		product := "Unknown"
		if a.Listing != nil {
			product = a.Listing.Name
		}
		rows = append(rows, domain.AlertRow{
			ID:             a.ID,
			Kind:           a.Kind,
			Product:        product,
			Condition:      a.Condition,
			ReferenceValue: a.ReferenceValue,
			IsActive:       a.IsActive,
			LastNotifiedAt: a.LastNotifiedAt,
		})
	}

	return rows, nil
}
