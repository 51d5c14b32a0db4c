package query

import (
	"fmt"

	"github.com/nrivas/marketscope/internal/alert/domain"
)

// DefaultNotificationLimit caps the badge dropdown.
const DefaultNotificationLimit = 10

// ListNotificationsQuery represents the query for recent notifications.
type ListNotificationsQuery struct {
	Limit int
}

// ListNotificationsHandler lists the most recent alert notifications.
type ListNotificationsHandler struct {
	repo domain.AlertRepository
}

// NewListNotificationsHandler creates a new list notifications handler
func NewListNotificationsHandler(repo domain.AlertRepository) *ListNotificationsHandler {
	return &ListNotificationsHandler{repo: repo}
}

// Handle executes the list notifications query.
func (h *ListNotificationsHandler) Handle(q ListNotificationsQuery) ([]domain.NotificationRow, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}

	notifications, err := h.repo.FindNotifications(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	rows := make([]domain.NotificationRow, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		row := domain.NotificationRow{
			ID:         n.ID,
			Message:    n.Message,
			IsRead:     n.IsRead,
			NotifiedAt: n.NotifiedAt,
			Product:    "Unknown",
		}
		if n.Alert != nil {
			row.Kind = n.Alert.Kind
			if n.Alert.Listing != nil {
				row.Product = n.Alert.Listing.Name
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
