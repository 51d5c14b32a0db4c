package command

import (
	"fmt"

	"github.com/nrivas/marketscope/internal/alert/domain"
)

// MarkNotificationReadCommand represents the command to mark one
// notification as read.
type MarkNotificationReadCommand struct {
	NotificationID uint
}

// MarkNotificationReadHandler handles the read-flag update.
type MarkNotificationReadHandler struct {
	repo domain.AlertRepository
}

// NewMarkNotificationReadHandler creates a new mark notification read handler
func NewMarkNotificationReadHandler(repo domain.AlertRepository) *MarkNotificationReadHandler {
	return &MarkNotificationReadHandler{repo: repo}
}

// Handle executes the read-flag update.
func (h *MarkNotificationReadHandler) Handle(cmd MarkNotificationReadCommand) error {
	if err := h.repo.MarkNotificationRead(cmd.NotificationID); err != nil {
		if err == domain.ErrNotificationNotFound {
			return err
		}
		return fmt.Errorf("failed to mark notification %d read: %w", cmd.NotificationID, err)
	}
	return nil
}
