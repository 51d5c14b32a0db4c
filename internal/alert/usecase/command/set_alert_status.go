package command

import (
	"fmt"

	"github.com/nrivas/marketscope/internal/alert/domain"
)

// SetAlertStatusCommand represents the command to activate or deactivate an
// alert.
type SetAlertStatusCommand struct {
	AlertID uint
	Active  bool
}

// SetAlertStatusHandler handles the alert activation toggle.
type SetAlertStatusHandler struct {
	repo domain.AlertRepository
}

// NewSetAlertStatusHandler creates a new set alert status handler
func NewSetAlertStatusHandler(repo domain.AlertRepository) *SetAlertStatusHandler {
	return &SetAlertStatusHandler{repo: repo}
}

// Handle executes the toggle.
func (h *SetAlertStatusHandler) Handle(cmd SetAlertStatusCommand) error {
	if err := h.repo.SetActive(cmd.AlertID, cmd.Active); err != nil {
		if err == domain.ErrAlertNotFound {
			return err
		}
		return fmt.Errorf("failed to update alert %d status: %w", cmd.AlertID, err)
	}
	return nil
}
