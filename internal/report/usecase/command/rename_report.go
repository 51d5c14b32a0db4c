package command

import (
	"fmt"
	"strings"

	"github.com/nrivas/marketscope/internal/report/domain"
)

// RenameReportCommand represents the command to rename a saved report.
type RenameReportCommand struct {
	ReportID string
	NewName  string
}

// RenameReportHandler handles report renaming. Membership is untouched; only
// the name and updated timestamp change.
type RenameReportHandler struct {
	repo domain.ReportRepository
}

// NewRenameReportHandler creates a new rename report handler
func NewRenameReportHandler(repo domain.ReportRepository) *RenameReportHandler {
	return &RenameReportHandler{repo: repo}
}

// Handle executes the rename report command.
func (h *RenameReportHandler) Handle(cmd RenameReportCommand) error {
	name := strings.TrimSpace(cmd.NewName)
	if name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if err := h.repo.Rename(cmd.ReportID, name); err != nil {
		if err == domain.ErrReportNotFound {
			return err
		}
		return fmt.Errorf("failed to rename report %s: %w", cmd.ReportID, err)
	}

	return nil
}
