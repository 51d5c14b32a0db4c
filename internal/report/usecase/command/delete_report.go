package command

import (
	"fmt"

	"github.com/nrivas/marketscope/internal/report/domain"
)

// DeleteReportCommand represents the command to delete a saved report.
type DeleteReportCommand struct {
	ReportID string
}

// DeleteReportHandler handles report deletion, removing membership rows
// together with the report row.
type DeleteReportHandler struct {
	repo domain.ReportRepository
}

// NewDeleteReportHandler creates a new delete report handler
func NewDeleteReportHandler(repo domain.ReportRepository) *DeleteReportHandler {
	return &DeleteReportHandler{repo: repo}
}

// Handle executes the delete report command.
func (h *DeleteReportHandler) Handle(cmd DeleteReportCommand) error {
	if err := h.repo.Delete(cmd.ReportID); err != nil {
		if err == domain.ErrReportNotFound {
			return err
		}
		return fmt.Errorf("failed to delete report %s: %w", cmd.ReportID, err)
	}
	return nil
}
