package command

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nrivas/marketscope/internal/report/domain"
)

// CreateReportCommand represents the command to save a comparison snapshot.
type CreateReportCommand struct {
	Name           string
	UserID         string
	BaseProductIDs []uint
}

// CreateReportHandler handles report creation.
type CreateReportHandler struct {
	repo domain.ReportRepository
}

// NewCreateReportHandler creates a new create report handler
func NewCreateReportHandler(repo domain.ReportRepository) *CreateReportHandler {
	return &CreateReportHandler{repo: repo}
}

// Handle executes the create report command. Validation happens before any
// write, so a rejected command leaves no rows behind.
func (h *CreateReportHandler) Handle(cmd CreateReportCommand) (*domain.ComparisonReport, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(cmd.BaseProductIDs) == 0 {
		return nil, &domain.ValidationError{Field: "product_ids", Reason: "at least one base product is required"}
	}

	userID := cmd.UserID
	if userID == "" {
		userID = domain.GuestUserID
	}

	members := make([]domain.ReportMember, 0, len(cmd.BaseProductIDs))
	for _, id := range cmd.BaseProductIDs {
		members = append(members, domain.ReportMember{BaseProductID: id})
	}

	report := &domain.ComparisonReport{
		ID:      uuid.NewString(),
		Name:    name,
		UserID:  userID,
		Members: members,
	}

	if err := h.repo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}
