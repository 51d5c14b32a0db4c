package query

import (
	"fmt"

	"github.com/nrivas/marketscope/internal/report/domain"
)

// ListReportsQuery represents the query for a user's saved reports.
type ListReportsQuery struct {
	UserID string
}

// ListReportsHandler lists a user's reports newest-first, membership ids
// populated but without resolved product data.
type ListReportsHandler struct {
	repo domain.ReportRepository
}

// NewListReportsHandler creates a new list reports handler
func NewListReportsHandler(repo domain.ReportRepository) *ListReportsHandler {
	return &ListReportsHandler{repo: repo}
}

// Handle executes the list reports query.
func (h *ListReportsHandler) Handle(q ListReportsQuery) ([]domain.ReportView, error) {
	userID := q.UserID
	if userID == "" {
		userID = domain.GuestUserID
	}

	reports, err := h.repo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for user %s: %w", userID, err)
	}

	views := make([]domain.ReportView, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		views = append(views, domain.ReportView{
			ID:         r.ID,
			Name:       r.Name,
			UserID:     r.UserID,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
			ProductIDs: r.ProductIDs(),
		})
	}

	return views, nil
}
