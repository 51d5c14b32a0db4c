package query

import (
	"context"
	"fmt"

	catalogdomain "github.com/nrivas/marketscope/internal/catalog/domain"
	"github.com/nrivas/marketscope/internal/report/domain"
)

// ComparisonAssembler rebuilds the comparison view for a base-product id set.
// Satisfied by the catalog module's assemble handler.
type ComparisonAssembler interface {
	Assemble(ctx context.Context, baseProductIDs []uint) ([]catalogdomain.ComparisonProduct, error)
}

// GetReportQuery represents the query to load one report with its products.
type GetReportQuery struct {
	ReportID string
}

// GetReportHandler loads a report and rehydrates it through the comparison
// assembler. Prices and stock therefore reflect current listing data, not
// the state at save time.
type GetReportHandler struct {
	repo      domain.ReportRepository
	assembler ComparisonAssembler
}

// NewGetReportHandler creates a new get report handler
func NewGetReportHandler(repo domain.ReportRepository, assembler ComparisonAssembler) *GetReportHandler {
	return &GetReportHandler{repo: repo, assembler: assembler}
}

// Handle executes the load. An empty membership yields the report shell with
// an empty product list rather than an error.
func (h *GetReportHandler) Handle(ctx context.Context, q GetReportQuery) (*domain.ReportView, error) {
	report, err := h.repo.FindByID(q.ReportID)
	if err != nil {
		if err == domain.ErrReportNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load report %s: %w", q.ReportID, err)
	}

	view := &domain.ReportView{
		ID:         report.ID,
		Name:       report.Name,
		UserID:     report.UserID,
		CreatedAt:  report.CreatedAt,
		UpdatedAt:  report.UpdatedAt,
		ProductIDs: report.ProductIDs(),
		Products:   []catalogdomain.ComparisonProduct{},
	}

	if len(view.ProductIDs) == 0 {
		return view, nil
	}

	products, err := h.assembler.Assemble(ctx, view.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble products for report %s: %w", q.ReportID, err)
	}
	view.Products = products

	return view, nil
}
