package query

import (
	"context"
	"errors"
	"testing"

	catalogdomain "github.com/nrivas/marketscope/internal/catalog/domain"
	"github.com/nrivas/marketscope/internal/report/domain"
)

type fakeReportRepository struct {
	reports map[string]*domain.ComparisonReport
	listErr error
}

func (f *fakeReportRepository) Create(report *domain.ComparisonReport) error {
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepository) FindByUser(userID string) ([]domain.ComparisonReport, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.ComparisonReport
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReportRepository) FindByID(id string) (*domain.ComparisonReport, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return r, nil
}

func (f *fakeReportRepository) Rename(id, newName string) error { return nil }
func (f *fakeReportRepository) Delete(id string) error          { return nil }

type fakeAssembler struct {
	calls    [][]uint
	products []catalogdomain.ComparisonProduct
	err      error
}

func (f *fakeAssembler) Assemble(ctx context.Context, baseProductIDs []uint) ([]catalogdomain.ComparisonProduct, error) {
	f.calls = append(f.calls, baseProductIDs)
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func TestGetReportRehydratesThroughAssembler(t *testing.T) {
	repo := &fakeReportRepository{reports: map[string]*domain.ComparisonReport{
		"r1": {
			ID:     "r1",
			Name:   "Notebooks",
			UserID: domain.GuestUserID,
			Members: []domain.ReportMember{
				{ReportID: "r1", BaseProductID: 5},
				{ReportID: "r1", BaseProductID: 9},
			},
		},
	}}
	assembler := &fakeAssembler{
		products: []catalogdomain.ComparisonProduct{{ID: 5}, {ID: 9}},
	}

	handler := NewGetReportHandler(repo, assembler)

	view, err := handler.Handle(context.Background(), GetReportQuery{ReportID: "r1"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(assembler.calls) != 1 {
		t.Fatalf("expected one assembler call, got %d", len(assembler.calls))
	}
	if got := assembler.calls[0]; len(got) != 2 || got[0] != 5 || got[1] != 9 {
		t.Errorf("assembler received wrong id set: %v", got)
	}
	if len(view.Products) != 2 {
		t.Errorf("expected 2 products in view, got %d", len(view.Products))
	}
}

func TestGetReportEmptyMembershipSkipsAssembler(t *testing.T) {
	repo := &fakeReportRepository{reports: map[string]*domain.ComparisonReport{
		"r1": {ID: "r1", Name: "Vacío", UserID: domain.GuestUserID},
	}}
	assembler := &fakeAssembler{}

	handler := NewGetReportHandler(repo, assembler)

	view, err := handler.Handle(context.Background(), GetReportQuery{ReportID: "r1"})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(assembler.calls) != 0 {
		t.Error("empty membership must not call the assembler")
	}
	if view.Products == nil || len(view.Products) != 0 {
		t.Errorf("expected empty product list, got %v", view.Products)
	}
}

func TestGetReportNotFound(t *testing.T) {
	repo := &fakeReportRepository{reports: map[string]*domain.ComparisonReport{}}
	handler := NewGetReportHandler(repo, &fakeAssembler{})

	_, err := handler.Handle(context.Background(), GetReportQuery{ReportID: "missing"})
	if !errors.Is(err, domain.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}

func TestGetReportAssemblerFailure(t *testing.T) {
	repo := &fakeReportRepository{reports: map[string]*domain.ComparisonReport{
		"r1": {
			ID:      "r1",
			Name:    "Notebooks",
			Members: []domain.ReportMember{{ReportID: "r1", BaseProductID: 5}},
		},
	}}
	assembler := &fakeAssembler{err: errors.New("catalog unavailable")}

	handler := NewGetReportHandler(repo, assembler)

	if _, err := handler.Handle(context.Background(), GetReportQuery{ReportID: "r1"}); err == nil {
		t.Fatal("expected error when assembler fails")
	}
}

func TestListReportsDefaultsToGuest(t *testing.T) {
	repo := &fakeReportRepository{reports: map[string]*domain.ComparisonReport{
		"r1": {ID: "r1", Name: "Notebooks", UserID: domain.GuestUserID},
		"r2": {ID: "r2", Name: "Ajeno", UserID: "8a4f2a9e-1f2b-4f7e-9c3a-0d5f6e7a8b9c"},
	}}

	handler := NewListReportsHandler(repo)

	views, err := handler.Handle(ListReportsQuery{})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected only the guest report, got %d", len(views))
	}
	if views[0].ID != "r1" {
		t.Errorf("expected report r1, got %s", views[0].ID)
	}
}
