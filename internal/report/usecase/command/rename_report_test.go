package command

import (
	"errors"
	"testing"

	"github.com/nrivas/marketscope/internal/report/domain"
)

func TestRenameReport(t *testing.T) {
	repo := newFakeReportRepository()
	repo.reports["r1"] = &domain.ComparisonReport{
		ID:   "r1",
		Name: "Notebooks",
		Members: []domain.ReportMember{
			{ReportID: "r1", BaseProductID: 1},
			{ReportID: "r1", BaseProductID: 2},
		},
	}

	handler := NewRenameReportHandler(repo)

	if err := handler.Handle(RenameReportCommand{ReportID: "r1", NewName: "  Notebooks gamer  "}); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if repo.reports["r1"].Name != "Notebooks gamer" {
		t.Errorf("expected trimmed new name, got %q", repo.reports["r1"].Name)
	}
	if len(repo.reports["r1"].Members) != 2 {
		t.Error("rename must not touch membership")
	}
}

func TestRenameReportRejectsBlankName(t *testing.T) {
	repo := newFakeReportRepository()
	handler := NewRenameReportHandler(repo)

	err := handler.Handle(RenameReportCommand{ReportID: "r1", NewName: "   "})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.renames != 0 {
		t.Error("rejected rename must not touch the repository")
	}
}

func TestRenameReportNotFound(t *testing.T) {
	repo := newFakeReportRepository()
	handler := NewRenameReportHandler(repo)

	err := handler.Handle(RenameReportCommand{ReportID: "missing", NewName: "Notebooks"})
	if !errors.Is(err, domain.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}
