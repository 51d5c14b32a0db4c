package command

import (
	"errors"
	"testing"

	"github.com/nrivas/marketscope/internal/report/domain"
)

func TestDeleteReport(t *testing.T) {
	repo := newFakeReportRepository()
	repo.reports["r1"] = &domain.ComparisonReport{ID: "r1", Name: "Notebooks"}

	handler := NewDeleteReportHandler(repo)

	if err := handler.Handle(DeleteReportCommand{ReportID: "r1"}); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if _, ok := repo.reports["r1"]; ok {
		t.Error("report still present after delete")
	}

	// Deleting again reports the missing id
	err := handler.Handle(DeleteReportCommand{ReportID: "r1"})
	if !errors.Is(err, domain.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound on second delete, got %v", err)
	}
}
