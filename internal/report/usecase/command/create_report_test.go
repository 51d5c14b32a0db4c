package command

import (
	"errors"
	"testing"

	"github.com/nrivas/marketscope/internal/report/domain"
)

type fakeReportRepository struct {
	reports   map[string]*domain.ComparisonReport
	createErr error
	renameErr error
	deleteErr error
	creates   int
	renames   int
	deletes   int
}

func newFakeReportRepository() *fakeReportRepository {
	return &fakeReportRepository{reports: make(map[string]*domain.ComparisonReport)}
}

func (f *fakeReportRepository) Create(report *domain.ComparisonReport) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepository) FindByUser(userID string) ([]domain.ComparisonReport, error) {
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

func (f *fakeReportRepository) Rename(id, newName string) error {
	f.renames++
	if f.renameErr != nil {
		return f.renameErr
	}
	r, ok := f.reports[id]
	if !ok {
		return domain.ErrReportNotFound
	}
	r.Name = newName
	return nil
}

func (f *fakeReportRepository) Delete(id string) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.reports[id]; !ok {
		return domain.ErrReportNotFound
	}
	delete(f.reports, id)
	return nil
}

func TestCreateReport(t *testing.T) {
	repo := newFakeReportRepository()
	handler := NewCreateReportHandler(repo)

	report, err := handler.Handle(CreateReportCommand{
		Name:           "Notebooks agosto",
		BaseProductIDs: []uint{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if report.ID == "" {
		t.Error("expected generated report id")
	}
	if report.UserID != domain.GuestUserID {
		t.Errorf("expected guest user id, got %q", report.UserID)
	}
	if got := report.ProductIDs(); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("unexpected membership: %v", got)
	}
	if _, ok := repo.reports[report.ID]; !ok {
		t.Error("report not persisted")
	}
}

func TestCreateReportTrimsName(t *testing.T) {
	repo := newFakeReportRepository()
	handler := NewCreateReportHandler(repo)

	report, err := handler.Handle(CreateReportCommand{
		Name:           "  Monitores  ",
		BaseProductIDs: []uint{7},
	})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if report.Name != "Monitores" {
		t.Errorf("expected trimmed name, got %q", report.Name)
	}
}

func TestCreateReportRejectsInvalidInputWithoutWriting(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateReportCommand
	}{
		{"empty name", CreateReportCommand{Name: "", BaseProductIDs: []uint{1}}},
		{"blank name", CreateReportCommand{Name: "   ", BaseProductIDs: []uint{1}}},
		{"no products", CreateReportCommand{Name: "Notebooks"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeReportRepository()
			handler := NewCreateReportHandler(repo)

			_, err := handler.Handle(tt.cmd)

			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if repo.creates != 0 {
				t.Error("rejected command must not touch the repository")
			}
		})
	}
}

func TestCreateReportKeepsExplicitUser(t *testing.T) {
	repo := newFakeReportRepository()
	handler := NewCreateReportHandler(repo)

	report, err := handler.Handle(CreateReportCommand{
		Name:           "Notebooks",
		UserID:         "8a4f2a9e-1f2b-4f7e-9c3a-0d5f6e7a8b9c",
		BaseProductIDs: []uint{1},
	})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if report.UserID != "8a4f2a9e-1f2b-4f7e-9c3a-0d5f6e7a8b9c" {
		t.Errorf("explicit user id overwritten: %q", report.UserID)
	}
}
