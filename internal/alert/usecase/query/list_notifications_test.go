package query

import (
	"errors"
	"testing"

	"github.com/nrivas/marketscope/internal/alert/domain"
	catalogdomain "github.com/nrivas/marketscope/internal/catalog/domain"
)

type fakeAlertRepository struct {
	alerts        []domain.Alert
	notifications []domain.Notification
	limitSeen     int
	err           error
}

func (f *fakeAlertRepository) FindAll() ([]domain.Alert, error) {
	return f.alerts, f.err
}

func (f *fakeAlertRepository) FindNotifications(limit int) ([]domain.Notification, error) {
	f.limitSeen = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.notifications) {
		return f.notifications[:limit], nil
	}
	return f.notifications, nil
}

func (f *fakeAlertRepository) SetActive(id uint, active bool) error {
	return f.err
}

func (f *fakeAlertRepository) MarkNotificationRead(id uint) error {
	return f.err
}

func TestListNotificationsDefaultsLimit(t *testing.T) {
	repo := &fakeAlertRepository{}
	handler := NewListNotificationsHandler(repo)

	if _, err := handler.Handle(ListNotificationsQuery{}); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if repo.limitSeen != DefaultNotificationLimit {
		t.Errorf("expected default limit %d, got %d", DefaultNotificationLimit, repo.limitSeen)
	}
}

func TestListNotificationsShapesRows(t *testing.T) {
	repo := &fakeAlertRepository{
		notifications: []domain.Notification{
			{
				ID:      1,
				Message: "Precio bajó a $79.990",
				Alert: &domain.Alert{
					Kind:    domain.KindPrice,
					Listing: &catalogdomain.Listing{Name: "Teclado mecánico"},
				},
			},
			{
				ID:      2,
				Message: "Huérfana",
			},
		},
	}
	handler := NewListNotificationsHandler(repo)

	rows, err := handler.Handle(ListNotificationsQuery{Limit: 5})
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Product != "Teclado mecánico" || rows[0].Kind != domain.KindPrice {
		t.Errorf("alert context not carried into row: %+v", rows[0])
	}
	if rows[1].Product != "Unknown" {
		t.Errorf("notification without alert must fall back to Unknown, got %q", rows[1].Product)
	}
}

func TestListNotificationsRepositoryError(t *testing.T) {
	repo := &fakeAlertRepository{err: errors.New("timeout")}
	handler := NewListNotificationsHandler(repo)

	if _, err := handler.Handle(ListNotificationsQuery{}); err == nil {
		t.Fatal("expected error when repository fails")
	}
}
