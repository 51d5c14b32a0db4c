package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/report/domain"
)

type GormReportRepository struct {
	db *gorm.DB
}

func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

func (r *GormReportRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.ComparisonReport{}, &domain.ReportMember{})
}

func (r *GormReportRepository) Create(report *domain.ComparisonReport) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members").Create(report).Error; err != nil {
			return err
		}

		if len(report.Members) == 0 {
			return nil
		}

		for i := range report.Members {
			report.Members[i].ReportID = report.ID
		}
		return tx.Create(&report.Members).Error
	})
}

func (r *GormReportRepository) FindByUser(userID string) ([]domain.ComparisonReport, error) {
	var reports []domain.ComparisonReport
	err := r.db.Preload("Members").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *GormReportRepository) FindByID(id string) (*domain.ComparisonReport, error) {
	var report domain.ComparisonReport
	err := r.db.Preload("Members").First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *GormReportRepository) Rename(id, newName string) error {
	res := r.db.Model(&domain.ComparisonReport{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"nombre":     newName,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *GormReportRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Membership rows go first in case the schema lacks ON DELETE CASCADE.
		if err := tx.Where("report_id = ?", id).Delete(&domain.ReportMember{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&domain.ComparisonReport{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrReportNotFound
		}
		return nil
	})
}
