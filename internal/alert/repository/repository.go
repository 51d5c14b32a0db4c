package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/nrivas/marketscope/internal/alert/domain"
)

type GormAlertRepository struct {
	db *gorm.DB
}

func NewGormAlertRepository(db *gorm.DB) *GormAlertRepository {
	return &GormAlertRepository{db: db}
}

func (r *GormAlertRepository) FindAll() ([]domain.Alert, error) {
	var alerts []domain.Alert
	err := r.db.Preload("Listing").
		Order("fecha_creacion DESC").
		Find(&alerts).Error
	return alerts, err
}

func (r *GormAlertRepository) FindNotifications(limit int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.Preload("Alert").Preload("Alert.Listing").
		Order("fecha_notificacion DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *GormAlertRepository) SetActive(id uint, active bool) error {
	res := r.db.Model(&domain.Alert{}).
		Where("id_alerta = ?", id).
		Updates(map[string]interface{}{
			"activa":              active,
			"fecha_actualizacion": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}

func (r *GormAlertRepository) MarkNotificationRead(id uint) error {
	res := r.db.Model(&domain.Notification{}).
		Where("id_notificacion = ?", id).
		Update("leida", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
