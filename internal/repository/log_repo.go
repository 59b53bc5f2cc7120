package repository

import (
	"go-thrifty-inventory/internal/model"

	"gorm.io/gorm"
)

// LogRepository has no update or delete: logs are the terminal audit trail.
type LogRepository interface {
	WithTx(tx *gorm.DB) LogRepository
	Create(log *model.Log) error
	FindAll() ([]model.Log, error)
	FindByID(id uint) (*model.Log, error)
	FindByProduct(productID uint) ([]model.Log, error)
	CountByProduct(productID uint) (int64, error)
	CountByUser(userID uint) (int64, error)
}

type logRepo struct {
	base[model.Log]
}

func NewLogRepo(db *gorm.DB) LogRepository {
	return &logRepo{base[model.Log]{db}}
}

func (r *logRepo) WithTx(tx *gorm.DB) LogRepository {
	return &logRepo{base[model.Log]{tx}}
}

func (r *logRepo) FindAll() ([]model.Log, error) {
	var logs []model.Log
	err := r.db.Preload("Product").Preload("User").Find(&logs).Error
	return logs, err
}

func (r *logRepo) FindByID(id uint) (*model.Log, error) {
	var log model.Log
	if err := r.db.Preload("Product").Preload("User").First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *logRepo) FindByProduct(productID uint) ([]model.Log, error) {
	var logs []model.Log
	err := r.db.Preload("User").Where("product_id = ?", productID).Find(&logs).Error
	return logs, err
}

func (r *logRepo) CountByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Log{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

func (r *logRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Log{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
