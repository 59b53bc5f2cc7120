package repository

import (
	"go-thrifty-inventory/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	Create(product *model.Product) error
	Save(product *model.Product) error
	Delete(id uint) error
	Get(id uint) (*model.Product, error)
	Exists(id uint) (bool, error)
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByBranch(branchID uint) ([]model.Product, error)
	CountByBranch(branchID uint) (int64, error)
}

type productRepo struct {
	base[model.Product]
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{base[model.Product]{db}}
}

func (r *productRepo) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepo{base[model.Product]{tx}}
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Branch").Preload("Logs").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Branch").Preload("Logs").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByBranch(branchID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Logs").Where("branch_id = ?", branchID).Find(&products).Error
	return products, err
}

// CountByBranch backs the dependent-row check guarding branch deletion.
func (r *productRepo) CountByBranch(branchID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("branch_id = ?", branchID).Count(&count).Error
	return count, err
}
