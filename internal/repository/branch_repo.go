package repository

import (
	"go-thrifty-inventory/internal/model"

	"gorm.io/gorm"
)

type BranchRepository interface {
	WithTx(tx *gorm.DB) BranchRepository
	Create(branch *model.Branch) error
	Save(branch *model.Branch) error
	Delete(id uint) error
	Get(id uint) (*model.Branch, error)
	Exists(id uint) (bool, error)
	FindAll() ([]model.Branch, error)
	FindByID(id uint) (*model.Branch, error)
}

type branchRepo struct {
	base[model.Branch]
}

func NewBranchRepo(db *gorm.DB) BranchRepository {
	return &branchRepo{base[model.Branch]{db}}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *branchRepo) WithTx(tx *gorm.DB) BranchRepository {
	return &branchRepo{base[model.Branch]{tx}}
}

func (r *branchRepo) FindAll() ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.Preload("Products").Find(&branches).Error
	return branches, err
}

func (r *branchRepo) FindByID(id uint) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.Preload("Products").First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}
