package service

import (
	"gorm.io/gorm"

	"go-thrifty-inventory/internal/apperr"
	"go-thrifty-inventory/internal/model"
	"go-thrifty-inventory/internal/repository"
	"go-thrifty-inventory/pkg/validator"
)

type BranchService interface {
	GetAllBranches() ([]model.Branch, error)
	GetBranchByID(id uint) (*model.Branch, error)
	CreateBranch(req *CreateBranchRequest) (*model.Branch, error)
	UpdateBranch(id uint, req *UpdateBranchRequest) (*model.Branch, error)
	DeleteBranch(id uint) error
}

type CreateBranchRequest struct {
	BranchName string `json:"branchName" validate:"required,max=100"`
	Address    string `json:"address" validate:"required,max=255"`
}

// UpdateBranchRequest carries partial-update fields. Nil means "not supplied";
// a present-but-empty value is rejected by the merged-row validation, so a
// legitimate update is never silently dropped.
type UpdateBranchRequest struct {
	BranchName *string `json:"branchName"`
	Address    *string `json:"address"`
}

type branchService struct {
	branchRepo  repository.BranchRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewBranchService(branchRepo repository.BranchRepository, productRepo repository.ProductRepository, db *gorm.DB) BranchService {
	return &branchService{
		branchRepo:  branchRepo,
		productRepo: productRepo,
		db:          db,
	}
}

func (s *branchService) GetAllBranches() ([]model.Branch, error) {
	branches, err := s.branchRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return branches, nil
}

func (s *branchService) GetBranchByID(id uint) (*model.Branch, error) {
	branch, err := s.branchRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Branch")
	}
	return branch, nil
}

func (s *branchService) CreateBranch(req *CreateBranchRequest) (*model.Branch, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, apperr.Validation(errs)
	}

	branch := &model.Branch{
		BranchName: req.BranchName,
		Address:    req.Address,
	}
	if err := s.branchRepo.Create(branch); err != nil {
		return nil, apperr.Internal(err)
	}
	return branch, nil
}

func (s *branchService) UpdateBranch(id uint, req *UpdateBranchRequest) (*model.Branch, error) {
	var updated *model.Branch

	err := s.db.Transaction(func(tx *gorm.DB) error {
		branchRepo := s.branchRepo.WithTx(tx)

		branch, err := branchRepo.Get(id)
		if err != nil {
			return notFoundOr(err, "Branch")
		}

		// Merge only supplied fields
		if req.BranchName != nil {
			branch.BranchName = *req.BranchName
		}
		if req.Address != nil {
			branch.Address = *req.Address
		}

		// Re-validate the merged row
		if errs := validator.ValidateStruct(branch); errs != nil {
			return apperr.Validation(errs)
		}

		if err := branchRepo.Save(branch); err != nil {
			return apperr.Internal(err)
		}
		updated = branch
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *branchService) DeleteBranch(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		branchRepo := s.branchRepo.WithTx(tx)

		if _, err := branchRepo.Get(id); err != nil {
			return notFoundOr(err, "Branch")
		}

		// Dependent-row check: products block branch deletion
		count, err := s.productRepo.WithTx(tx).CountByBranch(id)
		if err != nil {
			return apperr.Internal(err)
		}
		if count > 0 {
			return apperr.Conflict("Cannot delete branch with associated products. Remove products first.")
		}

		if err := branchRepo.Delete(id); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}
