package service

import (
	"time"

	"gorm.io/gorm"

	"go-thrifty-inventory/internal/apperr"
	"go-thrifty-inventory/internal/model"
	"go-thrifty-inventory/internal/repository"
	"go-thrifty-inventory/pkg/validator"
)

type ProductService interface {
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	GetProductsByBranch(branchID uint) ([]model.Product, error)
	CreateProduct(req *CreateProductRequest) (*model.Product, error)
	UpdateProduct(id uint, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uint) error
}

// CreateProductRequest uses pointers for the numeric fields so that a zero
// quantity, price or cost is distinguishable from an omitted one.
type CreateProductRequest struct {
	ProductName     string                `json:"productName" validate:"required,max=100"`
	Description     string                `json:"description" validate:"max=500"`
	Category        model.ProductCategory `json:"category" validate:"required,category"`
	InitialQuantity *int                  `json:"initialQuantity" validate:"required,gte=0"`
	Price           *float64              `json:"price" validate:"required,gte=0"`
	Cost            *float64              `json:"cost" validate:"required,gte=0"`
	ImageSrc        string                `json:"imageSrc" validate:"max=1000"`
	BranchID        uint                  `json:"branchId" validate:"required"`
}

type UpdateProductRequest struct {
	ProductName     *string                `json:"productName"`
	Description     *string                `json:"description"`
	Category        *model.ProductCategory `json:"category"`
	InitialQuantity *int                   `json:"initialQuantity"`
	Price           *float64               `json:"price"`
	Cost            *float64               `json:"cost"`
	ImageSrc        *string                `json:"imageSrc"`
	BranchID        *uint                  `json:"branchId"`
}

type productService struct {
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
	logRepo     repository.LogRepository
	db          *gorm.DB
}

func NewProductService(productRepo repository.ProductRepository, branchRepo repository.BranchRepository, logRepo repository.LogRepository, db *gorm.DB) ProductService {
	return &productService{
		productRepo: productRepo,
		branchRepo:  branchRepo,
		logRepo:     logRepo,
		db:          db,
	}
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Product")
	}
	return product, nil
}

func (s *productService) GetProductsByBranch(branchID uint) ([]model.Product, error) {
	exists, err := s.branchRepo.Exists(branchID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !exists {
		return nil, apperr.NotFound("Branch")
	}

	products, err := s.productRepo.FindByBranch(branchID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

func (s *productService) CreateProduct(req *CreateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, apperr.Validation(errs)
	}

	var created *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Integrity: the target branch must exist
		exists, err := s.branchRepo.WithTx(tx).Exists(req.BranchID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !exists {
			return apperr.NotFound("Branch")
		}

		product := &model.Product{
			ProductName:     req.ProductName,
			Description:     req.Description,
			Category:        req.Category,
			InitialQuantity: *req.InitialQuantity,
			Price:           *req.Price,
			Cost:            *req.Cost,
			ImageSrc:        req.ImageSrc,
			AddedAt:         time.Now(),
			BranchID:        req.BranchID,
		}
		if err := s.productRepo.WithTx(tx).Create(product); err != nil {
			return apperr.Internal(err)
		}
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *productService) UpdateProduct(id uint, req *UpdateProductRequest) (*model.Product, error) {
	var updated *model.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)

		product, err := productRepo.Get(id)
		if err != nil {
			return notFoundOr(err, "Product")
		}

		// Integrity: a changed branch reference must resolve
		if req.BranchID != nil {
			exists, err := s.branchRepo.WithTx(tx).Exists(*req.BranchID)
			if err != nil {
				return apperr.Internal(err)
			}
			if !exists {
				return apperr.NotFound("Branch")
			}
			product.BranchID = *req.BranchID
		}

		// Merge only supplied fields
		if req.ProductName != nil {
			product.ProductName = *req.ProductName
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Category != nil {
			product.Category = *req.Category
		}
		if req.InitialQuantity != nil {
			product.InitialQuantity = *req.InitialQuantity
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.Cost != nil {
			product.Cost = *req.Cost
		}
		if req.ImageSrc != nil {
			product.ImageSrc = *req.ImageSrc
		}

		// Re-validate the merged row
		if errs := validator.ValidateStruct(product); errs != nil {
			return apperr.Validation(errs)
		}

		if err := productRepo.Save(product); err != nil {
			return apperr.Internal(err)
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *productService) DeleteProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		productRepo := s.productRepo.WithTx(tx)

		if _, err := productRepo.Get(id); err != nil {
			return notFoundOr(err, "Product")
		}

		// Dependent-row check: logs block product deletion
		count, err := s.logRepo.WithTx(tx).CountByProduct(id)
		if err != nil {
			return apperr.Internal(err)
		}
		if count > 0 {
			return apperr.Conflict("Cannot delete product with associated logs. Consider archiving instead.")
		}

		if err := productRepo.Delete(id); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}
