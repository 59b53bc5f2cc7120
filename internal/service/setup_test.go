package service

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-thrifty-inventory/internal/apperr"
	"go-thrifty-inventory/internal/model"
	"go-thrifty-inventory/internal/repository"
)

// setupTestDB opens a unique in-memory database per test to avoid cross-test
// collisions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.Branch{}, &model.Product{}, &model.User{}, &model.Log{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type services struct {
	branch  BranchService
	product ProductService
	user    UserService
	log     LogService
}

func newServices(db *gorm.DB) services {
	branchRepo := repository.NewBranchRepo(db)
	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)
	logRepo := repository.NewLogRepo(db)

	return services{
		branch:  NewBranchService(branchRepo, productRepo, db),
		product: NewProductService(productRepo, branchRepo, logRepo, db),
		user:    NewUserService(userRepo, logRepo, db),
		log:     NewLogService(logRepo, productRepo, userRepo, db, nil),
	}
}

func ptr[T any](v T) *T { return &v }

func asAppErr(err error, target **apperr.Error) bool {
	return errors.As(err, target)
}

func seedBranch(t *testing.T, s services) *model.Branch {
	t.Helper()
	branch, err := s.branch.CreateBranch(&CreateBranchRequest{BranchName: "Main", Address: "123 St"})
	if err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	return branch
}

func seedProduct(t *testing.T, s services, branchID uint) *model.Product {
	t.Helper()
	product, err := s.product.CreateProduct(&CreateProductRequest{
		ProductName:     "Vanilla Cone",
		Category:        model.CategoryCones,
		InitialQuantity: ptr(5),
		Price:           ptr(2.5),
		Cost:            ptr(1.0),
		BranchID:        branchID,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func seedUser(t *testing.T, s services, email string) *model.UserResponse {
	t.Helper()
	user, err := s.user.CreateUser(&CreateUserRequest{
		Name:     "Ana",
		Email:    email,
		Password: "secret123",
		Role:     "manager",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedLog(t *testing.T, s services, productID, userID uint) *model.Log {
	t.Helper()
	logRow, err := s.log.CreateLog(&CreateLogRequest{
		ProductID:        productID,
		QuantityOfChange: ptr(model.Quantity(-1)),
		UserID:           userID,
		Reason:           model.ReasonSale,
	})
	if err != nil {
		t.Fatalf("seed log: %v", err)
	}
	return logRow
}
