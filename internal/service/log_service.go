package service

import (
	"time"

	"gorm.io/gorm"

	"go-thrifty-inventory/internal/apperr"
	"go-thrifty-inventory/internal/model"
	"go-thrifty-inventory/internal/repository"
	"go-thrifty-inventory/internal/ws"
	"go-thrifty-inventory/pkg/validator"
)

// LogService is append-only: logs have no update or delete operations.
type LogService interface {
	GetAllLogs() ([]model.Log, error)
	GetLogByID(id uint) (*model.Log, error)
	GetLogsByProduct(productID uint) ([]model.Log, error)
	CreateLog(req *CreateLogRequest) (*model.Log, error)
}

// CreateLogRequest keeps quantityOfChange behind a pointer: a delta of zero is
// a legitimate value and must not read as "field omitted". The Quantity type
// also accepts the string-encoded form some clients send.
type CreateLogRequest struct {
	ProductID        uint            `json:"productId" validate:"required"`
	QuantityOfChange *model.Quantity `json:"quantityOfChange" validate:"required"`
	UserID           uint            `json:"userId" validate:"required"`
	Reason           model.LogReason `json:"reason" validate:"required,log_reason"`
}

type logService struct {
	logRepo     repository.LogRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewLogService(logRepo repository.LogRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, db *gorm.DB, hub *ws.Hub) LogService {
	return &logService{
		logRepo:     logRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *logService) GetAllLogs() ([]model.Log, error) {
	logs, err := s.logRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}

func (s *logService) GetLogByID(id uint) (*model.Log, error) {
	log, err := s.logRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Log")
	}
	return log, nil
}

func (s *logService) GetLogsByProduct(productID uint) ([]model.Log, error) {
	exists, err := s.productRepo.Exists(productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !exists {
		return nil, apperr.NotFound("Product")
	}

	logs, err := s.logRepo.FindByProduct(productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return logs, nil
}

func (s *logService) CreateLog(req *CreateLogRequest) (*model.Log, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, apperr.Validation(errs)
	}

	var created *model.Log

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Integrity: both foreign keys must resolve
		exists, err := s.productRepo.WithTx(tx).Exists(req.ProductID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !exists {
			return apperr.NotFound("Product")
		}

		exists, err = s.userRepo.WithTx(tx).Exists(req.UserID)
		if err != nil {
			return apperr.Internal(err)
		}
		if !exists {
			return apperr.NotFound("User")
		}

		log := &model.Log{
			ProductID:        req.ProductID,
			QuantityOfChange: int(*req.QuantityOfChange),
			MovedAt:          time.Now(),
			UserID:           req.UserID,
			Reason:           req.Reason,
		}
		if err := s.logRepo.WithTx(tx).Create(log); err != nil {
			return apperr.Internal(err)
		}
		created = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notify connected clients about the quantity change. Best-effort only.
	if s.wsHub != nil {
		s.wsHub.Publish("quantity_change", map[string]interface{}{
			"logId":            created.ID,
			"productId":        created.ProductID,
			"userId":           created.UserID,
			"quantityOfChange": created.QuantityOfChange,
			"reason":           created.Reason,
			"movedAt":          created.MovedAt,
		})
	}

	return created, nil
}
