package service

import (
	"errors"

	"gorm.io/gorm"

	"go-thrifty-inventory/internal/apperr"
	"go-thrifty-inventory/internal/model"
	"go-thrifty-inventory/internal/repository"
	"go-thrifty-inventory/pkg/validator"
)

type UserService interface {
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uint) (*model.UserResponse, error)
	CreateUser(req *CreateUserRequest) (*model.UserResponse, error)
	UpdateUser(id uint, req *UpdateUserRequest) (*model.UserResponse, error)
	DeleteUser(id uint) error
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,max=255"`
	Role     string `json:"role" validate:"required,max=50"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

type userService struct {
	userRepo repository.UserRepository
	logRepo  repository.LogRepository
	db       *gorm.DB
}

func NewUserService(userRepo repository.UserRepository, logRepo repository.LogRepository, db *gorm.DB) UserService {
	return &userService{
		userRepo: userRepo,
		logRepo:  logRepo,
		db:       db,
	}
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "User")
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); errs != nil {
		return nil, apperr.Validation(errs)
	}

	var created *model.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)

		// Uniqueness: no other row may hold this email
		if _, err := userRepo.FindByEmail(req.Email); err == nil {
			return apperr.Conflict("User with this email already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Internal(err)
		}

		user := &model.User{
			Name:  req.Name,
			Email: req.Email,
			Role:  req.Role,
		}
		// Hash the password; it is never persisted in plaintext
		if err := user.SetPassword(req.Password); err != nil {
			return apperr.Internal(err)
		}

		if err := userRepo.Create(user); err != nil {
			return apperr.Internal(err)
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := created.ToResponse()
	return &response, nil
}

func (s *userService) UpdateUser(id uint, req *UpdateUserRequest) (*model.UserResponse, error) {
	var updated *model.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)

		user, err := userRepo.Get(id)
		if err != nil {
			return notFoundOr(err, "User")
		}

		// Uniqueness: changing to an email held by a different row conflicts.
		// Re-submitting the unchanged email is fine.
		if req.Email != nil && *req.Email != user.Email {
			existing, err := userRepo.FindByEmail(*req.Email)
			if err == nil && existing.ID != id {
				return apperr.Conflict("Email already in use")
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Internal(err)
			}
			user.Email = *req.Email
		}

		// Merge only supplied fields
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Role != nil {
			user.Role = *req.Role
		}
		if req.Password != nil {
			if *req.Password == "" {
				return apperr.BadInput("password must not be empty")
			}
			if err := user.SetPassword(*req.Password); err != nil {
				return apperr.Internal(err)
			}
		}

		// Re-validate the merged row
		if errs := validator.ValidateStruct(user); errs != nil {
			return apperr.Validation(errs)
		}

		if err := userRepo.Save(user); err != nil {
			return apperr.Internal(err)
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := updated.ToResponse()
	return &response, nil
}

func (s *userService) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)

		if _, err := userRepo.Get(id); err != nil {
			return notFoundOr(err, "User")
		}

		// Dependent-row check: logs block user deletion
		count, err := s.logRepo.WithTx(tx).CountByUser(id)
		if err != nil {
			return apperr.Internal(err)
		}
		if count > 0 {
			return apperr.Conflict("Cannot delete user with associated logs. Consider deactivating instead.")
		}

		if err := userRepo.Delete(id); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
}
