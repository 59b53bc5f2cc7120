package repository

import (
	"go-thrifty-inventory/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Create(user *model.User) error
	Save(user *model.User) error
	Delete(id uint) error
	Get(id uint) (*model.User, error)
	Exists(id uint) (bool, error)
	FindAll() ([]model.User, error)
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	UpdatePassword(userID uint, hashedPassword string) error
}

type userRepo struct {
	base[model.User]
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{base[model.User]{db}}
}

func (r *userRepo) WithTx(tx *gorm.DB) UserRepository {
	return &userRepo{base[model.User]{tx}}
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Preload("Logs").Find(&users).Error
	return users, err
}

func (r *userRepo) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Logs").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail matches case-sensitively, as stored.
func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdatePassword(userID uint, hashedPassword string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("password", hashedPassword).Error
}
