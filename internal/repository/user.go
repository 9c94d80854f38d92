package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

// UserRepository is the storage port for user records. Find methods return
// (nil, nil) when no record matches; Delete reports rows affected and does
// not treat zero rows as an error.
type UserRepository interface {
	Create(user *database.User) error
	Update(user *database.User) error
	Delete(id uint) (int64, error)
	FindByID(id uint) (*database.User, error)
	FindByUsername(username string) (*database.User, error)
	FindByEmail(email string) (*database.User, error)
	FindAll() ([]database.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *database.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) Update(user *database.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&database.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *userRepository) FindByID(id uint) (*database.User, error) {
	var user database.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*database.User, error) {
	var user database.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*database.User, error) {
	var user database.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]database.User, error) {
	users := make([]database.User, 0)
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
