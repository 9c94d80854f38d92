package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

// ClientRepository is the storage port for client records.
type ClientRepository interface {
	Create(client *database.Client) error
	Update(client *database.Client) error
	Delete(id uint) (int64, error)
	FindByID(id uint) (*database.Client, error)
	FindByEmail(email string) (*database.Client, error)
	FindAll() ([]database.Client, error)
	SearchByName(query string) ([]database.Client, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *database.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepository) Update(client *database.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&database.Client{}, id)
	return res.RowsAffected, res.Error
}

func (r *clientRepository) FindByID(id uint) (*database.Client, error) {
	var client database.Client
	if err := r.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindByEmail(email string) (*database.Client, error) {
	var client database.Client
	if err := r.db.Where("email = ?", email).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll() ([]database.Client, error) {
	clients := make([]database.Client, 0)
	if err := r.db.Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) SearchByName(query string) ([]database.Client, error) {
	clients := make([]database.Client, 0)
	pattern := "%" + query + "%"
	if err := r.db.Where("name LIKE ? OR surname LIKE ?", pattern, pattern).
		Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}
