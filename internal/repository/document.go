package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

// DocumentRepository is the storage port for document records.
type DocumentRepository interface {
	Create(d *database.Document) error
	Update(d *database.Document) error
	Delete(id uint) (int64, error)
	FindByID(id uint) (*database.Document, error)
	FindAll() ([]database.Document, error)
	FindByCase(caseID uint) ([]database.Document, error)
	FindByType(docType database.DocumentType) ([]database.Document, error)
	SearchByTitle(query string) ([]database.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(d *database.Document) error {
	return r.db.Create(d).Error
}

func (r *documentRepository) Update(d *database.Document) error {
	return r.db.Save(d).Error
}

func (r *documentRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&database.Document{}, id)
	return res.RowsAffected, res.Error
}

func (r *documentRepository) FindByID(id uint) (*database.Document, error) {
	var d database.Document
	if err := r.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *documentRepository) FindAll() ([]database.Document, error) {
	docs := make([]database.Document, 0)
	if err := r.db.Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) FindByCase(caseID uint) ([]database.Document, error) {
	docs := make([]database.Document, 0)
	if err := r.db.Where("case_id = ?", caseID).Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) FindByType(docType database.DocumentType) ([]database.Document, error) {
	docs := make([]database.Document, 0)
	if err := r.db.Where("type = ?", docType).Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) SearchByTitle(query string) ([]database.Document, error) {
	docs := make([]database.Document, 0)
	if err := r.db.Where("title LIKE ?", "%"+query+"%").
		Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
