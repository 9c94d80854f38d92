package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

// CaseRepository is the storage port for case records, including the
// case-client association rows.
type CaseRepository interface {
	Create(c *database.Case) error
	Update(c *database.Case) error
	Delete(id uint) (int64, error)
	FindByID(id uint) (*database.Case, error)
	FindByCaseNumber(caseNumber string) (*database.Case, error)
	FindAll() ([]database.Case, error)
	FindByStatus(status database.CaseStatus) ([]database.Case, error)
	SearchByTitle(query string) ([]database.Case, error)
	AddClient(c *database.Case, client *database.Client) error
	RemoveClient(c *database.Case, client *database.Client) error
	ClientsForCase(c *database.Case) ([]database.Client, error)
	CasesForClient(client *database.Client) ([]database.Case, error)
	DeleteDependents(caseID uint) error
}

type caseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{db: db}
}

func (r *caseRepository) Create(c *database.Case) error {
	return r.db.Create(c).Error
}

func (r *caseRepository) Update(c *database.Case) error {
	return r.db.Save(c).Error
}

func (r *caseRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&database.Case{}, id)
	return res.RowsAffected, res.Error
}

func (r *caseRepository) FindByID(id uint) (*database.Case, error) {
	var c database.Case
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *caseRepository) FindByCaseNumber(caseNumber string) (*database.Case, error) {
	var c database.Case
	if err := r.db.Where("case_number = ?", caseNumber).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *caseRepository) FindAll() ([]database.Case, error) {
	cases := make([]database.Case, 0)
	if err := r.db.Order("id").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepository) FindByStatus(status database.CaseStatus) ([]database.Case, error) {
	cases := make([]database.Case, 0)
	if err := r.db.Where("status = ?", status).Order("id").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *caseRepository) SearchByTitle(query string) ([]database.Case, error) {
	cases := make([]database.Case, 0)
	if err := r.db.Where("title LIKE ?", "%"+query+"%").
		Order("id").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

// AddClient links a client to a case. Appending an already-linked client is
// a no-op because the join table is keyed on the (case_id, client_id) pair.
func (r *caseRepository) AddClient(c *database.Case, client *database.Client) error {
	return r.db.Model(c).Association("Clients").Append(client)
}

func (r *caseRepository) RemoveClient(c *database.Case, client *database.Client) error {
	return r.db.Model(c).Association("Clients").Delete(client)
}

func (r *caseRepository) ClientsForCase(c *database.Case) ([]database.Client, error) {
	clients := make([]database.Client, 0)
	if err := r.db.Model(c).Association("Clients").Find(&clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *caseRepository) CasesForClient(client *database.Client) ([]database.Case, error) {
	cases := make([]database.Case, 0)
	if err := r.db.Model(client).Association("Cases").Find(&cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// DeleteDependents removes the hearings, documents and client links that
// belong to a case, ahead of deleting the case row itself.
func (r *caseRepository) DeleteDependents(caseID uint) error {
	if err := r.db.Where("case_id = ?", caseID).Delete(&database.Hearing{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("case_id = ?", caseID).Delete(&database.Document{}).Error; err != nil {
		return err
	}
	return r.db.Exec("DELETE FROM case_clients WHERE case_id = ?", caseID).Error
}
