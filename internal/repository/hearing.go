package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

// HearingRepository is the storage port for hearing records. Date bounds are
// epoch seconds, matching the stored column.
type HearingRepository interface {
	Create(h *database.Hearing) error
	Update(h *database.Hearing) error
	Delete(id uint) (int64, error)
	FindByID(id uint) (*database.Hearing, error)
	FindAll() ([]database.Hearing, error)
	FindByCase(caseID uint) ([]database.Hearing, error)
	FindByStatus(status database.HearingStatus) ([]database.Hearing, error)
	FindByDateRange(start, end int64) ([]database.Hearing, error)
	FindUpcoming(after int64) ([]database.Hearing, error)
}

type hearingRepository struct {
	db *gorm.DB
}

func NewHearingRepository(db *gorm.DB) HearingRepository {
	return &hearingRepository{db: db}
}

func (r *hearingRepository) Create(h *database.Hearing) error {
	return r.db.Create(h).Error
}

func (r *hearingRepository) Update(h *database.Hearing) error {
	return r.db.Save(h).Error
}

func (r *hearingRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&database.Hearing{}, id)
	return res.RowsAffected, res.Error
}

func (r *hearingRepository) FindByID(id uint) (*database.Hearing, error) {
	var h database.Hearing
	if err := r.db.First(&h, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (r *hearingRepository) FindAll() ([]database.Hearing, error) {
	hearings := make([]database.Hearing, 0)
	if err := r.db.Order("date").Find(&hearings).Error; err != nil {
		return nil, err
	}
	return hearings, nil
}

func (r *hearingRepository) FindByCase(caseID uint) ([]database.Hearing, error) {
	hearings := make([]database.Hearing, 0)
	if err := r.db.Where("case_id = ?", caseID).Order("date").Find(&hearings).Error; err != nil {
		return nil, err
	}
	return hearings, nil
}

func (r *hearingRepository) FindByStatus(status database.HearingStatus) ([]database.Hearing, error) {
	hearings := make([]database.Hearing, 0)
	if err := r.db.Where("status = ?", status).Order("date").Find(&hearings).Error; err != nil {
		return nil, err
	}
	return hearings, nil
}

func (r *hearingRepository) FindByDateRange(start, end int64) ([]database.Hearing, error) {
	hearings := make([]database.Hearing, 0)
	if err := r.db.Where("date >= ? AND date <= ?", start, end).
		Order("date").Find(&hearings).Error; err != nil {
		return nil, err
	}
	return hearings, nil
}

// FindUpcoming returns hearings strictly after the given instant, excluding
// cancelled ones.
func (r *hearingRepository) FindUpcoming(after int64) ([]database.Hearing, error) {
	hearings := make([]database.Hearing, 0)
	if err := r.db.Where("date > ? AND status <> ?", after, database.HearingStatusCancelled).
		Order("date").Find(&hearings).Error; err != nil {
		return nil, err
	}
	return hearings, nil
}
