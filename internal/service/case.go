package service

import (
	"strings"

	"github.com/ahmetberacelik/legalcase/internal/cache"
	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/repository"
)

// CaseService manages cases and their client associations. Lookups by case
// number are read-through cached; every write invalidates the affected key.
type CaseService struct {
	cases   repository.CaseRepository
	clients repository.ClientRepository
	cache   cache.Cache
}

func NewCaseService(cases repository.CaseRepository, clients repository.ClientRepository, c cache.Cache) *CaseService {
	return &CaseService{cases: cases, clients: clients, cache: c}
}

// CreateCase registers a new case with status NEW. The case number must not
// be in use.
func (s *CaseService) CreateCase(caseNumber, title string, caseType database.CaseType, description string) (*database.Case, error) {
	caseNumber = strings.TrimSpace(caseNumber)
	if caseNumber == "" {
		return nil, validationf("case number must not be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, validationf("title must not be empty")
	}
	if !caseType.Valid() {
		return nil, validationf("unknown case type %q", caseType)
	}

	existing, err := s.cases.FindByCaseNumber(caseNumber)
	if err != nil {
		return nil, storage(err)
	}
	if existing != nil {
		return nil, validationf("case number %q already exists", caseNumber)
	}

	record := &database.Case{
		CaseNumber:  caseNumber,
		Title:       title,
		Type:        caseType,
		Status:      database.CaseStatusNew,
		Description: description,
	}

	if err := s.cases.Create(record); err != nil {
		return nil, storage(err)
	}
	return record, nil
}

// UpdateCase overwrites all fields of an existing case. Reusing the case's
// own number is allowed; colliding with a different case is not.
func (s *CaseService) UpdateCase(id uint, caseNumber, title string, caseType database.CaseType, description string, status database.CaseStatus) (*database.Case, error) {
	record, err := s.cases.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	if record == nil {
		return nil, validationf("case with id %d does not exist", id)
	}

	caseNumber = strings.TrimSpace(caseNumber)
	if caseNumber == "" {
		return nil, validationf("case number must not be empty")
	}
	if !caseType.Valid() {
		return nil, validationf("unknown case type %q", caseType)
	}
	if !status.Valid() {
		return nil, validationf("unknown case status %q", status)
	}

	other, err := s.cases.FindByCaseNumber(caseNumber)
	if err != nil {
		return nil, storage(err)
	}
	if other != nil && other.ID != record.ID {
		return nil, validationf("case number %q already exists", caseNumber)
	}

	s.invalidate(record.CaseNumber)

	record.CaseNumber = caseNumber
	record.Title = title
	record.Type = caseType
	record.Description = description
	record.Status = status

	if err := s.cases.Update(record); err != nil {
		return nil, storage(err)
	}

	s.invalidate(record.CaseNumber)
	return record, nil
}

// DeleteCase removes a case together with its hearings, documents and
// client links.
func (s *CaseService) DeleteCase(id uint) error {
	record, err := s.cases.FindByID(id)
	if err != nil {
		return storage(err)
	}
	if record == nil {
		return validationf("case with id %d does not exist", id)
	}

	if err := s.cases.DeleteDependents(record.ID); err != nil {
		return storage(err)
	}
	if _, err := s.cases.Delete(record.ID); err != nil {
		return storage(err)
	}

	s.invalidate(record.CaseNumber)
	return nil
}

// GetCaseByID returns nil when no case matches.
func (s *CaseService) GetCaseByID(id uint) (*database.Case, error) {
	record, err := s.cases.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	return record, nil
}

// GetCaseByCaseNumber returns nil when no case matches.
func (s *CaseService) GetCaseByCaseNumber(caseNumber string) (*database.Case, error) {
	if s.cache != nil {
		if record, found := s.cache.Get(cache.GenerateCacheKey(caseNumber)); found {
			return record, nil
		}
	}

	record, err := s.cases.FindByCaseNumber(caseNumber)
	if err != nil {
		return nil, storage(err)
	}
	if record != nil && s.cache != nil {
		s.cache.Set(cache.GenerateCacheKey(caseNumber), record)
	}
	return record, nil
}

func (s *CaseService) GetAllCases() ([]database.Case, error) {
	cases, err := s.cases.FindAll()
	if err != nil {
		return nil, storage(err)
	}
	return cases, nil
}

func (s *CaseService) GetCasesByStatus(status database.CaseStatus) ([]database.Case, error) {
	cases, err := s.cases.FindByStatus(status)
	if err != nil {
		return nil, storage(err)
	}
	return cases, nil
}

func (s *CaseService) SearchCasesByTitle(query string) ([]database.Case, error) {
	cases, err := s.cases.SearchByTitle(query)
	if err != nil {
		return nil, storage(err)
	}
	return cases, nil
}

// AddClientToCase links a client to a case. Linking an already-linked
// client is a no-op.
func (s *CaseService) AddClientToCase(caseID, clientID uint) error {
	record, client, err := s.pair(caseID, clientID)
	if err != nil {
		return err
	}
	if err := s.cases.AddClient(record, client); err != nil {
		return storage(err)
	}
	return nil
}

func (s *CaseService) RemoveClientFromCase(caseID, clientID uint) error {
	record, client, err := s.pair(caseID, clientID)
	if err != nil {
		return err
	}
	if err := s.cases.RemoveClient(record, client); err != nil {
		return storage(err)
	}
	return nil
}

func (s *CaseService) GetClientsForCase(caseID uint) ([]database.Client, error) {
	record, err := s.cases.FindByID(caseID)
	if err != nil {
		return nil, storage(err)
	}
	if record == nil {
		return nil, validationf("case with id %d does not exist", caseID)
	}

	clients, err := s.cases.ClientsForCase(record)
	if err != nil {
		return nil, storage(err)
	}
	return clients, nil
}

func (s *CaseService) GetCasesForClient(clientID uint) ([]database.Case, error) {
	client, err := s.clients.FindByID(clientID)
	if err != nil {
		return nil, storage(err)
	}
	if client == nil {
		return nil, validationf("client with id %d does not exist", clientID)
	}

	cases, err := s.cases.CasesForClient(client)
	if err != nil {
		return nil, storage(err)
	}
	return cases, nil
}

func (s *CaseService) pair(caseID, clientID uint) (*database.Case, *database.Client, error) {
	record, err := s.cases.FindByID(caseID)
	if err != nil {
		return nil, nil, storage(err)
	}
	if record == nil {
		return nil, nil, validationf("case with id %d does not exist", caseID)
	}

	client, err := s.clients.FindByID(clientID)
	if err != nil {
		return nil, nil, storage(err)
	}
	if client == nil {
		return nil, nil, validationf("client with id %d does not exist", clientID)
	}

	return record, client, nil
}

func (s *CaseService) invalidate(caseNumber string) {
	if s.cache != nil {
		s.cache.Delete(cache.GenerateCacheKey(caseNumber))
	}
}
