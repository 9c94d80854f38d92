package service

import (
	"strings"

	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/repository"
)

// ClientService manages client records.
type ClientService struct {
	clients repository.ClientRepository
}

func NewClientService(clients repository.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

// CreateClient registers a client. Email is optional; when given it must be
// unique among clients.
func (s *ClientService) CreateClient(name, surname string, email *string, phone, address string) (*database.Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationf("client name must not be empty")
	}

	if email != nil {
		existing, err := s.clients.FindByEmail(*email)
		if err != nil {
			return nil, storage(err)
		}
		if existing != nil {
			return nil, validationf("client email %q is already in use", *email)
		}
	}

	client := &database.Client{
		Name:    name,
		Surname: surname,
		Email:   email,
		Phone:   phone,
		Address: address,
	}

	if err := s.clients.Create(client); err != nil {
		return nil, storage(err)
	}
	return client, nil
}

// UpdateClient overwrites the client's fields. Supplying the client's own
// current email is not a collision; another client's email is.
func (s *ClientService) UpdateClient(id uint, name, surname string, email *string, phone, address string) (*database.Client, error) {
	client, err := s.clients.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	if client == nil {
		return nil, validationf("client with id %d does not exist", id)
	}

	if strings.TrimSpace(name) == "" {
		return nil, validationf("client name must not be empty")
	}

	if email != nil {
		other, err := s.clients.FindByEmail(*email)
		if err != nil {
			return nil, storage(err)
		}
		if other != nil && other.ID != client.ID {
			return nil, validationf("client email %q is already in use", *email)
		}
	}

	client.Name = name
	client.Surname = surname
	client.Email = email
	client.Phone = phone
	client.Address = address

	if err := s.clients.Update(client); err != nil {
		return nil, storage(err)
	}
	return client, nil
}

func (s *ClientService) DeleteClient(id uint) error {
	client, err := s.clients.FindByID(id)
	if err != nil {
		return storage(err)
	}
	if client == nil {
		return validationf("client with id %d does not exist", id)
	}

	if _, err := s.clients.Delete(id); err != nil {
		return storage(err)
	}
	return nil
}

// GetClientByID returns nil when no client matches.
func (s *ClientService) GetClientByID(id uint) (*database.Client, error) {
	client, err := s.clients.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	return client, nil
}

// GetClientByEmail returns nil when no client matches.
func (s *ClientService) GetClientByEmail(email string) (*database.Client, error) {
	client, err := s.clients.FindByEmail(email)
	if err != nil {
		return nil, storage(err)
	}
	return client, nil
}

func (s *ClientService) GetAllClients() ([]database.Client, error) {
	clients, err := s.clients.FindAll()
	if err != nil {
		return nil, storage(err)
	}
	return clients, nil
}

func (s *ClientService) SearchClientsByName(query string) ([]database.Client, error) {
	clients, err := s.clients.SearchByName(query)
	if err != nil {
		return nil, storage(err)
	}
	return clients, nil
}
