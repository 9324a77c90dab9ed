package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
	"github.com/dromero-dev/comanda-api/internal/domain/repository"
	"github.com/dromero-dev/comanda-api/pkg/apperror"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// ClientInput represents the create/update client input
type ClientInput struct {
	Name    string
	Company *string
	Email   *string
	Phone   *string
	Status  string
}

// ListClients returns clients matching the optional search term
func (s *ClientService) ListClients(ctx context.Context, search string) ([]entity.Client, error) {
	return s.clientRepo.List(ctx, search)
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *ClientInput) (*entity.Client, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Client name is required")
	}

	client := &entity.Client{
		Name:    input.Name,
		Company: input.Company,
		Email:   input.Email,
		Phone:   input.Phone,
	}
	if input.Status != "" {
		client.Status = input.Status
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateClient updates an existing client
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *ClientInput) (*entity.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Company != nil {
		client.Company = input.Company
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Status != "" {
		client.Status = input.Status
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}
