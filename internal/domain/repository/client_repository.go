package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dromero-dev/comanda-api/internal/domain/entity"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	// GetByName finds a client by exact name, nil when none matches
	GetByName(ctx context.Context, name string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string) ([]entity.Client, error)
	// AddToBilled increments the client's accumulated billed amount in cents
	AddToBilled(ctx context.Context, id uuid.UUID, amount int64) error
}
