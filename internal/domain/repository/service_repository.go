package repository

import (
	"context"

	"medstore/internal/domain/entity"
)

// ServiceRepository defines the operations for service-page persistence.
type ServiceRepository interface {
	// FindAll returns every offered service.
	FindAll(ctx context.Context) ([]*entity.Service, error)

	// Create persists a new service.
	Create(ctx context.Context, service *entity.Service) error

	// Count returns the total number of services.
	Count(ctx context.Context) (int64, error)
}
