package repository

import (
	"context"

	"article-generator/internal/domain"
)

// PublicationRepository defines methods for the publication ledger.
type PublicationRepository interface {
	Create(ctx context.Context, p *domain.Publication) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Publication, error)
}
