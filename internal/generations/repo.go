package generations

import "context"

// Repo defines persistence operations for generation records.
type Repo interface {
	Create(ctx context.Context, gen Generation) error
	GetByID(ctx context.Context, clientKey, generationID string) (Generation, error)
	ListByClient(ctx context.Context, clientKey string, limit, offset int) ([]Generation, error)
}
