package generations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores generation records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byID     map[string]Generation
	byClient map[string][]Generation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:     make(map[string]Generation),
		byClient: make(map[string][]Generation),
	}
}

// Create stores the generation record.
func (r *MemoryRepo) Create(ctx context.Context, gen Generation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[gen.ID] = gen
	r.byClient[gen.ClientKey] = append(r.byClient[gen.ClientKey], gen)
	return nil
}

// GetByID returns a generation by ID for a client.
func (r *MemoryRepo) GetByID(ctx context.Context, clientKey, generationID string) (Generation, error) {
	if err := ctx.Err(); err != nil {
		return Generation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.byID[generationID]
	if !ok {
		return Generation{}, ErrNotFound
	}
	if gen.ClientKey != clientKey {
		return Generation{}, ErrForbidden
	}
	return gen, nil
}

// ListByClient returns generations for a client, newest first, with limit/offset.
func (r *MemoryRepo) ListByClient(ctx context.Context, clientKey string, limit, offset int) ([]Generation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	clientGens := r.byClient[clientKey]
	r.mu.RUnlock()

	if len(clientGens) == 0 || offset >= len(clientGens) {
		return []Generation{}, nil
	}

	gens := make([]Generation, len(clientGens))
	copy(gens, clientGens)
	sort.Slice(gens, func(i, j int) bool {
		return gens[i].CreatedAt.After(gens[j].CreatedAt)
	})

	end := len(gens)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return gens[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
