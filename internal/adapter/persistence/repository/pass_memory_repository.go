package repository

import (
	"context"
	"sync"

	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/usecase/interfaces"

	lru "github.com/hashicorp/golang-lru/v2"
)

// PassMemoryRepository keeps passes in process memory, bounded by capacity.
// When full, the least recently used pass is evicted.
type PassMemoryRepository struct {
	mu    sync.Mutex
	cache *lru.Cache[string, entities.StoredPass]
}

var _ interfaces.IPassRepository = (*PassMemoryRepository)(nil)

func NewPassMemoryRepository(capacity int) (*PassMemoryRepository, error) {
	cache, err := lru.New[string, entities.StoredPass](capacity)
	if err != nil {
		return nil, err
	}
	return &PassMemoryRepository{cache: cache}, nil
}

func (r *PassMemoryRepository) Create(_ context.Context, p entities.StoredPass) (entities.StoredPass, error) {
	// The lock makes check-and-add atomic; the cache itself is already safe for concurrent use.
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache.Contains(p.SerialNumber) {
		return entities.StoredPass{}, interfaces.ErrPassAlreadyExists
	}
	r.cache.Add(p.SerialNumber, p)
	return p, nil
}

func (r *PassMemoryRepository) GetBySerialNumber(_ context.Context, serialNumber string) (entities.StoredPass, error) {
	p, _ := r.cache.Get(serialNumber)
	return p, nil
}

func (r *PassMemoryRepository) Len() int {
	return r.cache.Len()
}
