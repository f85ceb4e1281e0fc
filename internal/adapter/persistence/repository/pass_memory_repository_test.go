package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassMemoryRepository_CreateAndGet(t *testing.T) {
	repo, err := NewPassMemoryRepository(10)
	require.NoError(t, err)
	ctx := context.Background()

	p := entities.StoredPass{SerialNumber: "a", CardType: entities.CardTypeBoleto, Artifact: []byte("zip")}
	_, err = repo.Create(ctx, p)
	require.NoError(t, err)

	got, err := repo.GetBySerialNumber(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	missing, err := repo.GetBySerialNumber(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, missing.SerialNumber)
}

func TestPassMemoryRepository_RejectsDuplicateSerial(t *testing.T) {
	repo, err := NewPassMemoryRepository(10)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Create(ctx, entities.StoredPass{SerialNumber: "a", Artifact: []byte("first")})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.StoredPass{SerialNumber: "a", Artifact: []byte("second")})
	assert.ErrorIs(t, err, interfaces.ErrPassAlreadyExists)

	got, _ := repo.GetBySerialNumber(ctx, "a")
	assert.Equal(t, "first", string(got.Artifact))
}

func TestPassMemoryRepository_EvictsLeastRecentlyUsed(t *testing.T) {
	repo, err := NewPassMemoryRepository(2)
	require.NoError(t, err)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		_, err := repo.Create(ctx, entities.StoredPass{SerialNumber: id})
		require.NoError(t, err)
	}
	// Touch "a" so "b" becomes the eviction candidate.
	_, _ = repo.GetBySerialNumber(ctx, "a")
	_, err = repo.Create(ctx, entities.StoredPass{SerialNumber: "c"})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Len())
	got, _ := repo.GetBySerialNumber(ctx, "b")
	assert.Empty(t, got.SerialNumber)
	got, _ = repo.GetBySerialNumber(ctx, "a")
	assert.Equal(t, "a", got.SerialNumber)
}

func TestPassMemoryRepository_InvalidCapacity(t *testing.T) {
	_, err := NewPassMemoryRepository(0)
	assert.Error(t, err)
}

func TestPassMemoryRepository_ConcurrentCreates(t *testing.T) {
	repo, err := NewPassMemoryRepository(1000)
	require.NoError(t, err)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Create(ctx, entities.StoredPass{SerialNumber: fmt.Sprintf("p-%d", i)})
			_, _ = repo.GetBySerialNumber(ctx, fmt.Sprintf("p-%d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, repo.Len())
}
