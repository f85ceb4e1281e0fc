package repository

import (
	"context"
	"errors"
	"time"

	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// PassRedisRepository stores each pass as one JSON value under pass:<serial>.
// A zero ttl keeps passes forever.
type PassRedisRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.IPassRepository = (*PassRedisRepository)(nil)

func NewPassRedisRepository(client redis.Cmdable, ttl time.Duration) *PassRedisRepository {
	return &PassRedisRepository{client: client, ttl: ttl}
}

func (r *PassRedisRepository) Create(ctx context.Context, p entities.StoredPass) (entities.StoredPass, error) {
	b, err := encodeStoredPass(p)
	if err != nil {
		return entities.StoredPass{}, err
	}

	ok, err := r.client.SetNX(ctx, passKey(p.SerialNumber), b, r.ttl).Result()
	if err != nil {
		return entities.StoredPass{}, err
	}
	if !ok {
		return entities.StoredPass{}, interfaces.ErrPassAlreadyExists
	}
	return p, nil
}

func (r *PassRedisRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (entities.StoredPass, error) {
	b, err := r.client.Get(ctx, passKey(serialNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.StoredPass{}, nil
	}
	if err != nil {
		return entities.StoredPass{}, err
	}
	return decodeStoredPass(b)
}
