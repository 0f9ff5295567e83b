package cloud

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore guarda cada coleção como um hash: campo = id do documento,
// valor = JSON. Uma coleção inteira sai em um único HGETALL.
type RedisStore struct {
	rdb       *redis.Client
	keyPrefix string
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		keyPrefix: "petshop:",
	}
}

func (s *RedisStore) key(collection string) string {
	return fmt.Sprintf("%s%s", s.keyPrefix, collection)
}

func (s *RedisStore) SaveDocument(ctx context.Context, collection, id string, doc []byte) error {
	return s.rdb.HSet(ctx, s.key(collection), id, doc).Err()
}

func (s *RedisStore) GetDocument(ctx context.Context, collection, id string) ([]byte, error) {
	v, err := s.rdb.HGet(ctx, s.key(collection), id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (s *RedisStore) GetAllDocuments(ctx context.Context, collection string) ([][]byte, error) {
	m, err := s.rdb.HGetAll(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, err
	}

	docs := make([][]byte, 0, len(m))
	for _, v := range m {
		docs = append(docs, []byte(v))
	}
	return docs, nil
}

func (s *RedisStore) DeleteDocument(ctx context.Context, collection, id string) error {
	return s.rdb.HDel(ctx, s.key(collection), id).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Compile-time check
var _ DocumentStore = (*RedisStore)(nil)
