package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each entity kind in one Redis hash, JSON-marshaled per
// record, keyed by record id. GetAll order follows the hash and is
// unspecified.
type RedisStore[E Record[E], P Patch[E]] struct {
	client *redis.Client
	key    string
}

// NewRedisStore builds a store over the hash named key (e.g. "nbs:species").
func NewRedisStore[E Record[E], P Patch[E]](client *redis.Client, key string) *RedisStore[E, P] {
	return &RedisStore[E, P]{client: client, key: key}
}

func (s *RedisStore[E, P]) Create(ctx context.Context, input E) (E, error) {
	var zero E
	rec := input.WithID(uuid.NewString())
	doc, err := marshalRecord(rec)
	if err != nil {
		return zero, err
	}
	if err := s.client.HSet(ctx, s.key, rec.RecordID(), doc).Err(); err != nil {
		return zero, fmt.Errorf("failed to store record: %w", err)
	}
	return rec, nil
}

func (s *RedisStore[E, P]) GetAll(ctx context.Context) ([]E, error) {
	docs, err := s.client.HVals(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	out := make([]E, 0, len(docs))
	for _, doc := range docs {
		rec, err := s.decode([]byte(doc))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *RedisStore[E, P]) GetByID(ctx context.Context, id string) (E, bool, error) {
	var zero E
	doc, err := s.client.HGet(ctx, s.key, id).Result()
	if err == redis.Nil {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("failed to read record: %w", err)
	}
	rec, err := s.decode([]byte(doc))
	if err != nil {
		return zero, false, err
	}
	return rec, true, nil
}

func (s *RedisStore[E, P]) GetByField(ctx context.Context, field, value string) ([]E, error) {
	docs, err := s.client.HVals(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	out := []E{}
	for _, doc := range docs {
		match, err := fieldMatches([]byte(doc), field, value)
		if err != nil {
			return nil, err
		}
		if !match {
			continue
		}
		rec, err := s.decode([]byte(doc))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Update is read-merge-write without a transaction; concurrent updates to the
// same id resolve last-write-wins, matching the store contract.
func (s *RedisStore[E, P]) Update(ctx context.Context, id string, patch P) (E, bool, error) {
	var zero E
	rec, ok, err := s.GetByID(ctx, id)
	if err != nil || !ok {
		return zero, ok, err
	}
	updated := patch.Apply(rec)
	doc, err := marshalRecord(updated)
	if err != nil {
		return zero, false, err
	}
	if err := s.client.HSet(ctx, s.key, id, doc).Err(); err != nil {
		return zero, false, fmt.Errorf("failed to store record: %w", err)
	}
	return updated, true, nil
}

func (s *RedisStore[E, P]) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.client.HDel(ctx, s.key, id).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}
	return removed > 0, nil
}

func (s *RedisStore[E, P]) decode(doc []byte) (E, error) {
	var rec E
	if err := unmarshalRecord(doc, &rec); err != nil {
		var zero E
		return zero, err
	}
	return rec, nil
}
