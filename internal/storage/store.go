// Package storage provides the uniform CRUD contract backing every entity
// kind on the dashboard, with interchangeable memory, Redis and Postgres
// backends. Each kind lives in its own keyed collection; kinds are fully
// independent and there are no cross-kind references or cascading deletes.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Record is implemented by every stored entity. WithID returns a copy of the
// record carrying the given identifier; records are handled by value so
// callers never share mutable state with a store.
type Record[E any] interface {
	RecordID() string
	WithID(id string) E
}

// Patch merges a partial update into an existing record, leaving fields the
// patch does not mention untouched.
type Patch[E any] interface {
	Apply(e E) E
}

// Store is the per-entity-kind CRUD contract. Absent records are signalled by
// the boolean return, not by an error; errors are reserved for backend
// faults. Each call is atomic with respect to other calls on the same store,
// but concurrent updates to the same id resolve last-write-wins.
type Store[E Record[E], P Patch[E]] interface {
	// Create assigns a fresh id to input, stores it and returns the stored
	// record.
	Create(ctx context.Context, input E) (E, error)

	// GetAll returns every record of the kind. Order is unspecified; the
	// memory backend happens to preserve insertion order.
	GetAll(ctx context.Context) ([]E, error)

	// GetByID returns the record for id, or false when no such record exists.
	GetByID(ctx context.Context, id string) (E, bool, error)

	// GetByField returns the records whose named JSON field equals value.
	// It is a linear filter over string-valued fields (category, status).
	GetByField(ctx context.Context, field, value string) ([]E, error)

	// Update merges patch into the record for id and returns the result, or
	// false when id is unknown.
	Update(ctx context.Context, id string, patch P) (E, bool, error)

	// Delete removes the record for id, reporting whether one existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// fieldMatches reports whether the named top-level JSON field of the
// marshaled record equals value. Matching operates on the JSON form so that
// every backend agrees with the Postgres doc->>field comparison.
func fieldMatches(doc []byte, field, value string) (bool, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(doc, &m); err != nil {
		return false, fmt.Errorf("failed to decode record: %w", err)
	}
	raw, ok := m[field]
	if !ok {
		return false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// Non-string field; filters only target enumerated string fields.
		return false, nil
	}
	return s == value, nil
}

// marshalRecord round-trips a record through JSON, used by the redis and
// memory backends for filtering and storage.
func marshalRecord[E any](rec E) ([]byte, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return doc, nil
}

func unmarshalRecord[E any](doc []byte, rec *E) error {
	if err := json.Unmarshal(doc, rec); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}
