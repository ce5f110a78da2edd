package main

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
)

// ErrStoreUnavailable is returned when the store lock cannot be obtained
// before the request's context is done. It is the only error the store
// produces; unknown paths and ids are empty results, not errors.
var ErrStoreUnavailable = errors.New("cannot obtain store lock")

// Store maps a collection path to the documents inserted under it, keyed
// by their generated id. A single lock guards the whole structure; every
// operation holds it for its full duration and never across I/O.
type Store struct {
	lock chan struct{} // 1-slot semaphore so acquisition can fail
	data map[string]map[string]any
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		lock: make(chan struct{}, 1),
		data: map[string]map[string]any{},
	}
}

func (s *Store) acquire(ctx context.Context) error {
	// An already-dead context must fail deterministically.
	if ctx.Err() != nil {
		return ErrStoreUnavailable
	}
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ErrStoreUnavailable
	}
}

func (s *Store) release() {
	<-s.lock
}

// Insert stores document under path with a freshly generated id and
// returns the stored form. Object documents are stored as a copy with
// the id set (overwriting any caller-supplied id); anything else is
// stored verbatim and gets no id. The collection is created on first
// insert. The returned value is an independent copy.
func (s *Store) Insert(ctx context.Context, path string, document any) (any, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	id := uuid.NewString()
	stored := deepcopy.Copy(document)
	if obj, ok := stored.(map[string]any); ok {
		obj["id"] = id
	}

	collection, ok := s.data[path]
	if !ok {
		collection = map[string]any{}
		s.data[path] = collection
	}
	collection[id] = stored

	return deepcopy.Copy(stored), nil
}

// GetAll returns every document under path wrapped in an items envelope,
// in unspecified order. Unknown paths yield an empty items list.
func (s *Store) GetAll(ctx context.Context, path string) (map[string]any, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	items := []any{}
	for _, document := range s.data[path] {
		items = append(items, deepcopy.Copy(document))
	}
	return map[string]any{"items": items}, nil
}

// GetByID returns the document stored under path with the given id.
// Absence (unknown path or id) is reported via the bool, never as an
// error.
func (s *Store) GetByID(ctx context.Context, path, id string) (any, bool, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, false, err
	}
	defer s.release()

	document, ok := s.data[path][id]
	if !ok {
		return nil, false, nil
	}
	return deepcopy.Copy(document), true, nil
}

// Get resolves fullPath as a parent/id pair first: when the last "/"
// segment is a known id under the preceding segments, that single
// document is returned. Otherwise the entire original path is treated
// as a collection. Paths without a "/" skip the id attempt.
func (s *Store) Get(ctx context.Context, fullPath string) (any, error) {
	if i := strings.LastIndex(fullPath, "/"); i >= 0 {
		document, ok, err := s.GetByID(ctx, fullPath[:i], fullPath[i+1:])
		if err != nil {
			return nil, err
		}
		if ok {
			return document, nil
		}
	}
	return s.GetAll(ctx, fullPath)
}
