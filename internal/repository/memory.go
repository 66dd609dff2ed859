package repository

import (
	"context"
	"slices"
	"sync"
)

// Memory es una colección en memoria; su estado dura lo que dura el proceso.
type Memory[T any] struct {
	mu    sync.RWMutex
	keys  Keys[T]
	order []string
	items map[string]T
	alt   map[string]string
}

// NewMemory crea una colección vacía.
func NewMemory[T any](keys Keys[T]) *Memory[T] {
	return &Memory[T]{
		keys:  keys,
		items: make(map[string]T),
		alt:   make(map[string]string),
	}
}

// List devuelve una copia de los registros en orden de inserción.
func (r *Memory[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.items[key])
	}
	return out, nil
}

// Get busca un registro por su clave natural.
func (r *Memory[T]) Get(_ context.Context, key string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[key]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

// Insert guarda el registro si ninguna de sus claves está ocupada.
func (r *Memory[T]) Insert(_ context.Context, rec T) error {
	key := r.keys.Key(rec)
	altKey := r.keys.altKey(rec)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return ErrKeyExists
	}
	if altKey != "" {
		if _, exists := r.alt[altKey]; exists {
			return ErrAltKeyExists
		}
		r.alt[altKey] = key
	}
	r.items[key] = rec
	r.order = append(r.order, key)
	return nil
}

// Update aplica fn sobre el registro actual bajo el mismo bloqueo.
func (r *Memory[T]) Update(_ context.Context, key string, fn func(T) T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[key]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	next := fn(current)
	if !r.keys.sameKeys(current, next) {
		var zero T
		return zero, ErrKeyChanged
	}
	r.items[key] = next
	return next, nil
}

// Delete elimina el registro y su entrada en el índice alternativo.
func (r *Memory[T]) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[key]
	if !ok {
		return ErrNotFound
	}
	if altKey := r.keys.altKey(rec); altKey != "" {
		delete(r.alt, altKey)
	}
	delete(r.items, key)
	if i := slices.Index(r.order, key); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}

// Reset vacía la colección.
func (r *Memory[T]) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.items = make(map[string]T)
	r.alt = make(map[string]string)
	return nil
}

// Ping siempre responde: no hay backend externo.
func (r *Memory[T]) Ping(_ context.Context) error {
	return nil
}

var _ Repository[struct{}] = (*Memory[struct{}])(nil)
