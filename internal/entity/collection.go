// Package entity implementa el contrato CRUD común a clientes, proveedores,
// productos y empleados. Cada tipo se describe con un Schema y se instancia
// como una Collection sobre un repositorio.
package entity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supermarket-admin/internal/metrics"
	"supermarket-admin/internal/repository"
)

// Messages son los textos fijos que ve el usuario para una entidad.
type Messages struct {
	NotFound        string
	Missing         string
	DuplicateKey    string
	DuplicateAltKey string
	Created         string
	Updated         string
	Deleted         string
}

// Schema parametriza una Collection: T es el registro guardado, C la
// solicitud de alta y P el parche de actualización.
type Schema[T, C, P any] struct {
	// Name es el campo que envuelve el registro en las respuestas ("client").
	Name     string
	Keys     repository.Keys[T]
	Messages Messages
	// Check es la comprobación de presencia de los campos obligatorios.
	Check func(C) error
	// Build convierte una solicitud ya validada en registro.
	Build func(C) T
	// Merge aplica un parche; nunca toca la clave natural ni la alternativa.
	Merge func(T, P) T
}

// Collection es la colección autoritativa de un tipo de entidad.
type Collection[T, C, P any] struct {
	schema  Schema[T, C, P]
	repo    repository.Repository[T]
	metrics *metrics.Metrics
}

// New crea una colección. m puede ser nil.
func New[T, C, P any](schema Schema[T, C, P], repo repository.Repository[T], m *metrics.Metrics) *Collection[T, C, P] {
	return &Collection[T, C, P]{
		schema:  schema,
		repo:    repo,
		metrics: m,
	}
}

// Name devuelve el nombre de la entidad.
func (c *Collection[T, C, P]) Name() string {
	return c.schema.Name
}

// Messages devuelve los textos de la entidad.
func (c *Collection[T, C, P]) Messages() Messages {
	return c.schema.Messages
}

// List devuelve todos los registros en orden de inserción.
func (c *Collection[T, C, P]) List(ctx context.Context) ([]T, error) {
	start := time.Now()
	out, err := c.repo.List(ctx)
	if err != nil {
		err = fmt.Errorf("list %s: %w", c.schema.Name, err)
	}
	c.observe("list", start, err)
	return out, err
}

// Get devuelve el registro con esa clave.
func (c *Collection[T, C, P]) Get(ctx context.Context, key string) (T, error) {
	start := time.Now()
	rec, err := c.repo.Get(ctx, key)
	err = c.translate("get", err)
	c.observe("get", start, err)
	return rec, err
}

// Create valida la solicitud y guarda el registro. El orden de las
// comprobaciones es fijo: presencia, clave natural, clave alternativa.
func (c *Collection[T, C, P]) Create(ctx context.Context, req C) (T, error) {
	start := time.Now()
	var zero T

	if err := c.schema.Check(req); err != nil {
		verr := &Error{Kind: KindValidation, Message: c.schema.Messages.Missing}
		c.observe("create", start, verr)
		return zero, verr
	}

	rec := c.schema.Build(req)
	if err := c.translate("create", c.repo.Insert(ctx, rec)); err != nil {
		c.observe("create", start, err)
		return zero, err
	}
	c.observe("create", start, nil)
	return rec, nil
}

// Update fusiona el parche con el registro guardado y persiste el resultado.
func (c *Collection[T, C, P]) Update(ctx context.Context, key string, patch P) (T, error) {
	start := time.Now()
	rec, err := c.repo.Update(ctx, key, func(current T) T {
		return c.schema.Merge(current, patch)
	})
	err = c.translate("update", err)
	c.observe("update", start, err)
	return rec, err
}

// Delete elimina el registro.
func (c *Collection[T, C, P]) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := c.translate("delete", c.repo.Delete(ctx, key))
	c.observe("delete", start, err)
	return err
}

// Reset vacía la colección.
func (c *Collection[T, C, P]) Reset(ctx context.Context) error {
	return c.repo.Reset(ctx)
}

// Ping comprueba el backend de la colección.
func (c *Collection[T, C, P]) Ping(ctx context.Context) error {
	return c.repo.Ping(ctx)
}

// translate convierte los errores del repositorio en errores de la entidad.
func (c *Collection[T, C, P]) translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return &Error{Kind: KindNotFound, Message: c.schema.Messages.NotFound}
	case errors.Is(err, repository.ErrKeyExists):
		return &Error{Kind: KindConflict, Message: c.schema.Messages.DuplicateKey}
	case errors.Is(err, repository.ErrAltKeyExists):
		return &Error{Kind: KindConflict, Message: c.schema.Messages.DuplicateAltKey}
	default:
		return fmt.Errorf("%s %s: %w", op, c.schema.Name, err)
	}
}

func (c *Collection[T, C, P]) observe(op string, start time.Time, err error) {
	c.metrics.ObserveOperation(c.schema.Name, op, Outcome(err), start)
}
