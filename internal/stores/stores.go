// Package stores construye las cuatro colecciones del back-office sobre el
// backend elegido y las agrupa para el resto de la aplicación.
package stores

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"supermarket-admin/internal/entity"
	"supermarket-admin/internal/metrics"
	"supermarket-admin/internal/models"
	"supermarket-admin/internal/repository"
)

type (
	Clients   = entity.Collection[models.Client, models.ClientCreate, models.ClientUpdate]
	Providers = entity.Collection[models.Provider, models.ProviderCreate, models.ProviderUpdate]
	Products  = entity.Collection[models.Product, models.ProductCreate, models.ProductUpdate]
	Employees = entity.Collection[models.Employee, models.EmployeeCreate, models.EmployeeUpdate]
)

// Set agrupa las colecciones; se crea al arrancar y vive lo que el proceso.
type Set struct {
	Clients   *Clients
	Providers *Providers
	Products  *Products
	Employees *Employees
}

type collection interface {
	Name() string
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
}

// NewMemory crea las colecciones en memoria, vacías.
func NewMemory(m *metrics.Metrics) *Set {
	return &Set{
		Clients:   inMemory(models.ClientSchema(), m),
		Providers: inMemory(models.ProviderSchema(), m),
		Products:  inMemory(models.ProductSchema(), m),
		Employees: inMemory(models.EmployeeSchema(), m),
	}
}

// NewMongo crea las colecciones sobre la base de datos y asegura sus índices.
func NewMongo(ctx context.Context, db *mongo.Database, m *metrics.Metrics) (*Set, error) {
	var (
		set Set
		err error
	)
	if set.Clients, err = inMongo(ctx, db.Collection("clients"), models.ClientSchema(), m); err != nil {
		return nil, err
	}
	if set.Providers, err = inMongo(ctx, db.Collection("providers"), models.ProviderSchema(), m); err != nil {
		return nil, err
	}
	if set.Products, err = inMongo(ctx, db.Collection("products"), models.ProductSchema(), m); err != nil {
		return nil, err
	}
	if set.Employees, err = inMongo(ctx, db.Collection("employees"), models.EmployeeSchema(), m); err != nil {
		return nil, err
	}
	return &set, nil
}

func inMemory[T, C, P any](schema entity.Schema[T, C, P], m *metrics.Metrics) *entity.Collection[T, C, P] {
	var repo repository.Repository[T] = repository.NewMemory(schema.Keys)
	return entity.New(schema, repo, m)
}

func inMongo[T, C, P any](ctx context.Context, coll *mongo.Collection, schema entity.Schema[T, C, P], m *metrics.Metrics) (*entity.Collection[T, C, P], error) {
	store := repository.NewMongo(coll, schema.Keys)
	if err := store.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	var repo repository.Repository[T] = store
	return entity.New(schema, repo, m), nil
}

func (s *Set) all() []collection {
	return []collection{s.Clients, s.Providers, s.Products, s.Employees}
}

// Reset vacía todas las colecciones.
func (s *Set) Reset(ctx context.Context) error {
	var errs []error
	for _, c := range s.all() {
		errs = append(errs, c.Reset(ctx))
	}
	return errors.Join(errs...)
}

// Ping comprueba el backend de cada colección.
func (s *Set) Ping(ctx context.Context) error {
	var errs []error
	for _, c := range s.all() {
		if err := c.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
		}
	}
	return errors.Join(errs...)
}
