package repository

import (
	"context"
	"errors"
)

// Errores que devuelven todos los backends. La capa entity los traduce a
// mensajes de cada entidad.
var (
	ErrNotFound     = errors.New("record not found")
	ErrKeyExists    = errors.New("record key already exists")
	ErrAltKeyExists = errors.New("record alternate key already exists")
	ErrKeyChanged   = errors.New("record keys are immutable")
)

// Keys describe cómo se identifica un registro dentro de su colección.
type Keys[T any] struct {
	// Key devuelve la clave natural del registro.
	Key func(T) string
	// AltKey devuelve la clave alternativa única; nil si la entidad no tiene.
	AltKey func(T) string
	// KeyField y AltField son los nombres de campo en el documento (backend Mongo).
	KeyField string
	AltField string
}

func (k Keys[T]) altKey(rec T) string {
	if k.AltKey == nil {
		return ""
	}
	return k.AltKey(rec)
}

// sameKeys indica si before y after conservan las dos claves.
func (k Keys[T]) sameKeys(before, after T) bool {
	return k.Key(before) == k.Key(after) && k.altKey(before) == k.altKey(after)
}

// Repository es una colección con clave, que conserva el orden de inserción.
type Repository[T any] interface {
	// List devuelve todos los registros en orden de inserción.
	List(ctx context.Context) ([]T, error)
	// Get devuelve el registro con esa clave o ErrNotFound.
	Get(ctx context.Context, key string) (T, error)
	// Insert guarda un registro nuevo. Comprueba primero la clave natural
	// (ErrKeyExists) y después la alternativa (ErrAltKeyExists).
	Insert(ctx context.Context, rec T) error
	// Update lee, aplica fn y guarda el resultado como una sola operación.
	// Si fn cambia la clave natural o la alternativa no guarda nada y
	// devuelve ErrKeyChanged.
	Update(ctx context.Context, key string, fn func(T) T) (T, error)
	// Delete elimina el registro o devuelve ErrNotFound.
	Delete(ctx context.Context, key string) error
	// Reset vacía la colección.
	Reset(ctx context.Context) error
	// Ping comprueba que el backend responde.
	Ping(ctx context.Context) error
}
