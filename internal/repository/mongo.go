package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	idField  = "_id"
	seqField = "inserted_ns"

	readTimeout  = 3 * time.Second
	writeTimeout = 5 * time.Second
	listTimeout  = 10 * time.Second
)

// Mongo guarda una colección en MongoDB. El documento lleva los campos del
// registro más _id (la clave natural) e inserted_ns para ordenar el listado.
type Mongo[T any] struct {
	collection *mongo.Collection
	keys       Keys[T]
}

// NewMongo crea el repositorio sobre una colección ya abierta.
func NewMongo[T any](collection *mongo.Collection, keys Keys[T]) *Mongo[T] {
	return &Mongo[T]{
		collection: collection,
		keys:       keys,
	}
}

// EnsureIndexes crea los índices que sostienen el orden y la clave alternativa.
func (r *Mongo[T]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: seqField, Value: 1}}},
	}
	if r.keys.AltField != "" {
		models = append(models, mongo.IndexModel{
			Keys:    bson.D{{Key: r.keys.AltField, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(r.keys.AltField + "_unique"),
		})
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes on %s: %w", r.collection.Name(), err)
	}
	return nil
}

// List obtiene todos los documentos en orden de inserción.
func (r *Mongo[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{
		{Key: seqField, Value: 1},
		{Key: idField, Value: 1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get obtiene un documento por su clave natural.
func (r *Mongo[T]) Get(ctx context.Context, key string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var rec T
	err := r.collection.FindOne(ctx, bson.M{idField: key}).Decode(&rec)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, ErrNotFound
		}
		return zero, err
	}
	return rec, nil
}

// Insert comprueba las claves en orden y luego inserta. El índice único
// cubre la carrera entre la comprobación y la inserción.
func (r *Mongo[T]) Insert(ctx context.Context, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	key := r.keys.Key(rec)
	if found, err := r.exists(ctx, bson.M{idField: key}); err != nil {
		return err
	} else if found {
		return ErrKeyExists
	}

	altKey := r.keys.altKey(rec)
	if altKey != "" && r.keys.AltField != "" {
		if found, err := r.exists(ctx, bson.M{r.keys.AltField: altKey}); err != nil {
			return err
		} else if found {
			return ErrAltKeyExists
		}
	}

	doc, err := toDocument(rec)
	if err != nil {
		return err
	}
	doc = append(doc,
		bson.E{Key: idField, Value: key},
		bson.E{Key: seqField, Value: time.Now().UnixNano()},
	)

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if r.keys.AltField != "" && strings.Contains(err.Error(), r.keys.AltField) {
				return ErrAltKeyExists
			}
			return ErrKeyExists
		}
		return err
	}
	return nil
}

// Update lee el documento, aplica fn y escribe los campos con $set.
func (r *Mongo[T]) Update(ctx context.Context, key string, fn func(T) T) (T, error) {
	var zero T

	current, err := r.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	next := fn(current)
	if !r.keys.sameKeys(current, next) {
		return zero, ErrKeyChanged
	}

	doc, err := toDocument(next)
	if err != nil {
		return zero, err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{idField: key}, bson.M{"$set": doc})
	if err != nil {
		return zero, err
	}
	if result.MatchedCount == 0 {
		return zero, ErrNotFound
	}
	return next, nil
}

// Delete elimina el documento.
func (r *Mongo[T]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{idField: key})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset borra todos los documentos de la colección.
func (r *Mongo[T]) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}

// Ping comprueba la conexión del cliente.
func (r *Mongo[T]) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	return r.collection.Database().Client().Ping(ctx, nil)
}

func (r *Mongo[T]) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// toDocument convierte el registro en un bson.D usando sus etiquetas bson.
func toDocument(rec any) (bson.D, error) {
	raw, err := bson.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

var _ Repository[struct{}] = (*Mongo[struct{}])(nil)
