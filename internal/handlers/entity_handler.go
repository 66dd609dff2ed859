package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"supermarket-admin/internal/cache"
	"supermarket-admin/internal/entity"
	"supermarket-admin/internal/middleware"
)

// Store es lo que el handler necesita de una colección.
type Store[T, C, P any] interface {
	Name() string
	Messages() entity.Messages
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, key string) (T, error)
	Create(ctx context.Context, req C) (T, error)
	Update(ctx context.Context, key string, patch P) (T, error)
	Delete(ctx context.Context, key string) error
}

// EntityHandler expone una colección por HTTP. El mismo handler sirve a
// clientes, proveedores, productos y empleados.
type EntityHandler[T, C, P any] struct {
	store Store[T, C, P]
	cache *cache.Cache
	log   *logrus.Entry
}

func NewEntityHandler[T, C, P any](store Store[T, C, P], c *cache.Cache, log *logrus.Entry) *EntityHandler[T, C, P] {
	return &EntityHandler[T, C, P]{
		store: store,
		cache: c,
		log:   log.WithField("entity", store.Name()),
	}
}

// Register monta las rutas de la entidad sobre el grupo.
func (h *EntityHandler[T, C, P]) Register(group *gin.RouterGroup, path string) {
	r := group.Group(path)
	r.GET("", h.List)
	r.GET("/:key", h.Get)
	r.POST("", h.Create)
	r.PUT("/:key", h.Update)
	r.PATCH("/:key", h.Update)
	r.DELETE("/:key", h.Delete)
}

// List devuelve todos los registros (con caché)
func (h *EntityHandler[T, C, P]) List(c *gin.Context) {
	cacheKey := h.cachePrefix() + "list"
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	gen := h.cache.Generation()
	records, err := h.store.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.cache.SetAt(gen, cacheKey, records)
	c.JSON(http.StatusOK, records)
}

// Get obtiene un registro por su clave (con caché)
func (h *EntityHandler[T, C, P]) Get(c *gin.Context) {
	key := c.Param("key")
	cacheKey := h.cachePrefix() + "key:" + key
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	gen := h.cache.Generation()
	record, err := h.store.Get(c.Request.Context(), key)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.cache.SetAt(gen, cacheKey, record)
	c.JSON(http.StatusOK, record)
}

// Create da de alta un registro
func (h *EntityHandler[T, C, P]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: h.store.Messages().Missing})
		return
	}

	record, err := h.store.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	h.invalidate()

	h.log.WithField("request_id", middleware.RequestID(c)).Info("record created")
	c.JSON(http.StatusCreated, gin.H{
		"message":      h.store.Messages().Created,
		h.store.Name(): record,
	})
}

// Update actualiza parcialmente un registro
func (h *EntityHandler[T, C, P]) Update(c *gin.Context) {
	// Un cuerpo vacío es un parche vacío.
	var patch P
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&patch); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, MessageResponse{Message: msgInvalidBody})
			return
		}
	}

	record, err := h.store.Update(c.Request.Context(), c.Param("key"), patch)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	h.invalidate()

	c.JSON(http.StatusOK, gin.H{
		"message":      h.store.Messages().Updated,
		h.store.Name(): record,
	})
}

// Delete elimina un registro
func (h *EntityHandler[T, C, P]) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("key")); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.invalidate()

	c.JSON(http.StatusOK, MessageResponse{Message: h.store.Messages().Deleted})
}

func (h *EntityHandler[T, C, P]) cachePrefix() string {
	return h.store.Name() + ":"
}

func (h *EntityHandler[T, C, P]) invalidate() {
	h.cache.DeleteByPrefix(h.cachePrefix())
}
