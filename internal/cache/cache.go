package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type CacheItem struct {
	Value      any
	Expiration int64
}

// Cache guarda respuestas de lectura con un TTL. Cada invalidación incrementa
// la generación, y SetAt descarta valores leídos antes de ella.
type Cache struct {
	items      map[string]CacheItem
	mu         sync.RWMutex
	ttl        time.Duration
	generation uint64
}

// New crea un caché con el TTL por defecto; ttl <= 0 lo desactiva.
func New(ttl time.Duration) *Cache {
	return &Cache{
		items: make(map[string]CacheItem),
		ttl:   ttl,
	}
}

// Enabled indica si el caché guarda algo.
func (c *Cache) Enabled() bool {
	return c != nil && c.ttl > 0
}

// Start limpia items expirados periódicamente hasta que ctx termina.
func (c *Cache) Start(ctx context.Context, interval time.Duration) {
	if !c.Enabled() {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.cleanupExpired()
			}
		}
	}()
}

// Generation devuelve la generación actual; se toma antes de leer del backend.
func (c *Cache) Generation() uint64 {
	if !c.Enabled() {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// SetAt guarda el valor solo si no hubo invalidaciones desde gen.
func (c *Cache) SetAt(gen uint64, key string, value any) {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.items[key] = CacheItem{
		Value:      value,
		Expiration: time.Now().Add(c.ttl).UnixNano(),
	}
}

// GetValue obtiene un valor del caché
func (c *Cache) GetValue(key string) (any, bool) {
	if !c.Enabled() {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}
	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}
	return item.Value, true
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (c *Cache) DeleteByPrefix(prefix string) {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

func (c *Cache) cleanupExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, item := range c.items {
		if now > item.Expiration {
			delete(c.items, key)
		}
	}
}
