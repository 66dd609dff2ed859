// Package middleware contiene el middleware gin común a todas las rutas.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// HeaderRequestID es la cabecera que se respeta o se genera por petición.
	HeaderRequestID = "X-Request-Id"

	requestIDKey = "request_id"
)

// WithRequestID asigna un identificador a cada petición y lo devuelve en la
// respuesta.
func WithRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Header(HeaderRequestID, reqID)
		c.Next()
	}
}

// RequestID devuelve el identificador asignado por WithRequestID.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// WithLogging registra cada petición terminada.
func WithLogging(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"bytes":      c.Writer.Size(),
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"request_id": RequestID(c),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("http_request")
		case c.Writer.Status() >= 400:
			entry.Warn("http_request")
		default:
			entry.Info("http_request")
		}
	}
}
