package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"supermarket-admin/internal/entity"
	"supermarket-admin/internal/middleware"
)

const (
	msgRouteNotFound = "Ruta no encontrada"
	msgInvalidBody   = "Cuerpo de la solicitud inválido"
	msgInternalError = "Error interno del servidor"
)

// MessageResponse es el cuerpo de error y de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusFor traduce la clase de error a código HTTP.
func StatusFor(kind entity.Kind) int {
	switch kind {
	case entity.KindValidation:
		return http.StatusBadRequest
	case entity.KindConflict:
		return http.StatusConflict
	case entity.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError responde con el mensaje de la entidad o con un 500 si el fallo
// vino del backend.
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	if kind := entity.KindOf(err); kind != 0 {
		c.JSON(StatusFor(kind), MessageResponse{Message: err.Error()})
		return
	}
	log.WithError(err).
		WithField("request_id", middleware.RequestID(c)).
		Error("operation failed")
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: msgInternalError})
}

// NotFound responde a cualquier ruta sin definir.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: msgRouteNotFound})
}
