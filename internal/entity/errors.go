package entity

import "errors"

// Kind clasifica los resultados fallidos de una operación.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error es un fallo determinista de la colección, con el mensaje de cara al
// usuario ya resuelto para la entidad.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf devuelve la clase del error, o 0 si no es un *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Outcome es la etiqueta de métricas para el resultado de una operación.
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	if kind := KindOf(err); kind != 0 {
		return kind.String()
	}
	return "error"
}
