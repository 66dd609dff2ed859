package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate se comparte entre todas las entidades; validator cachea la
// información de cada struct.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Un Number ausente se valida como nil y falla cualquier etiqueta.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if n, ok := field.Interface().(Number); ok && n.Valid {
			return n.Value
		}
		return nil
	}, Number{})

	// present: texto no vacío tras recortar espacios; un número presente vale
	// aunque sea cero.
	if err := v.RegisterValidation("present", isPresent); err != nil {
		panic("models: register present validation: " + err.Error())
	}
	return v
}

func isPresent(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return strings.TrimSpace(field.String()) != ""
	}
	return true
}

// CheckRequired comprueba las etiquetas `validate` de una solicitud de alta.
func CheckRequired(req any) error {
	return validate.Struct(req)
}
