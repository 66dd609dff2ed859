package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// maxMagnitude deja fuera los valores que no caben en un int64 (stock).
const maxMagnitude = 1 << 63

// Number es un campo numérico de entrada. Acepta un número JSON o un texto
// con un número; null, vacío o texto no numérico quedan como ausentes.
type Number struct {
	Value float64
	Valid bool
}

// NumberOf construye un Number presente.
func NumberOf(v float64) Number {
	return Number{Value: v, Valid: true}
}

// UnmarshalJSON implementa json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return err
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) >= maxMagnitude {
		return nil
	}
	*n = NumberOf(v)
	return nil
}

// MarshalJSON implementa json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Int trunca el valor hacia cero. UnmarshalJSON garantiza que cabe en int64.
func (n Number) Int() int64 {
	return int64(n.Value)
}
