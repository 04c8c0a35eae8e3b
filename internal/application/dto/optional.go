package dto

import (
	"bytes"
	"encoding/json"
)

// Optional registra si un campo vino en el JSON (Set), si vino como null (Null) y su valor.
// Campo ausente → Set=false; `null` → Set=true, Null=true; valor → Set=true, Value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some construye un Optional presente con valor.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON solo se invoca cuando la clave está presente en el objeto.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON permite reenviar el DTO (null si no hay valor).
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
