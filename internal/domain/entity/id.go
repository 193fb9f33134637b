package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID identificador canónico de productos, pedidos y usuarios.
// Los snapshots antiguos guardaban ids numéricos; al leerlos se convierten a texto.
type ID string

// NewID genera un identificador único.
func NewID() ID {
	return ID(uuid.New().String())
}

// String implementa fmt.Stringer.
func (id ID) String() string { return string(id) }

// IsZero indica si el id está vacío.
func (id ID) IsZero() bool { return id == "" }

// UnmarshalJSON acepta "abc", 123 o null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id inválido %s: %w", string(data), err)
	}
	*id = ID(n.String())
	return nil
}
