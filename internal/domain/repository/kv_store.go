package repository

import "context"

// Claves del almacén persistente.
const (
	KeyData  = "lunchcontrol-data" // snapshot completo
	KeyUser  = "lunchcontrol-user" // identidad de sesión (redundante con el snapshot, tiene prioridad)
	KeyTheme = "theme"
)

// KeyValueStore define el puerto de persistencia: get/set/remove de texto por clave (DIP).
// Get devuelve ok=false si la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// KeyValueBatcher capacidad opcional: escribir y borrar varias claves en una sola transacción.
// El Store la usa si el adaptador la implementa, para que snapshot y sesión no queden desalineados.
type KeyValueBatcher interface {
	WriteBatch(ctx context.Context, set map[string]string, remove []string) error
}
