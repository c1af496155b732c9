package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// Entidades referenciables que pueden faltar al admitir un movimiento.
const (
	EntityProduct         = "product"
	EntityWarehouse       = "warehouse"
	EntitySourceWarehouse = "source warehouse"
	EntityTargetWarehouse = "target warehouse"
	EntityCustomer        = "customer"
	EntityAccount         = "account"
	EntityMovement        = "movement"
)

// NotFoundError indica que una referencia (producto, bodega, cliente) no existe.
// errors.Is(err, ErrNotFound) es verdadero.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidRequestError movimiento estructuralmente inconsistente.
// errors.Is(err, ErrInvalidInput) es verdadero.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string { return e.Reason }

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidInput }

// NewInvalidRequest construye un InvalidRequestError con el motivo dado.
func NewInvalidRequest(reason string) error {
	return &InvalidRequestError{Reason: reason}
}
