// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// ErrEntregaNotFound is a sentinel error
type ErrEntregaNotFound struct {
    EntregaID int
}

func (e *ErrEntregaNotFound) Error() string {
    return fmt.Sprintf("entrega with ID %d not found", e.EntregaID)
}

// Helper constructor
func NewEntregaNotFound(id int) error {
    return &ErrEntregaNotFound{EntregaID: id}
}

// ErrValidacao carries the human-readable message shown to the client.
type ErrValidacao struct {
    Msg string
}

func (e *ErrValidacao) Error() string {
    return e.Msg
}

func NewValidacao(msg string) error {
    return &ErrValidacao{Msg: msg}
}

// ErrCredenciaisInvalidas covers both unknown email and wrong password so
// the two cases cannot be told apart from outside.
var ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
