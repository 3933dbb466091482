// internal/model/mensagem_contacto.go
package model

import "time"

type MensagemContacto struct {
    ID          int       `db:"id" json:"id"`
    Referencia  string    `db:"referencia" json:"referencia"`
    Nome        string    `db:"nome" json:"nome,omitempty"`
    Email       string    `db:"email" json:"email"`
    Mensagem    string    `db:"mensagem" json:"mensagem"`
    Encaminhada bool      `db:"encaminhada" json:"encaminhada"`
    CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
