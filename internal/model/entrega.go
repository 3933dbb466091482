// internal/model/entrega.go
package model

type Entrega struct {
    ID     int    `db:"id" json:"id"`
    Estado string `db:"estado" json:"estado"` // pendente, entregue
}
