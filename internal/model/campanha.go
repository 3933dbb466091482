// internal/model/campanha.go
package model

import "time"

type Campanha struct {
    ID         int        `db:"id" json:"id"`
    Nome       string     `db:"nome" json:"nome"`
    Descricao  *string    `db:"descricao" json:"descricao,omitempty"`
    DataInicio *time.Time `db:"data_inicio" json:"data_inicio,omitempty"`
}
