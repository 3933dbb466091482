// internal/model/beneficiario.go
package model

type Beneficiario struct {
    ID           int    `db:"id" json:"id"`
    NomeCompleto string `db:"nome_completo" json:"nome_completo"`
    NumEstudante string `db:"num_estudante" json:"num_estudante"`
    Curso        string `db:"curso" json:"curso"`
    Estado       string `db:"estado" json:"estado"`
}
