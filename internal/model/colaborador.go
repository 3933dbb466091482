// internal/model/colaborador.go
package model

type Colaborador struct {
    ID           int    `db:"id" json:"id"`
    Nome         string `db:"nome" json:"nome"`
    Email        string `db:"email" json:"email"`
    PasswordHash string `db:"password_hash" json:"-"`
}

// PerfilColaborador is what login returns to the client. The hash never
// leaves the repository layer in any serialized form.
type PerfilColaborador struct {
    ID    int    `json:"id"`
    Nome  string `json:"nome"`
    Email string `json:"email"`
    Token string `json:"token"`
}
