package repository

import (
    "context"
    "database/sql"

    "github.com/ipca-dev/lojasocial-backend/internal/model"
)

type ColaboradorRepositoryInterface interface {
    GetByEmail(ctx context.Context, email string) (*model.Colaborador, error)
}

type ColaboradorRepository struct {
    DB *sql.DB
}

// GetByEmail fetches a staff member by exact email match
func (r *ColaboradorRepository) GetByEmail(ctx context.Context, email string) (*model.Colaborador, error) {
    query := `
        SELECT id, nome, email, password_hash
        FROM colaboradores
        WHERE email = $1
    `
    row := r.DB.QueryRowContext(ctx, query, email)

    var c model.Colaborador
    if err := row.Scan(&c.ID, &c.Nome, &c.Email, &c.PasswordHash); err != nil {
        if err == sql.ErrNoRows {
            return nil, nil // not found
        }
        return nil, err
    }
    return &c, nil
}

var _ ColaboradorRepositoryInterface = (*ColaboradorRepository)(nil)
