package repository

import (
    "context"
    "database/sql"

    appErrors "github.com/ipca-dev/lojasocial-backend/internal/errors"
    "github.com/ipca-dev/lojasocial-backend/internal/model"
)

type EntregaRepositoryInterface interface {
    Concluir(ctx context.Context, id int) (*model.Entrega, error)
}

type EntregaRepository struct {
    DB *sql.DB
}

// Concluir sets the delivery state to "entregue" and returns the updated
// record. Re-completing an already delivered entrega rewrites the same
// state.
func (r *EntregaRepository) Concluir(ctx context.Context, id int) (*model.Entrega, error) {
    query := `UPDATE entregas SET estado = $1 WHERE id = $2 RETURNING id, estado`

    var e model.Entrega
    err := r.DB.QueryRowContext(ctx, query, "entregue", id).Scan(&e.ID, &e.Estado)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewEntregaNotFound(id)
        }
        return nil, err
    }
    return &e, nil
}

var _ EntregaRepositoryInterface = (*EntregaRepository)(nil)
