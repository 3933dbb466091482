package repository

import (
    "context"
    "database/sql"

    "github.com/ipca-dev/lojasocial-backend/internal/model"
)

type CampanhaRepositoryInterface interface {
    ListAtivas(ctx context.Context) ([]model.Campanha, error)
}

type CampanhaRepository struct {
    DB *sql.DB
}

// ListAtivas returns campaigns whose start date has passed (or was never
// set). The predicate is explicit: campaigns scheduled for the future are
// not shown publicly.
func (r *CampanhaRepository) ListAtivas(ctx context.Context) ([]model.Campanha, error) {
    query := `
        SELECT id, nome, descricao, data_inicio
        FROM campanhas
        WHERE data_inicio IS NULL OR data_inicio <= NOW()
        ORDER BY id
    `
    rows, err := r.DB.QueryContext(ctx, query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    campanhas := []model.Campanha{}
    for rows.Next() {
        var c model.Campanha
        if err := rows.Scan(&c.ID, &c.Nome, &c.Descricao, &c.DataInicio); err != nil {
            return nil, err
        }
        campanhas = append(campanhas, c)
    }
    return campanhas, rows.Err()
}

var _ CampanhaRepositoryInterface = (*CampanhaRepository)(nil)
