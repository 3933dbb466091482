package repository

import (
    "context"
    "database/sql"

    "github.com/ipca-dev/lojasocial-backend/internal/model"
)

type StockRepositoryInterface interface {
    Insert(ctx context.Context, item *model.StockItem) error
    SummaryRows(ctx context.Context) ([]string, error)
}

type StockRepository struct {
    DB *sql.DB
}

// Insert creates a stock item. quantidade_atual starts equal to
// quantidade_inicial ($2 is bound twice on purpose).
func (r *StockRepository) Insert(ctx context.Context, item *model.StockItem) error {
    query := `
        INSERT INTO stock_items (produto_id, quantidade_inicial, quantidade_atual, data_validade, campanha_id, colaborador_id)
        VALUES ($1, $2, $2, $3, $4, $5)
        RETURNING id
    `
    err := r.DB.QueryRowContext(ctx, query,
        item.ProdutoID, item.QuantidadeInicial, item.DataValidade, item.CampanhaID, item.ColaboradorID,
    ).Scan(&item.ID)
    if err != nil {
        return err
    }
    item.QuantidadeAtual = item.QuantidadeInicial
    return nil
}

// SummaryRows reads the public_stock_summary view, which exposes one
// category label per stock item and nothing else. Quantities never cross
// this boundary.
func (r *StockRepository) SummaryRows(ctx context.Context) ([]string, error) {
    rows, err := r.DB.QueryContext(ctx, `SELECT categoria FROM public_stock_summary`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    categorias := []string{}
    for rows.Next() {
        var categoria string
        if err := rows.Scan(&categoria); err != nil {
            return nil, err
        }
        categorias = append(categorias, categoria)
    }
    return categorias, rows.Err()
}

var _ StockRepositoryInterface = (*StockRepository)(nil)
