// internal/service/stock_service.go
package service

import (
    "context"

    appErrors "github.com/ipca-dev/lojasocial-backend/internal/errors"
    "github.com/ipca-dev/lojasocial-backend/internal/model"
    "github.com/ipca-dev/lojasocial-backend/internal/repository"
)

type StockService struct {
    StockRepo repository.StockRepositoryInterface
}

// CategoriaContagem is one slice of the public stock histogram. Count is the
// number of stock-item rows in the category, not a physical quantity.
type CategoriaContagem struct {
    Categoria string `json:"categoria"`
    Count     int    `json:"count"`
}

// Summary groups the category-only view rows into a histogram. Output order
// is first-seen order of the categories as the rows arrive from the store.
func (s *StockService) Summary(ctx context.Context) ([]CategoriaContagem, error) {
    categorias, err := s.StockRepo.SummaryRows(ctx)
    if err != nil {
        return nil, err
    }

    index := map[string]int{}
    summary := []CategoriaContagem{}
    for _, categoria := range categorias {
        if i, ok := index[categoria]; ok {
            summary[i].Count++
            continue
        }
        index[categoria] = len(summary)
        summary = append(summary, CategoriaContagem{Categoria: categoria, Count: 1})
    }
    return summary, nil
}

// AdicionarItem validates and inserts a stock item. quantidade_atual starts
// equal to quantidade_inicial.
func (s *StockService) AdicionarItem(ctx context.Context, item *model.StockItem) error {
    if item.ProdutoID == 0 || item.QuantidadeInicial == 0 || item.ColaboradorID == 0 {
        return appErrors.NewValidacao("Produto, quantidade e colaborador são obrigatórios")
    }
    if item.QuantidadeInicial < 0 {
        return appErrors.NewValidacao("Quantidade inicial tem de ser positiva")
    }
    return s.StockRepo.Insert(ctx, item)
}
