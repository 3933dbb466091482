package service_test

import (
	"context"
	"testing"

	"github.com/ipca-dev/lojasocial-backend/internal/model"
	"github.com/ipca-dev/lojasocial-backend/internal/service"
)

// MockStockRepo serves canned category rows and records inserts
type MockStockRepo struct {
	rows     []string
	inserted []*model.StockItem
	nextID   int
}

func (m *MockStockRepo) SummaryRows(ctx context.Context) ([]string, error) {
	return m.rows, nil
}

func (m *MockStockRepo) Insert(ctx context.Context, item *model.StockItem) error {
	m.nextID++
	item.ID = m.nextID
	item.QuantidadeAtual = item.QuantidadeInicial
	m.inserted = append(m.inserted, item)
	return nil
}

func TestSummaryCountsPerCategory(t *testing.T) {
	repo := &MockStockRepo{rows: []string{
		"Alimentação", "Higiene", "Alimentação", "Vestuário", "Higiene", "Alimentação",
	}}
	svc := &service.StockService{StockRepo: repo}

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]int{"Alimentação": 3, "Higiene": 2, "Vestuário": 1}
	total := 0
	for _, s := range summary {
		if want[s.Categoria] != s.Count {
			t.Errorf("categoria %s: expected %d, got %d", s.Categoria, want[s.Categoria], s.Count)
		}
		total += s.Count
	}
	if total != len(repo.rows) {
		t.Errorf("sum of counts = %d, expected %d", total, len(repo.rows))
	}

	// Output order follows first appearance in the input rows
	order := []string{"Alimentação", "Higiene", "Vestuário"}
	if len(summary) != len(order) {
		t.Fatalf("expected %d categories, got %d", len(order), len(summary))
	}
	for i, categoria := range order {
		if summary[i].Categoria != categoria {
			t.Errorf("position %d: expected %s, got %s", i, categoria, summary[i].Categoria)
		}
	}
}

func TestSummaryEmpty(t *testing.T) {
	svc := &service.StockService{StockRepo: &MockStockRepo{rows: []string{}}}

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(summary) != 0 {
		t.Errorf("expected no categories, got %d", len(summary))
	}
}

func TestAdicionarItemInitializesQuantidadeAtual(t *testing.T) {
	repo := &MockStockRepo{}
	svc := &service.StockService{StockRepo: repo}

	item := &model.StockItem{ProdutoID: 3, QuantidadeInicial: 5, ColaboradorID: 1}
	if err := svc.AdicionarItem(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID == 0 {
		t.Error("expected item to receive an id")
	}
	if item.QuantidadeAtual != 5 {
		t.Errorf("expected quantidade_atual 5, got %d", item.QuantidadeAtual)
	}
}

func TestAdicionarItemValidation(t *testing.T) {
	repo := &MockStockRepo{}
	svc := &service.StockService{StockRepo: repo}

	cases := []model.StockItem{
		{QuantidadeInicial: 5, ColaboradorID: 1},            // missing produto
		{ProdutoID: 3, ColaboradorID: 1},                    // missing quantidade
		{ProdutoID: 3, QuantidadeInicial: 5},                // missing colaborador
		{ProdutoID: 3, QuantidadeInicial: -2, ColaboradorID: 1}, // negative quantidade
	}
	for i, item := range cases {
		if err := svc.AdicionarItem(context.Background(), &item); err == nil {
			t.Errorf("case %d: expected validation error, got nil", i)
		}
	}
	if len(repo.inserted) != 0 {
		t.Errorf("expected no inserts, got %d", len(repo.inserted))
	}
}
