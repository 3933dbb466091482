// internal/model/stock_item.go
package model

import "time"

type StockItem struct {
    ID                int        `db:"id" json:"id"`
    ProdutoID         int        `db:"produto_id" json:"produto_id"`
    QuantidadeInicial int        `db:"quantidade_inicial" json:"quantidade_inicial"`
    QuantidadeAtual   int        `db:"quantidade_atual" json:"quantidade_atual"`
    DataValidade      *time.Time `db:"data_validade" json:"data_validade,omitempty"`
    CampanhaID        *int       `db:"campanha_id" json:"campanha_id,omitempty"`
    ColaboradorID     int        `db:"colaborador_id" json:"colaborador_id"`
}
