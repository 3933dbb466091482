// internal/controller/admin_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strconv"
    "time"

    "github.com/go-chi/chi/v5"

    "github.com/ipca-dev/lojasocial-backend/internal/model"
    "github.com/ipca-dev/lojasocial-backend/internal/repository"
    "github.com/ipca-dev/lojasocial-backend/internal/service"
)

type AdminController struct {
    BeneficiarioRepo repository.BeneficiarioRepositoryInterface
    EntregaRepo      repository.EntregaRepositoryInterface
    StockService     *service.StockService
}

// ListBeneficiarios returns every beneficiary, ordered by name
func (c *AdminController) ListBeneficiarios(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := queryContext(r)
    defer cancel()

    beneficiarios, err := c.BeneficiarioRepo.ListAll(ctx)
    if err != nil {
        respondError(w, err)
        return
    }
    respondData(w, http.StatusOK, beneficiarios)
}

// AdicionarStock inserts a stock item and returns its new id
func (c *AdminController) AdicionarStock(w http.ResponseWriter, r *http.Request) {
    var body struct {
        ProdutoID         int        `json:"produto_id"`
        QuantidadeInicial int        `json:"quantidade_inicial"`
        DataValidade      *time.Time `json:"data_validade"`
        CampanhaID        *int       `json:"campanha_id"`
        ColaboradorID     int        `json:"colaborador_id"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        respondJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "Corpo do pedido inválido"})
        return
    }

    item := &model.StockItem{
        ProdutoID:         body.ProdutoID,
        QuantidadeInicial: body.QuantidadeInicial,
        DataValidade:      body.DataValidade,
        CampanhaID:        body.CampanhaID,
        ColaboradorID:     body.ColaboradorID,
    }

    ctx, cancel := queryContext(r)
    defer cancel()

    if err := c.StockService.AdicionarItem(ctx, item); err != nil {
        respondError(w, err)
        return
    }

    respondMessage(w, http.StatusCreated, "Item adicionado ao stock", map[string]int{"id": item.ID})
}

// ConcluirEntrega marks a delivery as delivered
func (c *AdminController) ConcluirEntrega(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        respondJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "Identificador de entrega inválido"})
        return
    }

    ctx, cancel := queryContext(r)
    defer cancel()

    entrega, err := c.EntregaRepo.Concluir(ctx, id)
    if err != nil {
        respondError(w, err)
        return
    }

    respondMessage(w, http.StatusOK, "Entrega concluída com sucesso", entrega)
}
