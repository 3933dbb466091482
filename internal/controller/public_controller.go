// internal/controller/public_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/ipca-dev/lojasocial-backend/internal/repository"
    "github.com/ipca-dev/lojasocial-backend/internal/service"
)

type PublicController struct {
    CampanhaRepo    repository.CampanhaRepositoryInterface
    StockService    *service.StockService
    ContactoService *service.ContactoService
}

// ListCampanhas returns the active campaigns
func (c *PublicController) ListCampanhas(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := queryContext(r)
    defer cancel()

    campanhas, err := c.CampanhaRepo.ListAtivas(ctx)
    if err != nil {
        respondError(w, err)
        return
    }
    respondData(w, http.StatusOK, campanhas)
}

// StockSummary returns the category histogram over current stock. Zero rows
// is an empty data array, not an error.
func (c *PublicController) StockSummary(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := queryContext(r)
    defer cancel()

    summary, err := c.StockService.Summary(ctx)
    if err != nil {
        respondError(w, err)
        return
    }
    respondData(w, http.StatusOK, summary)
}

// SubmeterContacto accepts a message from an anonymous visitor
func (c *PublicController) SubmeterContacto(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Nome     string `json:"nome"`
        Email    string `json:"email"`
        Mensagem string `json:"mensagem"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        respondJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "Corpo do pedido inválido"})
        return
    }

    ctx, cancel := queryContext(r)
    defer cancel()

    m, err := c.ContactoService.Submeter(ctx, body.Nome, body.Email, body.Mensagem)
    if err != nil {
        respondError(w, err)
        return
    }

    respondMessage(w, http.StatusCreated, "Mensagem enviada com sucesso", map[string]string{
        "referencia": m.Referencia,
    })
}
