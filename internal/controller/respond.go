// internal/controller/respond.go
package controller

import (
    "context"
    "encoding/json"
    "errors"
    "log"
    "net/http"
    "time"

    appErrors "github.com/ipca-dev/lojasocial-backend/internal/errors"
)

// envelope is the wire shape of every response: {success, message?, data?}.
type envelope struct {
    Success bool   `json:"success"`
    Message string `json:"message,omitempty"`
    Data    any    `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, env envelope) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(env)
}

func respondData(w http.ResponseWriter, status int, data any) {
    respondJSON(w, status, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string, data any) {
    respondJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

// respondError maps service errors onto the status taxonomy: validation 400,
// credentials 401, not found 404, everything else a generic 500 with the
// real cause only logged.
func respondError(w http.ResponseWriter, err error) {
    var validacao *appErrors.ErrValidacao
    var notFound *appErrors.ErrEntregaNotFound

    switch {
    case errors.As(err, &validacao):
        respondJSON(w, http.StatusBadRequest, envelope{Success: false, Message: validacao.Msg})
    case errors.Is(err, appErrors.ErrCredenciaisInvalidas):
        respondJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: "Credenciais inválidas"})
    case errors.As(err, &notFound):
        respondJSON(w, http.StatusNotFound, envelope{Success: false, Message: "Entrega não encontrada"})
    default:
        log.Println("❌ internal error:", err)
        respondJSON(w, http.StatusInternalServerError, envelope{Success: false, Message: "Erro interno do servidor"})
    }
}

// queryContext bounds every store call to the request lifetime plus a hard
// timeout, so a hung database cannot pin the handler.
func queryContext(r *http.Request) (context.Context, context.CancelFunc) {
    return context.WithTimeout(r.Context(), 5*time.Second)
}
