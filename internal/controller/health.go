// internal/controller/health.go
package controller

import (
    "net/http"
    "time"
)

// Health is the liveness probe
func Health(w http.ResponseWriter, r *http.Request) {
    respondJSON(w, http.StatusOK, envelope{
        Success: true,
        Message: "API Loja Social IPCA está a funcionar",
        Data:    map[string]string{"timestamp": time.Now().Format(time.RFC3339)},
    })
}

// NotFound is the fallback for unmatched routes
func NotFound(w http.ResponseWriter, r *http.Request) {
    respondJSON(w, http.StatusNotFound, envelope{
        Success: false,
        Message: "Rota não encontrada",
    })
}
