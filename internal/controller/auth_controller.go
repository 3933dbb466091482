// internal/controller/auth_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/ipca-dev/lojasocial-backend/internal/service"
)

type AuthController struct {
    AuthService *service.AuthService
}

// Login verifies staff credentials and issues a session token
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Email    string `json:"email"`
        Password string `json:"password"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        respondJSON(w, http.StatusBadRequest, envelope{Success: false, Message: "Corpo do pedido inválido"})
        return
    }

    ctx, cancel := queryContext(r)
    defer cancel()

    perfil, err := c.AuthService.Login(ctx, body.Email, body.Password)
    if err != nil {
        respondError(w, err)
        return
    }

    respondMessage(w, http.StatusOK, "Login realizado com sucesso", perfil)
}
