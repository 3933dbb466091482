package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ipca-dev/lojasocial-backend/internal/auth"
	"github.com/ipca-dev/lojasocial-backend/internal/controller"
	"github.com/ipca-dev/lojasocial-backend/internal/model"
	"github.com/ipca-dev/lojasocial-backend/internal/service"
)

type MockColaboradorRepo struct {
	colaboradores map[string]*model.Colaborador
}

func (m *MockColaboradorRepo) GetByEmail(ctx context.Context, email string) (*model.Colaborador, error) {
	return m.colaboradores[email], nil
}

func newAuthController(t *testing.T) *controller.AuthController {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &MockColaboradorRepo{colaboradores: map[string]*model.Colaborador{
		"maria@ipca.pt": {ID: 1, Nome: "Maria Silva", Email: "maria@ipca.pt", PasswordHash: string(hash)},
	}}
	return &controller.AuthController{
		AuthService: &service.AuthService{
			ColaboradorRepo: repo,
			Tokens:          auth.NewTokenManager("test-secret"),
		},
	}
}

func postLogin(ctrl *controller.AuthController, email, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.Login(w, req)
	return w
}

func TestLoginReturnsProfileWithoutHash(t *testing.T) {
	ctrl := newAuthController(t)

	w := postLogin(ctrl, "maria@ipca.pt", "segredo123")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	raw := w.Body.String()
	if strings.Contains(raw, "password") || strings.Contains(raw, "hash") {
		t.Errorf("response must not leak credential fields: %s", raw)
	}

	var res struct {
		Success bool                    `json:"success"`
		Data    model.PerfilColaborador `json:"data"`
	}
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.Data.ID != 1 || res.Data.Email != "maria@ipca.pt" {
		t.Errorf("unexpected perfil: %+v", res.Data)
	}
	if res.Data.Token == "" {
		t.Error("expected a session token")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctrl := newAuthController(t)

	unknown := postLogin(ctrl, "quem@ipca.pt", "segredo123")
	wrong := postLogin(ctrl, "maria@ipca.pt", "errada")

	if unknown.Code != http.StatusUnauthorized {
		t.Errorf("unknown email: expected 401, got %d", unknown.Code)
	}
	if wrong.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", wrong.Code)
	}
	if unknown.Body.String() != wrong.Body.String() {
		t.Errorf("bodies differ: %q vs %q", unknown.Body.String(), wrong.Body.String())
	}
}

func TestLoginMissingFieldsIs400(t *testing.T) {
	ctrl := newAuthController(t)

	w := postLogin(ctrl, "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Errorf("expected failure envelope, got %s", w.Body.String())
	}
}
