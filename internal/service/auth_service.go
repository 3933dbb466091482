// internal/service/auth_service.go
package service

import (
    "context"

    "golang.org/x/crypto/bcrypt"

    "github.com/ipca-dev/lojasocial-backend/internal/auth"
    appErrors "github.com/ipca-dev/lojasocial-backend/internal/errors"
    "github.com/ipca-dev/lojasocial-backend/internal/model"
    "github.com/ipca-dev/lojasocial-backend/internal/repository"
)

type AuthService struct {
    ColaboradorRepo repository.ColaboradorRepositoryInterface
    Tokens          *auth.TokenManager
}

// Login verifies an email/password pair and, on success, returns the staff
// profile with a fresh session token. Unknown email and wrong password both
// map to ErrCredenciaisInvalidas so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.PerfilColaborador, error) {
    if email == "" || password == "" {
        return nil, appErrors.NewValidacao("Email e password são obrigatórios")
    }

    colaborador, err := s.ColaboradorRepo.GetByEmail(ctx, email)
    if err != nil {
        return nil, err
    }
    if colaborador == nil {
        return nil, appErrors.ErrCredenciaisInvalidas
    }

    if err := bcrypt.CompareHashAndPassword([]byte(colaborador.PasswordHash), []byte(password)); err != nil {
        return nil, appErrors.ErrCredenciaisInvalidas
    }

    token, err := s.Tokens.Issue(colaborador.ID)
    if err != nil {
        return nil, err
    }

    return &model.PerfilColaborador{
        ID:    colaborador.ID,
        Nome:  colaborador.Nome,
        Email: colaborador.Email,
        Token: token,
    }, nil
}
