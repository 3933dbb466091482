package repository

import (
    "context"
    "database/sql"

    "github.com/ipca-dev/lojasocial-backend/internal/model"
)

// BeneficiarioRepositoryInterface defines methods used by the admin controller
type BeneficiarioRepositoryInterface interface {
    ListAll(ctx context.Context) ([]model.Beneficiario, error)
}

// BeneficiarioRepository is the concrete implementation
type BeneficiarioRepository struct {
    DB *sql.DB
}

// ListAll fetches every beneficiary, ordered by name
func (r *BeneficiarioRepository) ListAll(ctx context.Context) ([]model.Beneficiario, error) {
    query := `
        SELECT id, nome_completo, num_estudante, curso, estado
        FROM beneficiarios
        ORDER BY nome_completo
    `
    rows, err := r.DB.QueryContext(ctx, query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    beneficiarios := []model.Beneficiario{}
    for rows.Next() {
        var b model.Beneficiario
        if err := rows.Scan(&b.ID, &b.NomeCompleto, &b.NumEstudante, &b.Curso, &b.Estado); err != nil {
            return nil, err
        }
        beneficiarios = append(beneficiarios, b)
    }
    return beneficiarios, rows.Err()
}

var _ BeneficiarioRepositoryInterface = (*BeneficiarioRepository)(nil)
