package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/ipca-dev/lojasocial-backend/internal/model"
)

type ContactoRepositoryInterface interface {
    Create(ctx context.Context, m *model.MensagemContacto) error
    GetByID(ctx context.Context, id int) (*model.MensagemContacto, error)
    MarcarEncaminhada(ctx context.Context, id int) error
}

type ContactoRepository struct {
    DB *sql.DB
}

// Create inserts a new contact message and fills in its ID
func (r *ContactoRepository) Create(ctx context.Context, m *model.MensagemContacto) error {
    m.CreatedAt = time.Now()
    query := `
        INSERT INTO mensagens_contacto (referencia, nome, email, mensagem, encaminhada, created_at)
        VALUES ($1, $2, $3, $4, false, $5)
        RETURNING id
    `
    return r.DB.QueryRowContext(ctx, query,
        m.Referencia, m.Nome, m.Email, m.Mensagem, m.CreatedAt,
    ).Scan(&m.ID)
}

// GetByID fetches a contact message by its ID
func (r *ContactoRepository) GetByID(ctx context.Context, id int) (*model.MensagemContacto, error) {
    query := `
        SELECT id, referencia, nome, email, mensagem, encaminhada, created_at
        FROM mensagens_contacto
        WHERE id = $1
    `
    var m model.MensagemContacto
    err := r.DB.QueryRowContext(ctx, query, id).Scan(
        &m.ID, &m.Referencia, &m.Nome, &m.Email, &m.Mensagem, &m.Encaminhada, &m.CreatedAt,
    )
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, nil
        }
        return nil, err
    }
    return &m, nil
}

// MarcarEncaminhada marks a message as forwarded to the store inbox
func (r *ContactoRepository) MarcarEncaminhada(ctx context.Context, id int) error {
    query := `UPDATE mensagens_contacto SET encaminhada = true WHERE id = $1`
    _, err := r.DB.ExecContext(ctx, query, id)
    return err
}

var _ ContactoRepositoryInterface = (*ContactoRepository)(nil)
