// internal/service/contacto_service.go
package service

import (
    "context"
    "log"
    "strings"

    "github.com/google/uuid"

    appErrors "github.com/ipca-dev/lojasocial-backend/internal/errors"
    "github.com/ipca-dev/lojasocial-backend/internal/model"
    "github.com/ipca-dev/lojasocial-backend/internal/queue"
    "github.com/ipca-dev/lojasocial-backend/internal/repository"
)

type ContactoService struct {
    ContactoRepo repository.ContactoRepositoryInterface
    Queue        queue.Queue
}

// Submeter validates, persists and queues a contact message for forwarding.
// Validation happens here regardless of what the client checked. The queue
// publish is best-effort: the message is already durable in the store, so a
// publish failure only delays forwarding.
func (s *ContactoService) Submeter(ctx context.Context, nome, email, mensagem string) (*model.MensagemContacto, error) {
    email = strings.TrimSpace(email)
    mensagem = strings.TrimSpace(mensagem)
    if email == "" || mensagem == "" {
        return nil, appErrors.NewValidacao("Email e mensagem são obrigatórios")
    }

    m := &model.MensagemContacto{
        Referencia: uuid.NewString(),
        Nome:       strings.TrimSpace(nome),
        Email:      email,
        Mensagem:   mensagem,
    }
    if err := s.ContactoRepo.Create(ctx, m); err != nil {
        return nil, err
    }

    if s.Queue != nil {
        if err := s.Queue.Publish(queue.TopicContactoNotificacoes, m.ID); err != nil {
            log.Println("⚠️ failed to enqueue contact notification", m.ID, ":", err)
        }
    }

    return m, nil
}
