// internal/service/notifier.go
package service

import (
	"context"
	"log"

	"github.com/ipca-dev/lojasocial-backend/internal/model"
	"github.com/ipca-dev/lojasocial-backend/internal/queue"
)

// ContactoNotificacaoRepo defines the methods the notifier needs
type ContactoNotificacaoRepo interface {
	GetByID(ctx context.Context, id int) (*model.MensagemContacto, error)
	MarcarEncaminhada(ctx context.Context, id int) error
}

// Notifier forwards queued contact messages to the store inbox and marks
// them as encaminhada.
type Notifier struct {
	ContactoRepo ContactoNotificacaoRepo
	SendFunc     func(m *model.MensagemContacto) error
}

// Start subscribes the notifier to the contact-notification topic.
func (n *Notifier) Start(q queue.Queue) error {
	return q.Subscribe(queue.TopicContactoNotificacoes, n.Handle)
}

// Handle processes one queued job. A non-nil return triggers the queue's
// retry.
func (n *Notifier) Handle(payload any) error {
	mensagemID, ok := payload.(int)
	if !ok {
		log.Println("⚠️ Invalid payload type, expected int")
		return nil // no retry for garbage
	}

	ctx := context.Background()

	msg, err := n.ContactoRepo.GetByID(ctx, mensagemID)
	if err != nil {
		log.Println("⚠️ Failed to fetch mensagem:", err)
		return err
	}
	if msg == nil {
		log.Println("⚠️ Mensagem not found for ID:", mensagemID)
		return nil // no retry
	}
	if msg.Encaminhada {
		return nil // already forwarded
	}

	if err := n.SendFunc(msg); err != nil {
		log.Println("⚠️ Failed to forward mensagem:", err)
		return err // triggers retry in queue
	}

	if err := n.ContactoRepo.MarcarEncaminhada(ctx, mensagemID); err != nil {
		log.Println("⚠️ Failed to mark mensagem as encaminhada:", err)
		return err
	}

	log.Println("✅ Mensagem de contacto encaminhada:", mensagemID)
	return nil
}
