package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	appErrors "github.com/ipca-dev/lojasocial-backend/internal/errors"
	"github.com/ipca-dev/lojasocial-backend/internal/model"
	"github.com/ipca-dev/lojasocial-backend/internal/service"
)

// MockContactoRepo stores messages in memory
type MockContactoRepo struct {
	msgs   map[int]*model.MensagemContacto
	nextID int
}

func (m *MockContactoRepo) Create(ctx context.Context, msg *model.MensagemContacto) error {
	m.nextID++
	msg.ID = m.nextID
	if m.msgs == nil {
		m.msgs = map[int]*model.MensagemContacto{}
	}
	m.msgs[msg.ID] = msg
	return nil
}

func (m *MockContactoRepo) GetByID(ctx context.Context, id int) (*model.MensagemContacto, error) {
	return m.msgs[id], nil
}

func (m *MockContactoRepo) MarcarEncaminhada(ctx context.Context, id int) error {
	if msg, ok := m.msgs[id]; ok {
		msg.Encaminhada = true
	}
	return nil
}

// MockQueue records publishes and can be made to fail
type MockQueue struct {
	published []any
	fail      bool
}

func (q *MockQueue) Publish(topic string, payload any) error {
	if q.fail {
		return fmt.Errorf("queue down")
	}
	q.published = append(q.published, payload)
	return nil
}

func (q *MockQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}

func TestSubmeterPersistsAndQueues(t *testing.T) {
	repo := &MockContactoRepo{}
	q := &MockQueue{}
	svc := &service.ContactoService{ContactoRepo: repo, Queue: q}

	m, err := svc.Submeter(context.Background(), "Joana", "a@b.pt", "Olá")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Referencia == "" {
		t.Error("expected a referencia")
	}
	if len(repo.msgs) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(repo.msgs))
	}
	if len(q.published) != 1 || q.published[0] != m.ID {
		t.Errorf("expected message id %d queued, got %v", m.ID, q.published)
	}
}

func TestSubmeterValidation(t *testing.T) {
	repo := &MockContactoRepo{}
	svc := &service.ContactoService{ContactoRepo: repo, Queue: &MockQueue{}}

	cases := []struct{ nome, email, mensagem string }{
		{"Joana", "", "Olá"},
		{"Joana", "a@b.pt", ""},
		{"", "", ""},
		{"Joana", "   ", "Olá"}, // whitespace only
		{"Joana", "a@b.pt", "  \t"},
	}
	var validacao *appErrors.ErrValidacao
	for i, c := range cases {
		if _, err := svc.Submeter(context.Background(), c.nome, c.email, c.mensagem); !errors.As(err, &validacao) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
	if len(repo.msgs) != 0 {
		t.Errorf("expected no stored messages, got %d", len(repo.msgs))
	}
}

func TestSubmeterQueueFailureDoesNotFailRequest(t *testing.T) {
	repo := &MockContactoRepo{}
	svc := &service.ContactoService{ContactoRepo: repo, Queue: &MockQueue{fail: true}}

	m, err := svc.Submeter(context.Background(), "", "a@b.pt", "Olá")
	if err != nil {
		t.Fatalf("expected success despite queue failure, got %v", err)
	}
	if repo.msgs[m.ID] == nil {
		t.Error("expected message to be persisted")
	}
}
