package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/ipca-dev/lojasocial-backend/internal/db"
	"github.com/ipca-dev/lojasocial-backend/internal/model"
	"github.com/ipca-dev/lojasocial-backend/internal/queue"
	"github.com/ipca-dev/lojasocial-backend/internal/repository"
	"github.com/ipca-dev/lojasocial-backend/internal/service"
)

type queueJob struct {
	MensagemID int `json:"mensagem_id"`
}

const maxRetries = 3

// jobOutcome is the follow-up for a processed delivery.
type jobOutcome int

const (
	jobDone  jobOutcome = iota // ack
	jobRetry                   // republish with bumped retry count, ack original
	jobDead                    // retry budget spent, ack without requeue
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	pool, err := db.Connect()
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer pool.Close()

	contactoRepo := &repository.ContactoRepository{DB: pool}
	notifier := &service.Notifier{
		ContactoRepo: contactoRepo,
		SendFunc:     forwardMensagem,
	}

	amqpURL := os.Getenv("AMQP_URL")
	if amqpURL == "" {
		log.Fatal("AMQP_URL is required")
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.TopicContactoNotificacoes, // name
		true,                            // durable
		false,                           // delete when unused
		false,                           // exclusive
		false,                           // no-wait
		nil,                             // arguments
	)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job queueJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Println("Invalid job:", err)
				d.Ack(false)
				continue
			}

			retries := retryCount(d.Headers)
			switch classify(notifier.Handle(job.MensagemID), retries) {
			case jobRetry:
				// Nack redelivers with the original headers, so the
				// retry count would never advance. Republish with the
				// bumped header instead and ack the old delivery.
				if err := republish(ch, d.Body, retries+1); err != nil {
					log.Println("Failed to requeue job:", err)
					d.Nack(false, true) // broker-side requeue as a last resort
					continue
				}
				log.Printf("Requeued mensagem %d (retry %d/%d)\n", job.MensagemID, retries+1, maxRetries)
			case jobDead:
				log.Printf("Job permanently failed after %d retries: mensagem %d\n", maxRetries, job.MensagemID)
			}

			d.Ack(false)
		}
	}()

	log.Println("Worker running, waiting for messages...")
	<-forever
}

// classify decides what happens to a delivery after handling it: successful
// jobs are done, failed ones retry until the budget is spent, then they are
// acked dead.
func classify(err error, retries int) jobOutcome {
	if err == nil {
		return jobDone
	}
	if retries < maxRetries {
		return jobRetry
	}
	return jobDead
}

// republish re-enqueues a job body carrying its retry count in the
// x-retry-count header.
func republish(ch *amqp.Channel, body []byte, retries int) error {
	return ch.Publish(
		"",
		queue.TopicContactoNotificacoes,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Headers:     amqp.Table{"x-retry-count": int32(retries)},
			Body:        body,
		},
	)
}

// retryCount reads the x-retry-count header; brokers deliver it as a
// variety of integer widths.
func retryCount(headers amqp.Table) int {
	switch v := headers["x-retry-count"].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	default:
		return 0
	}
}

// forwardMensagem stands in for the mailer that delivers contact messages
// to the store inbox.
func forwardMensagem(m *model.MensagemContacto) error {
	log.Printf("📩 Encaminhada mensagem %s de %s\n", m.Referencia, m.Email)
	return nil
}
