// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ipca-dev/lojasocial-backend/internal/auth"
	"github.com/ipca-dev/lojasocial-backend/internal/controller"
	"github.com/ipca-dev/lojasocial-backend/internal/db"
	"github.com/ipca-dev/lojasocial-backend/internal/model"
	"github.com/ipca-dev/lojasocial-backend/internal/queue"
	"github.com/ipca-dev/lojasocial-backend/internal/repository"
	"github.com/ipca-dev/lojasocial-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	pool, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer pool.Close()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens := auth.NewTokenManager(secret)

	campanhaRepo := &repository.CampanhaRepository{DB: pool}
	stockRepo := &repository.StockRepository{DB: pool}
	beneficiarioRepo := &repository.BeneficiarioRepository{DB: pool}
	entregaRepo := &repository.EntregaRepository{DB: pool}
	colaboradorRepo := &repository.ColaboradorRepository{DB: pool}
	contactoRepo := &repository.ContactoRepository{DB: pool}

	// Contact notifications go through AMQP when a broker is configured,
	// otherwise through the in-process queue with a local subscriber.
	var q queue.Queue
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		amqpQueue, err := queue.DialAMQP(amqpURL)
		if err != nil {
			log.Fatalf("failed to connect to AMQP: %v", err)
		}
		defer amqpQueue.Close()
		q = amqpQueue
		log.Println("✅ Notificações de contacto via AMQP")
	} else {
		memQueue := queue.NewInMemoryQueue()
		notifier := &service.Notifier{
			ContactoRepo: contactoRepo,
			SendFunc:     mockForward,
		}
		if err := notifier.Start(memQueue); err != nil {
			log.Fatalf("failed to start notifier: %v", err)
		}
		q = memQueue
		log.Println("⚠️ AMQP_URL não definido, notificações em memória")
	}

	authService := &service.AuthService{
		ColaboradorRepo: colaboradorRepo,
		Tokens:          tokens,
	}
	stockService := &service.StockService{
		StockRepo: stockRepo,
	}
	contactoService := &service.ContactoService{
		ContactoRepo: contactoRepo,
		Queue:        q,
	}

	publicController := &controller.PublicController{
		CampanhaRepo:    campanhaRepo,
		StockService:    stockService,
		ContactoService: contactoService,
	}
	authController := &controller.AuthController{
		AuthService: authService,
	}
	adminController := &controller.AdminController{
		BeneficiarioRepo: beneficiarioRepo,
		EntregaRepo:      entregaRepo,
		StockService:     stockService,
	}

	r := newRouter(tokens, publicController, authController, adminController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Servidor a correr na porta " + port)
	log.Println("📍 Health check: http://localhost:" + port + "/health")
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// mockForward stands in for the mailer that forwards contact messages to
// the store inbox.
func mockForward(m *model.MensagemContacto) error {
	log.Printf("📩 Encaminhada mensagem %s de %s (%d bytes)\n", m.Referencia, m.Email, len(m.Mensagem))
	time.Sleep(10 * time.Millisecond)
	return nil
}
