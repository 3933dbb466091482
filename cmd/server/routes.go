// cmd/server/routes.go
package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ipca-dev/lojasocial-backend/internal/auth"
	"github.com/ipca-dev/lojasocial-backend/internal/controller"
	"github.com/ipca-dev/lojasocial-backend/internal/web"
)

// newRouter wires all routes. Admin routes are registered individually with
// the token middleware instead of a mounted sub-router, so unknown /api/*
// paths still reach the 404 envelope rather than a 401 from the gate.
func newRouter(
	tokens *auth.TokenManager,
	publicController *controller.PublicController,
	authController *controller.AuthController,
	adminController *controller.AdminController,
) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.NotFound(controller.NotFound)

	r.Get("/health", controller.Health)

	// Public routes
	r.Route("/api/public", func(r chi.Router) {
		r.Get("/campanhas", publicController.ListCampanhas)
		r.Get("/stock-summary", publicController.StockSummary)
		r.Post("/contacto", publicController.SubmeterContacto)
	})

	r.Post("/api/auth/login", authController.Login)

	// Admin routes, gated behind the session token
	admin := r.With(auth.RequireToken(tokens))
	admin.Get("/api/beneficiarios", adminController.ListBeneficiarios)
	admin.Post("/api/stock", adminController.AdicionarStock)
	admin.Put("/api/entregas/{id}/concluir", adminController.ConcluirEntrega)

	// Embedded frontend
	r.Get("/", web.Index)
	r.Handle("/static/*", web.Static())

	return r
}
