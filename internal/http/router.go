package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/kasir/internal/http/auth"
	"github.com/MrJamesThe3rd/kasir/internal/http/cart"
	"github.com/MrJamesThe3rd/kasir/internal/http/product"
	"github.com/MrJamesThe3rd/kasir/internal/http/report"
	"github.com/MrJamesThe3rd/kasir/internal/http/settings"
	"github.com/MrJamesThe3rd/kasir/internal/http/transaction"
)

type Options struct {
	AllowedOrigins []string
	Auth           *auth.Authenticator
}

func New(
	opts Options,
	cartsV1 *cart.Handler,
	transactionsV1 *transaction.Handler,
	productsV1 *product.Handler,
	reportsV1 *report.Handler,
	settingsV1 *settings.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Auth != nil {
			r.Use(opts.Auth.Middleware)
		}

		r.Route("/products", productsV1.Routes)

		r.Route("/carts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cartsV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)

		r.Route("/settings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			settingsV1.Routes(r)
		})
	})

	return router
}
