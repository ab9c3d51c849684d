package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/budgie/internal/http/importcsv"
	"github.com/MrJamesThe3rd/budgie/internal/http/report"
	"github.com/MrJamesThe3rd/budgie/internal/http/summary"
	"github.com/MrJamesThe3rd/budgie/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	summaryV1 *summary.Handler,
	reportV1 *report.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1/users/{username}", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/summary", summaryV1.Routes)

		r.Route("/report", reportV1.Routes)

		r.Route("/import", importV1.Routes)
	})

	return router
}
