package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Santiagox01/VeterinariaFinal/internal/http/accessory"
	"github.com/Santiagox01/VeterinariaFinal/internal/http/importcsv"
	"github.com/Santiagox01/VeterinariaFinal/internal/http/invoice"
	"github.com/Santiagox01/VeterinariaFinal/internal/http/sale"
)

func New(
	allowedOrigins []string,
	accessoriesV1 *accessory.Handler,
	salesV1 *sale.Handler,
	invoicesV1 *invoice.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/accessories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accessoriesV1.Routes(r)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			salesV1.Routes(r)
			invoicesV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
