package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/config"
	"github.com/camden-git/pvtheatresbackend/listing"
	"github.com/camden-git/pvtheatresbackend/metrics"
	"github.com/camden-git/pvtheatresbackend/services"
)

const requestTimeout = 60 * time.Second

// NewRouter wires every route of the API onto a chi router.
func NewRouter(cfg *config.Config, db *gorm.DB, tokens *TokenIssuer) http.Handler {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(corsHandler.Handler)

	users := services.NewUserService(db)
	archive := &ArchiveHandler{Listing: listing.NewService(db)}
	auth := &AuthHandler{Users: users, Tokens: tokens}
	edit := &EditHandler{
		Reports:   services.NewProcesVerbalService(db),
		Persons:   services.NewPersonService(db),
		Addresses: services.NewAddressService(db),
		Sources:   services.NewSourceService(db),
		Objects:   services.NewObjectService(db),
		Rooms:     services.NewRoomService(db),
	}
	requireUser := AuthMiddleware(tokens, users)

	r.Handle("/metrics", metrics.Handler())

	r.Route(listing.RoutePrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", auth.Register)
			r.Post("/login", auth.Login)
			r.With(requireUser).Get("/me", auth.CurrentUser)
		})

		r.Get("/search", archive.Search)

		r.Route("/proces_verbaux", func(r chi.Router) {
			r.Get("/", archive.ListProcesVerbaux())
			r.With(requireUser).Post("/", edit.CreateProcesVerbal())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", archive.GetProcesVerbal())
				r.With(requireUser).Put("/", edit.UpdateProcesVerbal())
				r.With(requireUser).Delete("/", edit.DeleteProcesVerbal())
			})
		})

		r.Route("/persons", func(r chi.Router) {
			r.Get("/", archive.ListPersons())
			r.Get("/commissioners", archive.ListCommissioners())
			r.With(requireUser).Post("/", edit.CreatePerson())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", archive.GetPerson())
				r.With(requireUser).Put("/", edit.UpdatePerson())
				r.With(requireUser).Delete("/", edit.DeletePerson())
				r.With(requireUser).Post("/addresses", edit.LinkAddress)
				r.With(requireUser).Delete("/addresses/{address_id}", edit.UnlinkAddress)
			})
		})

		r.Route("/addresses", func(r chi.Router) {
			r.Get("/", archive.ListAddresses())
			r.With(requireUser).Post("/", edit.CreateAddress())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", archive.GetAddress())
				r.With(requireUser).Put("/", edit.UpdateAddress())
				r.With(requireUser).Delete("/", edit.DeleteAddress())
			})
		})

		r.Route("/sources", func(r chi.Router) {
			r.Get("/", archive.ListSources())
			r.With(requireUser).Post("/", edit.CreateSource())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", archive.GetSource())
				r.With(requireUser).Put("/", edit.UpdateSource())
				r.With(requireUser).Delete("/", edit.DeleteSource())
			})
		})

		r.Route("/objects", func(r chi.Router) {
			r.Get("/", archive.ListObjects())
			r.With(requireUser).Post("/", edit.CreateObject())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", archive.GetObject())
				r.With(requireUser).Put("/", edit.UpdateObject())
				r.With(requireUser).Delete("/", edit.DeleteObject())
			})
		})

		r.Route("/theatres", func(r chi.Router) {
			r.Get("/", archive.ListTheatres())
			r.Get("/{id}", archive.GetTheatre())
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", archive.ListRooms())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", archive.GetRoom())
				r.With(requireUser).Put("/", edit.UpdateRoom())
			})
		})
	})

	return r
}
