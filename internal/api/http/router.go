package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/examhall/examhall/internal/auth"
	"github.com/examhall/examhall/internal/config"
	"github.com/examhall/examhall/internal/exam"
	"github.com/examhall/examhall/internal/rbac"
)

// New assembles the full HTTP surface.
func New(cfg config.Config, store exam.Store, svc *exam.Service, sessions *auth.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "X-Session-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(auth.Middleware(sessions))

	r.Route("/api", func(ar chi.Router) {
		ar.Post("/register", RegisterHandler(store))
		ar.Post("/login", LoginHandler(store, sessions))
		ar.Post("/admin_login", AdminLoginHandler(sessions, cfg.AdminUser, cfg.AdminPassHash))
		ar.Get("/session", SessionHandler())
		ar.Post("/logout", LogoutHandler())

		ar.With(rbac.Require("exam:start")).Post("/start_exam", StartExamHandler(svc))
		ar.With(rbac.Require("exam:submit")).Post("/submit_exam", SubmitExamHandler(svc))
		ar.With(rbac.RequireAny("results:view-own", "results:view-all")).
			Get("/results", ResultsHandler(store))

		ar.With(rbac.Require("questions:seed")).Post("/init_db", InitDBHandler(store, cfg.Categories))
		ar.Route("/admin", func(adm chi.Router) {
			adm.With(rbac.Require("students:list")).Get("/students", ListStudentsHandler(store))
			adm.With(rbac.Require("students:delete")).Delete("/students/{userID}", DeleteStudentHandler(store))
			adm.With(rbac.Require("students:reset")).Post("/students/{userID}/reset", ResetStudentHandler(store))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	return r
}
