package http

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/dezporcento/tipshare-backend-go/internal/config"
	"github.com/dezporcento/tipshare-backend-go/internal/handler/http/middleware"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/jwt"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/storage"
)

type Handlers struct {
	Auth     AuthHandler
	Record   WorkRecordHandler
	Employee EmployeeHandler
	Stats    StatsHandler
	Report   ReportHandler
	Settings SettingsHandler
	Audit    AuditHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers, fileStorage storage.FileStorage) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "tipshare-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.SourceIP)

	// Stored report artifacts, linked from the report e-mail
	r.Get("/downloads/*", serveArtifact(fileStorage))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/records", func(r chi.Router) {
				r.Get("/", h.Record.List)
				r.Post("/", h.Record.Create)
				r.Get("/names", h.Record.DistinctNames)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Record.Get)
					r.Put("/", h.Record.Update)
					r.Delete("/", h.Record.Delete)
				})
			})

			r.Route("/day-notes", func(r chi.Router) {
				r.Put("/", h.Record.UpsertDayNote)
				r.Get("/{workDate}", h.Record.GetDayNote)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
				})
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/overview", h.Stats.Overview)
				r.Get("/totals", h.Stats.Totals)
				r.Get("/ranking", h.Stats.Ranking)
				r.Get("/date-spans", h.Stats.DateSpans)
				r.Route("/history", func(r chi.Router) {
					r.Get("/presence", h.Stats.PresenceHistory)
					r.Get("/payments", h.Stats.PaymentHistory)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/send", h.Report.Send)
				r.Get("/dispatches", h.Report.ListDispatches)
				r.Get("/{workDate}/{format}", h.Report.Download)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/mail", h.Settings.Get)
				r.Put("/mail", h.Settings.Save)
			})

			r.Route("/logs", func(r chi.Router) {
				r.Get("/", h.Audit.List)
				r.Delete("/", h.Audit.Clear)
			})
		})
	})
	return r
}

func serveArtifact(fileStorage storage.FileStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := chi.URLParam(r, "*")

		f, err := fileStorage.Open(r.Context(), path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		if _, err := io.Copy(w, f); err != nil {
			slog.Error("Serve artifact write error", "error", err, "path", path)
		}
	}
}
