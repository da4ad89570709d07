package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/pawsteady/pba-grader/internal/api/http"
	auth "github.com/pawsteady/pba-grader/internal/auth/middleware"
	"github.com/pawsteady/pba-grader/internal/config"
	"github.com/pawsteady/pba-grader/internal/db"
	"github.com/pawsteady/pba-grader/internal/grading"
	"github.com/pawsteady/pba-grader/internal/normalize"
	"github.com/pawsteady/pba-grader/internal/submission"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := submission.NewSQLStore(dbh)

	// --- Normalizer (optional) ---
	var normalizer grading.Normalizer
	if cfg.NormalizerAPIKey != "" {
		client := normalize.New(normalize.Config{
			BaseURL: cfg.NormalizerBaseURL,
			APIKey:  cfg.NormalizerAPIKey,
			Model:   cfg.NormalizerModel,
			Timeout: cfg.NormalizerTimeout,
		})
		normalizer = client.Normalize
		log.Printf("duration normalizer enabled (model=%s)", cfg.NormalizerModel)
	} else {
		log.Printf("duration normalizer disabled, using local parser only")
	}

	svc := submission.NewService(store, normalizer)
	authSvc := auth.NewAuthService(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Open surface: grade without storing, plus the question catalog.
	r.Post("/grade", api.GradeHandler(normalizer))
	r.Get("/questions", api.QuestionsHandler())
	r.Post("/submissions", api.CreateSubmissionHandler(svc))

	// Reviewer surface (JWT).
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Get("/submissions", api.ListSubmissionsHandler(svc))
		pr.Get("/submissions/{submissionID}", api.GetSubmissionHandler(svc))
	})

	r.Get("/healthz", api.HealthHandler())

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
