package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/learnmate/backend/internal/auth"
	"github.com/learnmate/backend/internal/config"
	"github.com/learnmate/backend/internal/database"
	"github.com/learnmate/backend/internal/generator"
	"github.com/learnmate/backend/internal/materials"
	"github.com/learnmate/backend/internal/middleware"
	"github.com/learnmate/backend/internal/profile"
	"github.com/learnmate/backend/internal/progress"
	"github.com/learnmate/backend/internal/quiz"
	"github.com/learnmate/backend/internal/tutor"
)

func main() {
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Material catalog: load from the database, seeding starter content
	// on an empty install.
	materialService := materials.NewService(materials.NewStore(db))
	if err := materialService.Load(); err != nil {
		log.Fatalf("Failed to load learning materials: %v", err)
	}

	// Text generation backend (Gemini, Anthropic, or Ollama)
	gen, err := generator.NewFromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}
	log.Printf("Using generation model %s", gen.ModelName())

	// Stores and services
	progressStore := progress.NewStore(db)
	profileStore := profile.NewStore(db)
	orchestrator := tutor.NewOrchestrator(gen, materialService, progressStore)

	// Handlers
	authHandler := auth.NewHandler(db)
	profileHandler := profile.NewHandler(profileStore)
	tutorHandler := tutor.NewHandler(orchestrator, profileStore)
	quizHandler := quiz.NewHandler(quiz.NewService(progressStore))
	progressHandler := progress.NewHandler(progressStore)
	materialHandler := materials.NewHandler(materialService, cfg.SearchResultLimit)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/materials/search", materialHandler.Search).Methods("GET")
	api.HandleFunc("/materials/topics", materialHandler.Topics).Methods("GET")
	api.HandleFunc("/materials", materialHandler.Add).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/learn/session", tutorHandler.RunSession).Methods("POST")
	protected.HandleFunc("/quiz/answer", quizHandler.SubmitAnswer).Methods("POST")
	protected.HandleFunc("/quiz/results", quizHandler.Results).Methods("GET")
	protected.HandleFunc("/progress", progressHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/sessions", progressHandler.RecentSessions).Methods("GET")
	protected.HandleFunc("/explanations", progressHandler.SaveExplanation).Methods("POST")
	protected.HandleFunc("/explanations", progressHandler.SavedExplanations).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
