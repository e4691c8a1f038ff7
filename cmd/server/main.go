package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"hanguldrill/internal/audio"
	"hanguldrill/internal/config"
	"hanguldrill/internal/database"
	"hanguldrill/internal/handlers"
	"hanguldrill/internal/repository"
	"hanguldrill/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Initialize repositories and services
	recordRepo := repository.NewRecordRepository(db)
	recordService := service.NewRecordService(recordRepo)
	quizService := service.NewQuizService(recordService)

	// Playback is optional; with it off the quiz still grades normally.
	var ttsService *audio.TTSService
	if cfg.TTSEnabled {
		ttsService = audio.NewTTSService(filepath.Join(cfg.StaticFilesPath, "audio"))
	} else {
		log.Println("TTS disabled; sentences will not be spoken")
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(cfg.SessionSecret, cfg.SessionDuration)
	quizHandler := handlers.NewQuizHandler(quizService, recordService, ttsService, templates)

	// Setup routes
	mux := http.NewServeMux()

	// Static files and cached audio
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))
	mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(filepath.Join(cfg.StaticFilesPath, "audio")))))

	// Quiz routes
	mux.HandleFunc("GET /", middleware.WithPlayer(quizHandler.Home))
	mux.HandleFunc("POST /quiz/start", middleware.WithPlayer(quizHandler.StartQuiz))
	mux.HandleFunc("GET /quiz/play", middleware.WithPlayer(quizHandler.ShowPlay))
	mux.HandleFunc("POST /quiz/answer", middleware.WithPlayer(quizHandler.RecordAnswer))
	mux.HandleFunc("POST /quiz/submit", middleware.WithPlayer(quizHandler.SubmitAnswer))
	mux.HandleFunc("POST /quiz/move", middleware.WithPlayer(quizHandler.Move))
	mux.HandleFunc("POST /quiz/speak", middleware.WithPlayer(quizHandler.Speak))
	mux.HandleFunc("POST /quiz/finish", middleware.WithPlayer(quizHandler.FinishQuiz))
	mux.HandleFunc("GET /quiz/result", middleware.WithPlayer(quizHandler.ShowResult))
	mux.HandleFunc("POST /quiz/retry", middleware.WithPlayer(quizHandler.Retry))
	mux.HandleFunc("POST /quiz/home", middleware.WithPlayer(quizHandler.GoHome))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"add": func(a, b int) int {
			return a + b
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseGlob(filepath.Join(templatesPath, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
