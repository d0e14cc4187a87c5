package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kimbiseo/assistant-api/internal/ai"
	"github.com/kimbiseo/assistant-api/internal/assistant"
	"github.com/kimbiseo/assistant-api/internal/config"
	"github.com/kimbiseo/assistant-api/internal/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync() //nolint:errcheck

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Assistant module wiring ---
	var completer ai.Completer
	if cfg.FallbackMode() {
		log.Warn("OPENAI_API_KEY not set, chat will answer from local data only")
	} else {
		completer = ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
	}

	svc := assistant.NewService(completer, log)
	h := assistant.NewHandler(svc, log)

	assistant.RegisterRoutes(r, h)

	// --- observability ---
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong")) //nolint:errcheck
	})

	log.Info("listening", zap.String("port", cfg.Port), zap.Bool("fallback_mode", cfg.FallbackMode()))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
