package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"spellcheck/internal/app"
	"spellcheck/internal/checker"
	"spellcheck/internal/config"
	"spellcheck/internal/customdict"
	"spellcheck/internal/dictionary"
	"spellcheck/internal/report"
	"spellcheck/pkg/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	dict, err := dictionary.Load(cfg.Dictionary.Path)
	if err != nil {
		logger.Error("dictionary load failed", "path", cfg.Dictionary.Path, "err", err)
		os.Exit(1)
	}
	logger.Info("dictionary loaded", "path", cfg.Dictionary.Path, "words", dict.Len())

	var store *customdict.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = customdict.New(client)
		words, err := store.All(context.Background())
		if err != nil {
			logger.Warn("custom dictionary unavailable", "err", err)
		} else {
			for _, w := range words {
				dict.AddCustom(w)
			}
			logger.Info("custom words loaded", "count", len(words))
		}
	}

	chk := checker.New(dict,
		options.WithIgnoreShortWords(cfg.Checker.IgnoreShortWords),
		options.WithIgnoreAllCapsWords(cfg.Checker.IgnoreAllCapsWords),
	)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/check", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}
		errs := chk.Check(req.Text)
		writeJSON(w, http.StatusOK, map[string]any{
			"errors":      errs,
			"error_count": len(errs),
		})
	})

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"original":  req.Text,
			"corrected": chk.Correct(req.Text),
		})
	})

	mux.HandleFunc("/api/v1/batch", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Documents []report.Document `json:"documents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Documents) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}
		summaries, err := report.Run(r.Context(), req.Documents, chk, cfg.Batch.Workers)
		if err != nil {
			// client went away mid-batch
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"batch_id":  uuid.NewString(),
			"summaries": summaries,
		})
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}
		if store != nil {
			if err := store.Add(r.Context(), strings.ToLower(req.Word)); err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
		}
		dict.AddCustom(req.Word)
		writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		if word == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "word is required"})
			return
		}
		if store != nil {
			if err := store.Remove(r.Context(), strings.ToLower(word)); err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
		}
		dict.RemoveCustom(word)
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Info("listening", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
