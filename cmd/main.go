package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

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
	in := flag.String("in", ".", "folder with .txt files to check")
	out := flag.String("out", "spellcheck_output", "output folder for corrected files and reports")
	flag.Parse()

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

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := customdict.New(client)
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

	entries, err := os.ReadDir(*in)
	if err != nil {
		logger.Error("read input folder", "dir", *in, "err", err)
		os.Exit(1)
	}

	var docs []report.Document
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(*in, e.Name()))
		if err != nil {
			// one unreadable file must not abort the batch
			logger.Warn("skipping unreadable file", "file", e.Name(), "err", err)
			continue
		}
		// the core only sees valid decoded text
		docs = append(docs, report.Document{
			Name: e.Name(),
			Text: strings.ToValidUTF8(string(raw), "�"),
		})
	}
	if len(docs) == 0 {
		logger.Info("no .txt files found", "dir", *in)
		return
	}

	summaries, err := report.Run(context.Background(), docs, chk, cfg.Batch.Workers)
	if err != nil {
		logger.Error("batch aborted", "err", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Error("create output folder", "dir", *out, "err", err)
		os.Exit(1)
	}
	for _, s := range summaries {
		if err := os.WriteFile(filepath.Join(*out, s.Name), []byte(s.Corrected), 0o644); err != nil {
			logger.Warn("write corrected file", "file", s.Name, "err", err)
		}
		logger.Info("processed", "file", s.Name, "words", s.TotalWords, "errors", s.ErrorCount)
	}

	ts := time.Now().Format("20060102_150405")
	writeReport(logger, filepath.Join(*out, fmt.Sprintf("spelling_error_summary_%s.csv", ts)), summaries, report.WriteSummaryCSV)
	writeReport(logger, filepath.Join(*out, fmt.Sprintf("spelling_error_details_%s.csv", ts)), summaries, report.WriteDetailsCSV)
	writeReport(logger, filepath.Join(*out, "_spelling_error_report.txt"), summaries, report.WriteTextReport)

	logger.Info("spell check complete", "files", len(summaries), "output", *out)
}

func writeReport(logger *slog.Logger, path string, summaries []report.Summary, write func(io.Writer, []report.Summary) error) {
	f, err := os.Create(path)
	if err != nil {
		logger.Error("create report", "path", path, "err", err)
		return
	}
	defer f.Close()
	if err := write(f, summaries); err != nil {
		logger.Error("write report", "path", path, "err", err)
	}
}
