// Command pagetemplate loads the page templates the configuration management
// page renders from, logs a per-root summary and writes the loaded set to
// stdout as a YAML stream.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/skosovsky/pagetemplate/catalog"
	"github.com/skosovsky/pagetemplate/config"
	"github.com/skosovsky/pagetemplate/manifest"
)

func fatal(msg string, err error, attrs ...any) {
	args := make([]any, 0, 2+len(attrs))
	args = append(args, "err", err)
	args = append(args, attrs...)
	slog.Error(msg, args...)
	os.Exit(1)
}

func main() {
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With("run_id", uuid.NewString()))

	cfg, err := config.Load()
	if err != nil {
		fatal("config load failed", err)
	}
	level.Set(cfg.LogLevel)

	slog.Info("loading page templates", "template_path", cfg.TemplatePath, "concurrency", cfg.LoadConcurrency)

	cat := catalog.New(
		catalog.WithPathProvider(cfg),
		catalog.WithConcurrency(cfg.LoadConcurrency),
		catalog.WithLogger(slog.Default()),
	)
	cat.Initialize()

	for _, r := range cat.Report() {
		attrs := []any{"root", r.Kind, "location", r.Location, "loaded", r.Loaded, "failed", r.Failed}
		if r.Err != nil {
			slog.Warn("template root unavailable", append(attrs, "err", r.Err)...)
			continue
		}
		slog.Info("template root scanned", attrs...)
	}

	if err := manifest.Encode(os.Stdout, cat.ListAll()); err != nil {
		fatal("write templates failed", err)
	}
}
