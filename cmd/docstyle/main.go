// Command docstyle serves pages that link the stylesheet matching the
// requesting browser.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/docstyle/internal/web"
	"github.com/dmitrymomot/docstyle/pkg/config"
	"github.com/dmitrymomot/docstyle/pkg/httpserver"
	"github.com/dmitrymomot/docstyle/pkg/logger"
	"github.com/dmitrymomot/docstyle/pkg/requestid"
	"github.com/dmitrymomot/docstyle/pkg/stylesheet"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"docstyle"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP  httpserver.Config
	Style web.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("docstyle stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			stylesheet.LoggerExtractor(),
		),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger, opts ...httpserver.Option) error {
	srv, err := web.New(cfg.Style, log)
	if err != nil {
		return err
	}

	log.Info("stylesheet selection configured",
		slog.String("base_path", srv.Selector().BasePath()),
		slog.String("static_prefix", cfg.Style.StaticPrefix),
		slog.Bool("legacy_search", cfg.Style.LegacySearch),
	)

	opts = append([]httpserver.Option{httpserver.WithLogger(log)}, opts...)
	return httpserver.NewFromConfig(cfg.HTTP, opts...).Run(ctx, srv.Router())
}
