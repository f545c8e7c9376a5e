// Command elysion serves the ELYSION event site, or exports it as static
// files with -export.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"impractical.co/elysion"
	"impractical.co/elysion/assets"
	"impractical.co/elysion/content"
	"impractical.co/elysion/internal/config"
	"impractical.co/elysion/internal/export"
	"impractical.co/elysion/internal/logging"
	"impractical.co/elysion/internal/server"
	"impractical.co/elysion/internal/telemetry"
	"impractical.co/elysion/render"
	"impractical.co/elysion/static"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("elysion failed")
	}
}

func run() error {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = logging.New(os.Stdout, level, cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bundle, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}

	if cfg.ExportDir != "" {
		return runExport(ctx, cfg, bundle)
	}
	return runServer(ctx, cfg, bundle)
}

func loadContent(path string) (content.Bundle, error) {
	if path == "" {
		return content.Default()
	}
	bundle, err := content.LoadFile(path)
	if err != nil {
		return content.Bundle{}, err
	}
	log.Info().Str("path", path).Msg("loaded content file")
	return bundle, nil
}

func runExport(ctx context.Context, cfg config.Config, bundle content.Bundle) error {
	// exported pages reference static files relative to index.html
	site, err := elysion.NewSite(bundle, assets.NewCatalog(static.FS, export.StaticDir))
	if err != nil {
		return err
	}
	ctx = render.LoggingContext(ctx, logging.Slog(log.Logger))
	if err := export.Write(ctx, cfg.ExportDir, site, static.FS); err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}
	log.Info().Str("dir", cfg.ExportDir).Msg("exported site")
	return nil
}

func runServer(ctx context.Context, cfg config.Config, bundle content.Bundle) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, version)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error().Err(err).Msg("flushing traces")
		}
	}()

	site, err := elysion.NewSite(bundle, assets.NewCatalog(static.FS, cfg.StaticBaseURL))
	if err != nil {
		return err
	}
	srv := server.New(ctx, server.Config{
		Addr:         cfg.HTTPAddr,
		CORSOrigins:  cfg.CORSOrigins,
		APIRateLimit: cfg.APIRateLimit,
		APIRateBurst: cfg.APIRateBurst,
		Version:      version,
	}, site, static.FS, log.Logger)

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("version", version).Msg("starting server")
		errs <- srv.Start(ctx)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("stopped")
	return nil
}
