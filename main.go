package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/sullhouse/sullstice/internal/archive"
	"github.com/sullhouse/sullstice/internal/claude"
	"github.com/sullhouse/sullstice/internal/config"
	"github.com/sullhouse/sullstice/internal/content"
	"github.com/sullhouse/sullstice/internal/database"
	"github.com/sullhouse/sullstice/internal/notify"
	"github.com/sullhouse/sullstice/internal/responder"
	"github.com/sullhouse/sullstice/internal/roster"
	"github.com/sullhouse/sullstice/internal/server"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Str("component", "main").Logger()

func main() {
	cfg := config.LoadFromEnv()
	ctx := context.Background()

	db, err := database.New(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Creating database")
	}
	defer db.Close()

	contentProvider := initContent(ctx, cfg)
	directory := initRoster(ctx, cfg)
	generator := initGenerator(cfg)
	mailer := initMailer(cfg)

	resp := responder.New(generator, directory, contentProvider)

	srv := server.New(server.Config{
		DB:        db,
		Responder: resp,
		Mailer:    mailer,
		Content:   contentProvider,
		Archive:   archive.NewFileStore(cfg.ArchiveDir),
		Port:      cfg.HTTPPort,
		HostEmail: cfg.HostEmail,
	})
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	waitForShutdown(srv)
}

func initContent(ctx context.Context, cfg *config.Config) content.Provider {
	if cfg.ContentDir != "" {
		log.Info().Str("dir", cfg.ContentDir).Msg("Using local content files")
		return content.NewFileProvider(cfg.ContentDir)
	}

	provider, err := content.NewDocsProvider(ctx, content.DocsConfig{
		CredentialsFile:  cfg.GoogleCredentialsFile,
		EventDetailsID:   cfg.EventDetailsDocID,
		PreviousEventID:  cfg.PreviousEventDocID,
		LineupID:         cfg.LineupDocID,
		UpdatedDetailsID: cfg.UpdatedDetailsDocID,
	})
	if err != nil {
		log.Error().Err(err).Msg("Google Docs unavailable, event content will be empty")
		return content.NewFileProvider(".")
	}
	return provider
}

func initRoster(ctx context.Context, cfg *config.Config) responder.RosterLoader {
	source, err := roster.NewSheetSource(ctx, cfg.GoogleCredentialsFile, cfg.RosterSpreadsheetID, cfg.RosterRange)
	if err != nil {
		log.Error().Err(err).Msg("Roster sheet unavailable, personalization will use defaults")
		return roster.NewDirectory(emptySource{})
	}
	return roster.NewDirectory(source)
}

func initGenerator(cfg *config.Config) *claude.Client {
	if cfg.AnthropicAPIKey == "" {
		log.Warn().Msg("ANTHROPIC_API_KEY not set, replies will use the fallback template")
	}
	return claude.NewClient(cfg.AnthropicAPIKey, cfg.ClaudeModel, cfg.ClaudeTemperature)
}

func initMailer(cfg *config.Config) notify.Mailer {
	mailer := notify.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)
	if mailer == nil {
		log.Warn().Msg("RESEND_API_KEY not set, email delivery disabled")
		return nil
	}
	log.Info().Str("from", cfg.EmailFrom).Msg("Email delivery configured (Resend)")
	return mailer
}

// emptySource stands in when the roster sheet cannot be reached at all;
// every load yields zero rows.
type emptySource struct{}

func (emptySource) Rows(ctx context.Context) ([][]string, error) {
	return nil, nil
}

func waitForShutdown(srv *server.Server) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
}
