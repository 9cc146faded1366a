package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/08Abhinay/portfolio/internal/config"
	"github.com/08Abhinay/portfolio/internal/contact"
	"github.com/08Abhinay/portfolio/internal/content"
	"github.com/08Abhinay/portfolio/internal/logger"
	"github.com/08Abhinay/portfolio/internal/mailer"
	"github.com/08Abhinay/portfolio/internal/server"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfigFromEnv(ctx)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zl := logger.New(cfg.Log)
	defer zl.Sync()

	svc := contact.NewContactService(cfg.Mail, newMailer(cfg.Mail, zl), zl)

	router := server.NewRouter(server.Deps{
		Config:  cfg.Server,
		Log:     zl,
		Contact: contact.NewContactHandler(svc),
		Content: content.NewContentHandler(content.DefaultCatalog()),
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		zl.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	zl.Info("Shutdown complete.")
}

// newMailer returns nil when the SMTP settings are incomplete. The contact
// endpoint then answers 500 until the process is restarted with them set.
func newMailer(cfg config.Mail, zl *zap.Logger) contact.Mailer {
	if missing := cfg.Missing(); len(missing) > 0 {
		zl.Warn("mail service is not configured, contact form disabled", zap.Strings("missing", missing))
		return nil
	}

	m, err := mailer.NewSMTPMailer(cfg)
	if err != nil {
		zl.Warn("mail service is misconfigured, contact form disabled", zap.Error(err))
		return nil
	}

	zl.Info("mail relay ready",
		zap.String("host", cfg.Host),
		zap.String("tls", m.TLSMode().String()),
		zap.String("recipient", cfg.To()),
	)
	return m
}
