package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	adapthttp "abbed/internal/adapter/http"
	"abbed/internal/adapter/memory"
	"abbed/internal/adapter/postgres"
	"abbed/internal/app"
	"abbed/internal/config"
	"abbed/internal/domain"
	"abbed/internal/logging"
	"abbed/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	logFile := logging.Setup(logging.Params{
		Level:    cfg.Log.Level,
		JSON:     cfg.Log.JSON,
		FileName: cfg.Log.File,
		ToStdout: cfg.Log.ToStdout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	_ = logFile.Close()
	if err != nil {
		logrus.WithError(err).Fatal("abbed: exiting")
	}
}

type repositories struct {
	weights  domain.WeightRepository
	profiles domain.ProfileRepository
	users    domain.UserRepository
	sessions domain.SessionRepository
	close    func() error
}

func openRepositories(cfg config.DatabaseConfig) (*repositories, error) {
	if cfg.URL == "" {
		logrus.Warn("DATABASE_URL not set; using in-memory storage, data is lost on restart")
		db := memory.New()
		return &repositories{
			weights:  db,
			profiles: db,
			users:    db,
			sessions: db.NewSessionRepo(),
			close:    func() error { return nil },
		}, nil
	}

	db, err := postgres.Open(cfg.URL, postgres.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	return &repositories{
		weights:  db,
		profiles: db,
		users:    db,
		sessions: postgres.NewSessionRepo(db),
		close:    db.Close,
	}, nil
}

func oidcConfig(ctx context.Context, cfg config.OIDCConfig) (adapthttp.OIDCConfig, error) {
	if !cfg.Enabled() {
		return adapthttp.OIDCConfig{}, nil
	}
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return adapthttp.OIDCConfig{}, fmt.Errorf("oidc provider %s: %w", cfg.Issuer, err)
	}
	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	repos, err := openRepositories(cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = repos.close() }()

	sso, err := oidcConfig(ctx, cfg.OIDC)
	if err != nil {
		return err
	}

	srv := adapthttp.New(adapthttp.Services{
		Weight:    app.NewWeightService(repos.weights),
		Profile:   app.NewProfileService(repos.profiles),
		Dashboard: app.NewDashboardService(repos.weights, repos.profiles),
		Charts:    app.NewChartsService(repos.weights),
		Auth:      app.NewAuthService(repos.users, repos.sessions).WithSessionTTL(cfg.Auth.SessionTTL),
	}, cfg.Server.WebDir).WithOIDC(sso)

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		srv.WithMetrics(metrics.NewManager(cfg.Metrics.Namespace, "server", reg), reg)
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":    cfg.Server.Addr,
			"sso":     sso.Enabled,
			"metrics": cfg.Metrics.Enabled,
		}).Info("abbed: listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("abbed: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
