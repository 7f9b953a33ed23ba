package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rentdesk/config"
	"rentdesk/jobs"
	"rentdesk/repository"
	"rentdesk/routes"
	"rentdesk/services"
	"rentdesk/services/metrics"
	"rentdesk/services/notification"

	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := newLogger(cfg)
	defer log.Sync()

	if cfg.AccessTokenSecret == "" {
		return errors.New("SECRET_KEY_ACCESS_TOKEN must be set")
	}

	comps, err := config.InitComponents(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer comps.Close()

	if err := config.Migrate(comps.DB); err != nil {
		return err
	}

	router, m, c := config.InitApp(cfg)
	defer m.Close()

	appMetrics := metrics.New()
	opts := services.ServiceOptions{
		Store:    repository.New(comps.DB),
		Locker:   services.NewKeyedLocker(),
		Logger:   log,
		Notifier: notification.NewMelodyService(m),
		Metrics:  appMetrics,
	}
	svc := services.NewServices(
		opts,
		services.NewCloudinaryUploader(comps.Cloudinary),
		services.NewTokenIssuer(cfg.AccessTokenSecret, cfg.AccessTokenMinutes),
		services.NewTokenStore(comps.Redis, log),
	)

	var keepAlive *jobs.KeepAlive
	if cfg.KeepAliveURL != "" {
		keepAlive = jobs.NewKeepAlive(cfg.KeepAliveURL, log)
	}
	if err := jobs.InitCronJobs(c, services.NewDueReminder(opts), keepAlive, log); err != nil {
		return err
	}
	defer c.Stop()

	if err := routes.SetupRoutes(router, routes.Dependencies{
		Services: svc,
		Melody:   m,
		Metrics:  appMetrics,
		Logger:   log,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting on port %s...", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
