package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/starchase/starchase-go/internal/api"
	"github.com/starchase/starchase-go/internal/factory"
	redisstorage "github.com/starchase/starchase-go/internal/storage/redis"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the game API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg.LogLevel)
			slog.SetDefault(logger)

			factoryCfg := factory.Config{
				Logger:      logger,
				StorageType: cfg.StorageType,
			}

			if cfg.StorageType == factory.StorageTypeRedis {
				if cfg.RedisURL == "" {
					return errors.New("redis-url required when storage-type is redis")
				}
				redisCfg := redisstorage.DefaultConfig()
				redisCfg.URL = cfg.RedisURL
				factoryCfg.RedisConfig = &redisCfg
			}

			app, err := factory.New(factoryCfg)
			if err != nil {
				return err
			}

			router := api.NewRouter(api.RouterConfig{
				Logger:         logger,
				GameController: app.GameController,
				AutoService:    app.AutoService,
				HubManager:     app.HubManager,
			})

			serverCfg := api.DefaultServerConfig()
			serverCfg.Host = cfg.Host
			serverCfg.Port = cfg.Port
			server := api.NewServer(router, serverCfg, logger)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				logger.Info("shutdown signal received")
				cancel()
			}()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return server.Shutdown(context.Background())
			}
		},
	}
}
