package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apinprastya/gdrive"
	"github.com/apinprastya/gdrive/internal/config"
	"github.com/apinprastya/gdrive/internal/server"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

type flags struct {
	envFile   string
	port      string
	credsFile string
}

func main() {
	if err := newRootCmd(&flags{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gdrive-relay",
		Short:         "HTTP relay for creating Google Drive folders and uploading files into them",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, f)
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&f.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().StringVar(&f.port, "port", "", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&f.credsFile, "creds", "", "token file (overrides CREDS_FILE)")
	return cmd
}

func loadConfig(cmd *cobra.Command, f *flags) *config.Config {
	if err := godotenv.Load(f.envFile); err != nil {
		logrus.WithField("file", f.envFile).Debug("env file not loaded, using environment variables")
	}

	cfg := config.Load()
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if cmd.Flags().Changed("creds") {
		cfg.CredsFile = f.credsFile
	}
	logrus.SetLevel(cfg.LogLevel)
	return cfg
}

func loadCredentials(cfg *config.Config) *gdrive.Credentials {
	creds, err := gdrive.LoadCredentials(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURI, cfg.CredsFile)
	if err != nil {
		logrus.WithError(err).WithField("file", cfg.CredsFile).Warn("unable to read token file")
		creds = &gdrive.Credentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
		}
	}
	return creds
}

func run(ctx context.Context, cfg *config.Config) error {
	creds := loadCredentials(cfg)
	client, err := gdrive.New(ctx, creds)
	if err != nil {
		return fmt.Errorf("create drive client: %w", err)
	}
	if !client.Ready() {
		logrus.WithField("file", cfg.CredsFile).WithField("login_url", client.GetLoginURL()).
			Warn("No creds found")
	}

	srv := server.New(client)
	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.Port).Info("Server running")
		errCh <- srv.Start(cfg.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logrus.WithError(err).Error("server error")
		return err
	case <-quit:
	}

	logrus.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logrus.Info("server exited")
	return nil
}
