package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/course-tutor/internal/adapters/httpapi"
	"github.com/bnema/course-tutor/internal/observability"
)

type serveOptions struct {
	host string
	port int
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tutor HTTP API",
		Long:  "Serve POST /api/generate and POST /api/suggest, refreshing the course suggestion index in the background.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := wireResolvedApp(ctx, root.configFile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = opts.host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = opts.port
			}
			return runServe(ctx, a)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", httpapi.DefaultHost, "address to bind")
	cmd.Flags().IntVar(&opts.port, "port", httpapi.DefaultPort, "port to bind")

	return cmd
}

func runServe(ctx context.Context, a *app) error {
	registry := observability.NewRegistry()
	a.metrics = observability.NewMetrics(registry)

	tutor, err := a.tutor()
	if err != nil {
		return err
	}

	suggestions, closeIndex, err := a.suggestions()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeIndex(); err != nil {
			a.logger.Warn("close course index", slog.Any("error", err))
		}
	}()

	if err := suggestions.Load(ctx); err != nil {
		a.logger.Warn("course index not restored", slog.Any("error", err))
	}

	server := httpapi.NewServer(httpapi.Config{
		Host:           a.cfg.Server.Host,
		Port:           a.cfg.Server.Port,
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
		Debug:          a.cfg.Server.Debug,
		Metrics:        observability.Handler(registry),
	}, httpapi.NewHandlers(tutor, suggestions, a.logger), a.logger)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return server.Run(groupCtx)
	})

	if err := a.cfg.RequireWebService(); err != nil {
		a.logger.Warn("course index refresh disabled", slog.Any("reason", err))
	} else {
		group.Go(func() error {
			return suggestions.Run(groupCtx, a.cfg.Index.RefreshInterval)
		})
	}

	return group.Wait()
}
