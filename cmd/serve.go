package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"fundscout/internal/api"
	"fundscout/internal/api/handler/v1handler"
	"fundscout/internal/candidates"
	"fundscout/internal/config"
	"fundscout/internal/ingest"
	"fundscout/internal/processor"
	"fundscout/internal/registry"
	"fundscout/internal/scoring"
	"fundscout/internal/worker"
	"fundscout/pkg/logger"
	"fundscout/pkg/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildProcessor assembles the scoring pipeline from configuration.
func buildProcessor(cfg *config.Config, reg registry.Registry, creator candidates.Creator) processor.Processor {
	scorer := scoring.NewScorer(scoring.NewCredibilityService(), scoring.ScorerOptions{
		FundingKeywords:      cfg.Discovery.FundingKeywords,
		GeographyKeywords:    cfg.Discovery.GeographyKeywords,
		OrganizationKeywords: cfg.Discovery.OrganizationKeywords,
	})

	return processor.New(reg, creator, scorer, processor.NewOptions(cfg))
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) (func(ctx context.Context), *metrics.Pipeline) {
	server, pipeline, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}, pipeline
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reg := registry.New(strg, registry.NewOptions(cfg))
			creator := candidates.New(strg)
			proc := buildProcessor(cfg, reg, creator)

			stopWebserver, pipeline := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Ingestor:   ingest.New(strg, ingest.NewOptions(cfg)),
					Registry:   reg,
					Candidates: creator,
				},
			})

			riverClient, err := worker.Start(ctx, strg.Pool, proc, pipeline)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers cleanly", zap.Error(err))
			}

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
