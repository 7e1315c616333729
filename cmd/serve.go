package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dtroode/agreement-server/internal/api/grpc/health"
	grpcRouter "github.com/dtroode/agreement-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/agreement-server/internal/api/grpc/server"
	httpRouter "github.com/dtroode/agreement-server/internal/api/http/router"
	httpServer "github.com/dtroode/agreement-server/internal/api/http/server"
	"github.com/dtroode/agreement-server/internal/assistant"
	"github.com/dtroode/agreement-server/internal/catalog"
	"github.com/dtroode/agreement-server/internal/metrics"
	"github.com/dtroode/agreement-server/internal/model"
	"github.com/dtroode/agreement-server/internal/render/pdf"
	"github.com/dtroode/agreement-server/internal/render/qr"
	"github.com/dtroode/agreement-server/internal/repository/postgres"
	"github.com/dtroode/agreement-server/internal/server"
	"github.com/dtroode/agreement-server/internal/service"
	storage "github.com/dtroode/agreement-server/internal/storage/minio"
	"github.com/dtroode/agreement-server/internal/token"
	"github.com/dtroode/agreement-server/internal/verification"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and the ops gRPC server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	mode, err := verification.ParseTimestampMode(cfg.Verification.TimestampMode)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	var archive model.Storage
	if cfg.Storage.Enabled {
		archiveClient, err := storage.Dial(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize document archive", "error", err)
			return fmt.Errorf("failed to initialize document archive: %w", err)
		}
		archive = archiveClient
	}

	templates, err := catalog.Default()
	if err != nil {
		return err
	}
	aiClient := assistant.New(assistant.Options{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	}, templates, logger)
	if !aiClient.Enabled() {
		logger.Warn("OPENAI_API_KEY is not set, template suggestions are unavailable")
	}

	agreementService := service.NewAgreement(
		postgres.NewAgreementRepository(db),
		token.NewJWT(cfg.JWT.Secret),
		qr.NewCoder(cfg.Verification.BaseURL),
		pdf.NewRenderer(programName),
		archive,
		m,
		logger,
		service.Settings{
			TimestampMode: mode,
			Window:        cfg.Verification.Window,
			CodeAttempts:  cfg.Verification.CodeAttempts,
		},
	)
	draftingService := service.NewDrafting(templates, aiClient, m, logger)

	handler := httpRouter.New(agreementService, draftingService, db, m, registry, logger, cfg.HTTP.MaxBodyBytes).Register()
	servers := []serverWithLayer{{
		server: httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout),
		layer:  server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
	}}

	if cfg.GRPC.Enabled {
		checker := health.NewChecker(db, 0, logger)
		go checker.Run(ctx)

		s := grpcRouter.New(checker, logger).Register()
		servers = append(servers, serverWithLayer{
			server: grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port)),
			layer:  server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		})
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
			}
		}(s.server, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
	return nil
}

type serverWithLayer struct {
	server model.Server
	layer  model.SecurityLayer
}
