package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	receiptspb "github.com/scouter-app/receipt-pipeline/gen/proto/receipts/v1"
	"github.com/scouter-app/receipt-pipeline/internal/async"
	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/export"
	"github.com/scouter-app/receipt-pipeline/internal/llm/openai"
	"github.com/scouter-app/receipt-pipeline/internal/ocr"
	"github.com/scouter-app/receipt-pipeline/internal/pipeline"
	"github.com/scouter-app/receipt-pipeline/internal/progress"
	"github.com/scouter-app/receipt-pipeline/internal/receipts"
	"github.com/scouter-app/receipt-pipeline/internal/repository"
	"github.com/scouter-app/receipt-pipeline/internal/server"
	"github.com/scouter-app/receipt-pipeline/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	// Collaborators
	store, err := storage.NewMinioStore(
		cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey,
		cfg.Storage.Bucket, cfg.Storage.UseSSL, logger)
	if err != nil {
		logger.Error("connecting to object storage", "error", err)
		os.Exit(1)
	}

	vision := ocr.NewVisionClient(ocr.Config{
		BaseURL: cfg.OCR.BaseURL,
		APIKey:  cfg.OCR.APIKey,
		Timeout: cfg.OCR.Timeout,
	}, logger)

	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	// Pipeline
	repo := repository.NewReceiptRepository(entc, logger)
	tracker := progress.NewTracker(logger, progress.WithRetention(cfg.Pipeline.SessionRetention))
	defer tracker.Close()

	orch := pipeline.NewOrchestrator(repo, store, vision, extractor, tracker, pipeline.Config{
		ConfidenceThreshold: cfg.Pipeline.ConfidenceThreshold,
		MaxAttempts:         cfg.Pipeline.MaxAttempts,
		RetryBaseDelay:      cfg.Pipeline.RetryBaseDelay,
		StageTimeout:        cfg.Pipeline.StageTimeout,
	}, logger)

	queue := async.NewPipelineQueue(orch, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
	)

	svc := receipts.NewService(repo, tracker, queue, logger)
	exportSvc := export.NewService(repo, logger)

	// gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.UnaryRequestID(logger)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	receiptspb.RegisterReceiptsServiceServer(grpcServer, server.NewReceiptsServer(svc, logger))
	receiptspb.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	grpcServer.GracefulStop()
	queue.Shutdown(drainCtx)
	logger.Info("stopped")
}
