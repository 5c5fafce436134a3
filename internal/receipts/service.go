package receipts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scouter-app/receipt-pipeline/constants"
	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/entity"
	"github.com/scouter-app/receipt-pipeline/internal/pipeline"
	"github.com/scouter-app/receipt-pipeline/internal/progress"
	"github.com/scouter-app/receipt-pipeline/internal/repository"
)

// Enqueuer hands jobs to the background worker pool.
type Enqueuer interface {
	Enqueue(ctx context.Context, job *pipeline.Job) error
}

// ProcessRequest is an inbound receipt image plus its provenance.
type ProcessRequest struct {
	OwnerUserID uuid.UUID
	Source      constants.Source
	Filename    string
	ContentType string
	Image       []byte
}

// Service is the ingest and review surface: it accepts images, kicks off
// background processing, answers progress polls, and applies the user
// confirmation that ends a receipt's life cycle.
type Service struct {
	repo    repository.ReceiptRepository
	tracker *progress.Tracker
	queue   Enqueuer
	log     *slog.Logger
}

func NewService(repo repository.ReceiptRepository, tracker *progress.Tracker, queue Enqueuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, tracker: tracker, queue: queue, log: logger}
}

// Process validates the request, creates the receipt row and a tracking
// session, and enqueues the pipeline job. It returns immediately; the
// caller polls the session for progress.
func (s *Service) Process(ctx context.Context, req *ProcessRequest) (receiptID uuid.UUID, sessionID string, err error) {
	if len(req.Image) == 0 {
		return uuid.Nil, "", fmt.Errorf("empty image: %w", common.ErrInvalidInput)
	}
	ct := constants.NormalizeContentType(req.ContentType)
	if _, ok := constants.AllowedContentTypes[ct]; !ok {
		return uuid.Nil, "", fmt.Errorf("unsupported content type %q: %w", req.ContentType, common.ErrInvalidInput)
	}
	if req.OwnerUserID == uuid.Nil {
		return uuid.Nil, "", fmt.Errorf("missing owner: %w", common.ErrInvalidInput)
	}
	source := req.Source
	if source == "" {
		source = constants.SourceUpload
	}

	rec, err := s.repo.Create(ctx, &repository.CreateReceiptRequest{
		OwnerUserID:      req.OwnerUserID,
		Source:           source,
		OriginalFilename: req.Filename,
	})
	if err != nil {
		return uuid.Nil, "", err
	}

	sid := s.tracker.CreateSession(rec.ID)
	job := &pipeline.Job{
		ReceiptID:   rec.ID,
		SessionID:   sid,
		Image:       req.Image,
		ContentType: ct,
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return uuid.Nil, "", err
	}

	s.log.Info("receipt accepted",
		"receipt_id", rec.ID, "session_id", sid,
		"owner_user_id", req.OwnerUserID, "content_type", ct, "bytes", len(req.Image))
	return rec.ID, sid, nil
}

// Progress returns the tracked session snapshot.
func (s *Service) Progress(_ context.Context, sessionID string) (entity.SessionSnapshot, error) {
	return s.tracker.Get(sessionID)
}

// Confirm applies the user's sign-off. Only receipts sitting in one of
// the review states can be confirmed; everything else is rejected.
func (s *Service) Confirm(ctx context.Context, receiptID uuid.UUID) (*entity.Receipt, error) {
	rec, err := s.repo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	switch rec.Status {
	case constants.StatusAwaitingReview, constants.StatusLowConfidence:
	default:
		return nil, fmt.Errorf("confirm %s receipt: %w", rec.Status, common.ErrInvalidState)
	}
	confirmed, err := s.repo.Verify(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	s.log.Info("receipt confirmed", "receipt_id", receiptID, "previous_status", rec.Status)
	return confirmed, nil
}

// Get returns a single receipt.
func (s *Service) Get(ctx context.Context, receiptID uuid.UUID) (*entity.Receipt, error) {
	return s.repo.GetByID(ctx, receiptID)
}

// List returns an owner's receipts, optionally bounded by receipt date.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("missing owner: %w", common.ErrInvalidInput)
	}
	return s.repo.List(ctx, ownerID, fromDate, toDate)
}
