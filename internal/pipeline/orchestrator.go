package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/scouter-app/receipt-pipeline/constants"
	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/entity"
	"github.com/scouter-app/receipt-pipeline/internal/extract"
	"github.com/scouter-app/receipt-pipeline/internal/llm"
	"github.com/scouter-app/receipt-pipeline/internal/progress"
	"github.com/scouter-app/receipt-pipeline/internal/repository"
	"github.com/scouter-app/receipt-pipeline/internal/storage"
)

// Job is one receipt run through the pipeline. Image bytes ride along
// from the ingest call so the upload stage does not re-read anything.
type Job struct {
	ReceiptID   uuid.UUID
	SessionID   string
	Image       []byte
	ContentType string
}

// Config bounds each stage run.
type Config struct {
	ConfidenceThreshold float32
	MaxAttempts         int
	RetryBaseDelay      time.Duration
	StageTimeout        time.Duration
}

// Orchestrator drives one receipt through upload, ocr, ai_extraction and
// finalize. The receipt row is the source of truth for resumability:
// stages the row already passed are skipped, so re-running a job after a
// mid-pipeline failure picks up where it stopped.
type Orchestrator struct {
	repo    repository.ReceiptRepository
	store   storage.ObjectStore
	ocr     extract.TextExtractor
	fields  llm.FieldExtractor
	tracker *progress.Tracker
	cfg     Config
	log     *slog.Logger
}

func NewOrchestrator(
	repo repository.ReceiptRepository,
	store storage.ObjectStore,
	ocr extract.TextExtractor,
	fields llm.FieldExtractor,
	tracker *progress.Tracker,
	cfg Config,
	logger *slog.Logger,
) *Orchestrator {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = 0.75
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 500 * time.Millisecond
	}
	if cfg.StageTimeout <= 0 {
		cfg.StageTimeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		repo:    repo,
		store:   store,
		ocr:     ocr,
		fields:  fields,
		tracker: tracker,
		cfg:     cfg,
		log:     logger,
	}
}

// stage pairs a name with a completion check against the receipt row
// and the work itself. run returns the refreshed row on success.
type stage struct {
	name      string
	completed func(*entity.Receipt) bool
	run       func(ctx context.Context, job *Job, rec *entity.Receipt) (*entity.Receipt, error)
}

func (o *Orchestrator) stages() []stage {
	return []stage{
		{
			name:      constants.StageUpload,
			completed: func(r *entity.Receipt) bool { return r.StorageReference != nil },
			run:       o.runUpload,
		},
		{
			name:      constants.StageOCR,
			completed: func(r *entity.Receipt) bool { return r.Status.Rank() >= constants.StatusOCRDone.Rank() },
			run:       o.runOCR,
		},
		{
			name:      constants.StageAIExtraction,
			completed: func(r *entity.Receipt) bool { return r.Status.Rank() >= constants.StatusAIDone.Rank() },
			run:       o.runExtraction,
		},
		{
			name:      constants.StageFinalize,
			completed: func(r *entity.Receipt) bool { return r.Status.Rank() >= constants.StatusAwaitingReview.Rank() },
			run:       o.runFinalize,
		},
	}
}

// Process runs the job to completion or to the first failed stage. A
// stage failure fails the session; the receipt row keeps its last
// completed status except for upload, where there is nothing to resume.
func (o *Orchestrator) Process(ctx context.Context, job *Job) error {
	rec, err := o.repo.GetByID(ctx, job.ReceiptID)
	if err != nil {
		o.failSession(job.SessionID, constants.StageUpload, err)
		return err
	}
	if rec.Status.IsTerminal() {
		o.log.Warn("pipeline.skip_terminal", "receipt_id", job.ReceiptID, "status", rec.Status)
		return fmt.Errorf("receipt %s is %s: %w", job.ReceiptID, rec.Status, common.ErrInvalidState)
	}

	for _, st := range o.stages() {
		if st.completed(rec) {
			_ = o.tracker.UpdateStage(job.SessionID, st.name, constants.StageDone, 1, "")
			o.log.Info("pipeline.stage.skipped", "receipt_id", job.ReceiptID, "stage", st.name)
			continue
		}

		_ = o.tracker.UpdateStage(job.SessionID, st.name, constants.StageRunning, 0, "")
		start := time.Now()

		rec, err = o.runWithRetry(ctx, st, job, rec)
		if err != nil {
			o.log.Error("pipeline.stage.failed",
				"receipt_id", job.ReceiptID, "stage", st.name,
				"error", err, "elapsed_ms", time.Since(start).Milliseconds())
			o.failSession(job.SessionID, st.name, err)
			if st.name == constants.StageUpload {
				if _, ferr := o.repo.MarkFailed(ctx, job.ReceiptID); ferr != nil {
					o.log.Error("pipeline.mark_failed.error", "receipt_id", job.ReceiptID, "error", ferr)
				}
			}
			return err
		}

		_ = o.tracker.UpdateStage(job.SessionID, st.name, constants.StageDone, 1, "")
		o.log.Info("pipeline.stage.ok",
			"receipt_id", job.ReceiptID, "stage", st.name,
			"status", rec.Status, "elapsed_ms", time.Since(start).Milliseconds())
	}

	o.log.Info("pipeline.done", "receipt_id", job.ReceiptID, "status", rec.Status)
	return nil
}

// runWithRetry retries transient collaborator failures with exponential
// backoff, up to MaxAttempts total tries. Permanent rejections and state
// machine errors stop immediately.
func (o *Orchestrator) runWithRetry(ctx context.Context, st stage, job *Job, rec *entity.Receipt) (*entity.Receipt, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = o.cfg.RetryBaseDelay
	exp.MaxElapsedTime = 0
	bo := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(o.cfg.MaxAttempts-1)), ctx)

	attempt := 0
	out := rec
	err := backoff.Retry(func() error {
		attempt++
		sctx, cancel := context.WithTimeout(ctx, o.cfg.StageTimeout)
		defer cancel()

		next, rerr := st.run(sctx, job, out)
		if rerr != nil {
			if common.IsTransient(rerr) {
				o.log.Warn("pipeline.stage.retrying",
					"receipt_id", job.ReceiptID, "stage", st.name,
					"attempt", attempt, "error", rerr)
				return rerr
			}
			return backoff.Permanent(rerr)
		}
		out = next
		return nil
	}, bo)
	if err != nil {
		return rec, err
	}
	return out, nil
}

func (o *Orchestrator) runUpload(ctx context.Context, job *Job, rec *entity.Receipt) (*entity.Receipt, error) {
	if len(job.Image) == 0 {
		return nil, fmt.Errorf("no image bytes for receipt %s: %w", job.ReceiptID, common.ErrInvalidInput)
	}
	key := "receipts/" + job.ReceiptID.String() + constants.ExtensionFor(job.ContentType)
	if err := o.store.Put(ctx, key, job.Image, job.ContentType); err != nil {
		return nil, err
	}
	return o.repo.SetUploaded(ctx, job.ReceiptID, key)
}

func (o *Orchestrator) runOCR(ctx context.Context, job *Job, rec *entity.Receipt) (*entity.Receipt, error) {
	image := job.Image
	if len(image) == 0 {
		// resumed job; the bytes only live in object storage now
		if rec.StorageReference == nil {
			return nil, fmt.Errorf("receipt %s has no stored image: %w", job.ReceiptID, common.ErrInvalidState)
		}
		var err error
		image, err = o.store.Get(ctx, *rec.StorageReference)
		if err != nil {
			return nil, err
		}
	}

	res, err := o.ocr.ExtractText(ctx, image)
	if err != nil {
		return nil, err
	}
	return o.repo.FinishOCR(ctx, job.ReceiptID, res.Text)
}

func (o *Orchestrator) runExtraction(ctx context.Context, job *Job, rec *entity.Receipt) (*entity.Receipt, error) {
	if rec.OCRRawText == nil {
		return nil, fmt.Errorf("receipt %s has no ocr text: %w", job.ReceiptID, common.ErrInvalidState)
	}

	fields, raw, err := o.fields.ExtractFields(ctx, llm.ExtractRequest{
		OCRText:           *rec.OCRRawText,
		FilenameHint:      rec.OriginalFilename,
		AllowedCategories: constants.AsStringSlice(),
	})
	if err != nil {
		return nil, err
	}
	return o.repo.FinishExtraction(ctx, job.ReceiptID, repository.ExtractionOutcome{
		Fields:     fields,
		RawJSON:    raw,
		Confidence: fields.Confidence,
	})
}

// runFinalize routes by confidence: at or above the threshold the
// receipt goes to the normal review queue, below it gets flagged.
func (o *Orchestrator) runFinalize(ctx context.Context, job *Job, rec *entity.Receipt) (*entity.Receipt, error) {
	target := constants.StatusAwaitingReview
	if rec.ConfidenceScore == nil || *rec.ConfidenceScore < o.cfg.ConfidenceThreshold {
		target = constants.StatusLowConfidence
	}
	return o.repo.Route(ctx, job.ReceiptID, target)
}

func (o *Orchestrator) failSession(sessionID, stageName string, err error) {
	msg := err.Error()
	if uerr := o.tracker.UpdateStage(sessionID, stageName, constants.StageFailed, 0, msg); uerr != nil {
		o.log.Warn("pipeline.session.update_failed", "session_id", sessionID, "error", uerr)
	}
}
