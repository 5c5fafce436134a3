package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scouter-app/receipt-pipeline/constants"
	"github.com/scouter-app/receipt-pipeline/gen/ent"
	"github.com/scouter-app/receipt-pipeline/gen/ent/receipt"
	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/entity"
	"github.com/scouter-app/receipt-pipeline/internal/llm"
	"github.com/scouter-app/receipt-pipeline/internal/utils"
)

// CreateReceiptRequest wraps parameters for creating a receipt row at
// upload request time.
type CreateReceiptRequest struct {
	OwnerUserID      uuid.UUID
	Source           constants.Source
	OriginalFilename string
}

// ExtractionOutcome carries the AI stage result into persistence: the
// validated field set, the raw payload it was decoded from, and the
// model confidence.
type ExtractionOutcome struct {
	Fields     llm.ReceiptFields
	RawJSON    json.RawMessage
	Confidence float32
}

// ReceiptRepository is the single write path for receipt rows. Every
// mutator enforces the status state machine: re-applying a stage the
// receipt already passed is a no-op returning the current row, and a
// transition the machine forbids returns ErrInvalidState.
type ReceiptRepository interface {
	Create(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	List(ctx context.Context, ownerID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
	ListVerified(ctx context.Context, ownerID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error)
	SetUploaded(ctx context.Context, id uuid.UUID, storageRef string) (*entity.Receipt, error)
	FinishOCR(ctx context.Context, id uuid.UUID, rawText string) (*entity.Receipt, error)
	FinishExtraction(ctx context.Context, id uuid.UUID, out ExtractionOutcome) (*entity.Receipt, error)
	Route(ctx context.Context, id uuid.UUID, to constants.ReceiptStatus) (*entity.Receipt, error)
	Verify(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	MarkFailed(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
}

type receiptRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReceiptRepository(client *ent.Client, logger *slog.Logger) ReceiptRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &receiptRepository{
		client: client,
		logger: logger,
	}
}

func (r *receiptRepository) Create(ctx context.Context, req *CreateReceiptRequest) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.
		Create().
		SetOwnerUserID(req.OwnerUserID).
		SetSource(string(req.Source)).
		SetOriginalFilename(req.OriginalFilename).
		SetStatus(string(constants.StatusUploaded)).
		Save(ctx)
	if err != nil {
		r.logger.Error("receipt create failed", "owner_user_id", req.OwnerUserID, "error", err)
		return nil, err
	}
	r.logger.Info("receipt created", "receipt_id", rec.ID, "owner_user_id", req.OwnerUserID, "source", req.Source)
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.client.Receipt.Query().Where(receipt.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToReceipt(rec), nil
}

func (r *receiptRepository) List(ctx context.Context, ownerID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	return r.list(ctx, ownerID, fromDate, toDate, false)
}

func (r *receiptRepository) ListVerified(ctx context.Context, ownerID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Receipt, error) {
	return r.list(ctx, ownerID, fromDate, toDate, true)
}

func (r *receiptRepository) list(ctx context.Context, ownerID uuid.UUID, fromDate, toDate *time.Time, verifiedOnly bool) ([]*entity.Receipt, error) {
	q := r.client.Receipt.Query().Where(receipt.OwnerUserID(ownerID))
	if verifiedOnly {
		q = q.Where(receipt.IsVerified(true))
	}
	if fromDate != nil {
		q = q.Where(receipt.ReceiptDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(receipt.ReceiptDateLTE(*toDate))
	}
	recs, err := q.Order(ent.Desc(receipt.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list receipts", "owner_user_id", ownerID, "error", err)
		return nil, err
	}

	result := make([]*entity.Receipt, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToReceipt(rec)
	}
	return result, nil
}

// SetUploaded records the object storage reference. The row is created
// in uploaded with a nil reference; this completes the upload stage.
func (r *receiptRepository) SetUploaded(ctx context.Context, id uuid.UUID, storageRef string) (*entity.Receipt, error) {
	rec, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.StorageReference != nil {
		// upload already completed, possibly on an earlier run
		return utils.ToReceipt(rec), nil
	}
	if constants.ReceiptStatus(rec.Status) != constants.StatusUploaded {
		return nil, fmt.Errorf("set storage reference on %s receipt: %w", rec.Status, common.ErrInvalidState)
	}
	updated, err := rec.Update().
		SetStorageReference(storageRef).
		Save(ctx)
	if err != nil {
		r.logger.Error("receipt upload update failed", "receipt_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("receipt image stored", "receipt_id", id, "storage_reference", storageRef)
	return utils.ToReceipt(updated), nil
}

func (r *receiptRepository) FinishOCR(ctx context.Context, id uuid.UUID, rawText string) (*entity.Receipt, error) {
	rec, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	cur := constants.ReceiptStatus(rec.Status)
	if cur.Rank() >= constants.StatusOCRDone.Rank() {
		return utils.ToReceipt(rec), nil
	}
	if !constants.CanTransition(cur, constants.StatusOCRDone) {
		return nil, fmt.Errorf("ocr_done from %s: %w", cur, common.ErrInvalidState)
	}
	updated, err := rec.Update().
		SetOcrRawText(rawText).
		SetOcrCompletedAt(time.Now().UTC()).
		SetStatus(string(constants.StatusOCRDone)).
		Save(ctx)
	if err != nil {
		r.logger.Error("receipt ocr update failed", "receipt_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("receipt ocr complete", "receipt_id", id, "text_bytes", len(rawText))
	return utils.ToReceipt(updated), nil
}

// FinishExtraction persists the structured field set, confidence, and
// the projection of known fields into their first-class columns.
func (r *receiptRepository) FinishExtraction(ctx context.Context, id uuid.UUID, out ExtractionOutcome) (*entity.Receipt, error) {
	rec, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	cur := constants.ReceiptStatus(rec.Status)
	if cur.Rank() >= constants.StatusAIDone.Rank() {
		return utils.ToReceipt(rec), nil
	}
	if !constants.CanTransition(cur, constants.StatusAIDone) {
		return nil, fmt.Errorf("ai_done from %s: %w", cur, common.ErrInvalidState)
	}

	f := out.Fields
	builder := rec.Update().
		SetStructuredFields(out.RawJSON).
		SetConfidenceScore(out.Confidence).
		SetAiReviewedAt(time.Now().UTC()).
		SetStatus(string(constants.StatusAIDone))

	if f.ReceiptDate != "" {
		if d, err := utils.ParseYMD(f.ReceiptDate); err == nil {
			builder = builder.SetReceiptDate(d)
		} else {
			r.logger.Warn("unparseable receipt date, skipping projection", "receipt_id", id, "value", f.ReceiptDate)
		}
	}
	if f.VendorName != "" {
		builder = builder.SetVendorName(f.VendorName)
	}
	if f.AmountTotal != nil {
		builder = builder.SetAmountTotal(*f.AmountTotal)
	}
	if f.AmountSubtotal != nil {
		builder = builder.SetAmountSubtotal(*f.AmountSubtotal)
	}
	if f.TaxAmount != nil {
		builder = builder.SetTaxAmount(*f.TaxAmount)
	}
	if f.Currency != "" {
		builder = builder.SetCurrencyCode(f.Currency)
	}
	if f.PaymentMethod != "" {
		builder = builder.SetPaymentMethod(f.PaymentMethod)
	}
	if canon, ok := constants.Canonicalize(f.Category); ok {
		builder = builder.SetCategory(string(canon))
	} else if f.Category != "" {
		r.logger.Warn("unknown category label", "receipt_id", id, "label", f.Category)
		builder = builder.SetCategory(string(constants.Other))
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("receipt extraction update failed", "receipt_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("receipt fields extracted",
		"receipt_id", id,
		"vendor", f.VendorName,
		"date", f.ReceiptDate,
		"confidence", out.Confidence,
	)
	return utils.ToReceipt(updated), nil
}

// Route moves an ai_done receipt into one of the two review states.
func (r *receiptRepository) Route(ctx context.Context, id uuid.UUID, to constants.ReceiptStatus) (*entity.Receipt, error) {
	if to != constants.StatusAwaitingReview && to != constants.StatusLowConfidence {
		return nil, fmt.Errorf("route target %s: %w", to, common.ErrInvalidState)
	}
	rec, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	cur := constants.ReceiptStatus(rec.Status)
	if cur.Rank() >= to.Rank() {
		return utils.ToReceipt(rec), nil
	}
	if !constants.CanTransition(cur, to) {
		return nil, fmt.Errorf("%s from %s: %w", to, cur, common.ErrInvalidState)
	}
	updated, err := rec.Update().SetStatus(string(to)).Save(ctx)
	if err != nil {
		r.logger.Error("receipt route update failed", "receipt_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("receipt routed for review", "receipt_id", id, "status", to)
	return utils.ToReceipt(updated), nil
}

// Verify marks a reviewable receipt as user-confirmed.
func (r *receiptRepository) Verify(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	cur := constants.ReceiptStatus(rec.Status)
	if !constants.CanTransition(cur, constants.StatusVerified) {
		return nil, fmt.Errorf("verify from %s: %w", cur, common.ErrInvalidState)
	}
	updated, err := rec.Update().
		SetStatus(string(constants.StatusVerified)).
		SetIsVerified(true).
		Save(ctx)
	if err != nil {
		r.logger.Error("receipt verify update failed", "receipt_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("receipt verified", "receipt_id", id)
	return utils.ToReceipt(updated), nil
}

// MarkFailed is reserved for the upload stage: with no stored image
// there is nothing to resume, so the row itself goes terminal. Later
// stage failures leave the row at its last completed status instead.
func (r *receiptRepository) MarkFailed(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	cur := constants.ReceiptStatus(rec.Status)
	if cur.IsTerminal() {
		return utils.ToReceipt(rec), nil
	}
	updated, err := rec.Update().SetStatus(string(constants.StatusFailed)).Save(ctx)
	if err != nil {
		r.logger.Error("receipt fail update failed", "receipt_id", id, "error", err)
		return nil, err
	}
	r.logger.Warn("receipt marked failed", "receipt_id", id, "previous_status", cur)
	return utils.ToReceipt(updated), nil
}

func (r *receiptRepository) get(ctx context.Context, id uuid.UUID) (*ent.Receipt, error) {
	rec, err := r.client.Receipt.Query().Where(receipt.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}
