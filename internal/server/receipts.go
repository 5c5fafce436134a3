package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scouter-app/receipt-pipeline/constants"
	receiptspb "github.com/scouter-app/receipt-pipeline/gen/proto/receipts/v1"
	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/receipts"
	"github.com/scouter-app/receipt-pipeline/internal/utils"
)

type ReceiptsServer struct {
	receiptspb.UnimplementedReceiptsServiceServer
	svc    *receipts.Service
	logger *slog.Logger
}

func NewReceiptsServer(svc *receipts.Service, logger *slog.Logger) *ReceiptsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptsServer{svc: svc, logger: logger}
}

func (s *ReceiptsServer) ProcessReceipt(ctx context.Context, req *receiptspb.ProcessReceiptRequest) (*receiptspb.ProcessReceiptResponse, error) {
	validator := common.NewValidator()
	validator.Field("owner_user_id", req.GetOwnerUserId(), common.Required, common.UUID)
	validator.Field("image", req.GetImage(), common.Required)
	validator.Field("content_type", req.GetContentType(), common.Required)
	validator.Field("filename", req.GetFilename(), common.MaxLength(255))
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("invalid process receipt request", "error", err)
		return nil, err
	}
	ownerID, err := uuid.Parse(strings.TrimSpace(req.GetOwnerUserId()))
	if err != nil {
		return nil, common.InvalidArgumentError("owner_user_id must be a UUID")
	}

	receiptID, sessionID, err := s.svc.Process(ctx, &receipts.ProcessRequest{
		OwnerUserID: ownerID,
		Source:      constants.Source(req.GetSource()),
		Filename:    req.GetFilename(),
		ContentType: req.GetContentType(),
		Image:       req.GetImage(),
	})
	if err != nil {
		s.logger.Error("process receipt failed", "owner_user_id", ownerID, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &receiptspb.ProcessReceiptResponse{
		ReceiptId: receiptID.String(),
		SessionId: sessionID,
	}, nil
}

func (s *ReceiptsServer) GetProgress(ctx context.Context, req *receiptspb.GetProgressRequest) (*receiptspb.GetProgressResponse, error) {
	sid := strings.TrimSpace(req.GetSessionId())
	if sid == "" {
		return nil, common.InvalidArgumentError("session_id is required")
	}
	snap, err := s.svc.Progress(ctx, sid)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return utils.ToPBProgress(snap), nil
}

func (s *ReceiptsServer) ConfirmReceipt(ctx context.Context, req *receiptspb.ConfirmReceiptRequest) (*receiptspb.ConfirmReceiptResponse, error) {
	receiptID, err := uuid.Parse(strings.TrimSpace(req.GetReceiptId()))
	if err != nil {
		return nil, common.InvalidArgumentError("receipt_id must be a UUID")
	}
	rec, err := s.svc.Confirm(ctx, receiptID)
	if err != nil {
		s.logger.Error("confirm receipt failed", "receipt_id", receiptID, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &receiptspb.ConfirmReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func (s *ReceiptsServer) GetReceipt(ctx context.Context, req *receiptspb.GetReceiptRequest) (*receiptspb.GetReceiptResponse, error) {
	receiptID, err := uuid.Parse(strings.TrimSpace(req.GetReceiptId()))
	if err != nil {
		return nil, common.InvalidArgumentError("receipt_id must be a UUID")
	}
	rec, err := s.svc.Get(ctx, receiptID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &receiptspb.GetReceiptResponse{Receipt: utils.ToPBReceipt(rec)}, nil
}

func (s *ReceiptsServer) ListReceipts(ctx context.Context, req *receiptspb.ListReceiptsRequest) (*receiptspb.ListReceiptsResponse, error) {
	ownerID, err := uuid.Parse(strings.TrimSpace(req.GetOwnerUserId()))
	if err != nil {
		s.logger.Error("invalid owner_user_id for list receipts", "owner_user_id", req.GetOwnerUserId(), "error", err)
		return nil, common.InvalidArgumentError("owner_user_id must be a UUID")
	}

	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	recs, err := s.svc.List(ctx, ownerID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list receipts", "owner_user_id", ownerID, "error", err)
		return nil, common.GRPCStatus(err)
	}

	out := make([]*receiptspb.Receipt, 0, len(recs))
	for _, r := range recs {
		out = append(out, utils.ToPBReceipt(r))
	}
	return &receiptspb.ListReceiptsResponse{Receipts: out}, nil
}

// parseDateWindow parses the optional YYYY-MM-DD bounds shared by the
// list and export endpoints.
func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &t
	}
	return fromDate, toDate, nil
}
