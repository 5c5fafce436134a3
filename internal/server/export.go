package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	receiptspb "github.com/scouter-app/receipt-pipeline/gen/proto/receipts/v1"
	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/export"
)

type ExportServer struct {
	receiptspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportReceipts(ctx context.Context, req *receiptspb.ExportReceiptsRequest) (*receiptspb.ExportReceiptsResponse, error) {
	ownerID, err := uuid.Parse(strings.TrimSpace(req.GetOwnerUserId()))
	if err != nil {
		return nil, common.InvalidArgumentError("owner_user_id must be a UUID")
	}

	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportVerifiedXLSX(ctx, ownerID, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "owner_user_id", ownerID, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &receiptspb.ExportReceiptsResponse{Xlsx: xlsx}, nil
}
