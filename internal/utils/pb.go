package utils

import (
	"time"

	receiptspb "github.com/scouter-app/receipt-pipeline/gen/proto/receipts/v1"
	"github.com/scouter-app/receipt-pipeline/internal/entity"
)

// ToPBReceipt converts the transfer struct into its wire shape. Optional
// columns flatten to zero values.
func ToPBReceipt(r *entity.Receipt) *receiptspb.Receipt {
	pb := &receiptspb.Receipt{
		Id:               r.ID.String(),
		OwnerUserId:      r.OwnerUserID.String(),
		Source:           string(r.Source),
		OriginalFilename: r.OriginalFilename,
		Status:           string(r.Status),
		IsVerified:       r.IsVerified,
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.StorageReference != nil {
		pb.StorageReference = *r.StorageReference
	}
	if r.ConfidenceScore != nil {
		pb.ConfidenceScore = *r.ConfidenceScore
	}
	if r.ReceiptDate != nil {
		pb.ReceiptDate = r.ReceiptDate.Format("2006-01-02")
	}
	if r.VendorName != nil {
		pb.VendorName = *r.VendorName
	}
	if r.AmountTotal != nil {
		pb.AmountTotal = *r.AmountTotal
	}
	if r.AmountSubtotal != nil {
		pb.AmountSubtotal = *r.AmountSubtotal
	}
	if r.TaxAmount != nil {
		pb.TaxAmount = *r.TaxAmount
	}
	if r.CurrencyCode != nil {
		pb.CurrencyCode = *r.CurrencyCode
	}
	if r.PaymentMethod != nil {
		pb.PaymentMethod = *r.PaymentMethod
	}
	if r.Category != nil {
		pb.Category = *r.Category
	}
	if len(r.StructuredFields) > 0 {
		pb.StructuredFieldsJson = string(r.StructuredFields)
	}
	return pb
}

// ToPBProgress converts a session snapshot for the polling endpoint.
func ToPBProgress(s entity.SessionSnapshot) *receiptspb.GetProgressResponse {
	stages := make([]*receiptspb.StageProgress, len(s.Stages))
	for i, st := range s.Stages {
		stages[i] = &receiptspb.StageProgress{
			Name:       st.Name,
			Status:     string(st.Status),
			Completion: st.Completion,
			Error:      st.Error,
		}
	}
	return &receiptspb.GetProgressResponse{
		SessionId:     s.SessionID,
		ReceiptId:     s.ReceiptID.String(),
		Stages:        stages,
		OverallStatus: string(s.OverallStatus),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
