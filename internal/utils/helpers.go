package utils

import (
	"time"

	"github.com/scouter-app/receipt-pipeline/constants"
	"github.com/scouter-app/receipt-pipeline/gen/ent"
	"github.com/scouter-app/receipt-pipeline/internal/entity"
)

// ToReceipt converts an ent row into the transfer struct used above the
// repository layer.
func ToReceipt(e *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:               e.ID,
		OwnerUserID:      e.OwnerUserID,
		Source:           constants.Source(e.Source),
		OriginalFilename: e.OriginalFilename,
		StorageReference: e.StorageReference,
		OCRRawText:       e.OcrRawText,
		StructuredFields: e.StructuredFields,
		ConfidenceScore:  e.ConfidenceScore,
		Status:           constants.ReceiptStatus(e.Status),
		IsVerified:       e.IsVerified,
		ReceiptDate:      e.ReceiptDate,
		VendorName:       e.VendorName,
		AmountTotal:      e.AmountTotal,
		AmountSubtotal:   e.AmountSubtotal,
		TaxAmount:        e.TaxAmount,
		CurrencyCode:     e.CurrencyCode,
		PaymentMethod:    e.PaymentMethod,
		Category:         e.Category,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		OCRCompletedAt:   e.OcrCompletedAt,
		AIReviewedAt:     e.AiReviewedAt,
	}
}

// ParseYMD parses a YYYY-MM-DD string into a midnight-UTC time to match
// DATE column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
