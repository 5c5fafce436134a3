package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/scouter-app/receipt-pipeline/constants"
)

// Receipt represents a receipt for data transfer between layers.
// The row is the source of truth for pipeline progress; sessions are
// only an observability cache on top of it.
type Receipt struct {
	ID               uuid.UUID               `json:"id"`
	OwnerUserID      uuid.UUID               `json:"owner_user_id"`
	Source           constants.Source        `json:"source"`
	OriginalFilename string                  `json:"original_filename"`
	StorageReference *string                 `json:"storage_reference,omitempty"`
	OCRRawText       *string                 `json:"ocr_raw_text,omitempty"`
	StructuredFields json.RawMessage         `json:"structured_fields,omitempty"`
	ConfidenceScore  *float32                `json:"confidence_score,omitempty"`
	Status           constants.ReceiptStatus `json:"status"`
	IsVerified       bool                    `json:"is_verified"`

	// Columns projected out of structured_fields once AI extraction completes.
	ReceiptDate    *time.Time `json:"receipt_date,omitempty"`
	VendorName     *string    `json:"vendor_name,omitempty"`
	AmountTotal    *float64   `json:"amount_total,omitempty"`
	AmountSubtotal *float64   `json:"amount_subtotal,omitempty"`
	TaxAmount      *float64   `json:"tax_amount,omitempty"`
	CurrencyCode   *string    `json:"currency_code,omitempty"`
	PaymentMethod  *string    `json:"payment_method,omitempty"`
	Category       *string    `json:"category,omitempty"`

	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	OCRCompletedAt *time.Time `json:"ocr_completed_at,omitempty"`
	AIReviewedAt   *time.Time `json:"ai_reviewed_at,omitempty"`
}
