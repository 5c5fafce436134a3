package llm

import "context"

// ReceiptFields is the normalized shape we want from the model.
// Amounts are numbers, not strings; nil means the field was absent.
type ReceiptFields struct {
	ReceiptDate    string   `json:"receipt_date"` // YYYY-MM-DD
	VendorName     string   `json:"vendor_name"`
	Location       string   `json:"location,omitempty"`
	AmountTotal    *float64 `json:"amount_total"`
	AmountSubtotal *float64 `json:"amount_subtotal,omitempty"`
	TaxAmount      *float64 `json:"tax_amount,omitempty"`
	Currency       string   `json:"currency"` // ISO 4217
	PaymentMethod  string   `json:"payment_method,omitempty"`
	Category       string   `json:"category,omitempty"` // must match AllowedCategories if provided
	Items          []Item   `json:"items,omitempty"`
	Confidence     float32  `json:"confidence_score"` // 0..1 after normalization
}

// Item is a single line item from the receipt body.
type Item struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type ExtractRequest struct {
	OCRText           string
	FilenameHint      string
	AllowedCategories []string
	DefaultCurrency   string
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (ReceiptFields, []byte /*rawJSON*/, error)
}
