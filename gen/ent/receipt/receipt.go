// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receipt type in the database.
	Label = "receipt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerUserID holds the string denoting the owner_user_id field in the database.
	FieldOwnerUserID = "owner_user_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldStorageReference holds the string denoting the storage_reference field in the database.
	FieldStorageReference = "storage_reference"
	// FieldOcrRawText holds the string denoting the ocr_raw_text field in the database.
	FieldOcrRawText = "ocr_raw_text"
	// FieldStructuredFields holds the string denoting the structured_fields field in the database.
	FieldStructuredFields = "structured_fields"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIsVerified holds the string denoting the is_verified field in the database.
	FieldIsVerified = "is_verified"
	// FieldReceiptDate holds the string denoting the receipt_date field in the database.
	FieldReceiptDate = "receipt_date"
	// FieldVendorName holds the string denoting the vendor_name field in the database.
	FieldVendorName = "vendor_name"
	// FieldAmountTotal holds the string denoting the amount_total field in the database.
	FieldAmountTotal = "amount_total"
	// FieldAmountSubtotal holds the string denoting the amount_subtotal field in the database.
	FieldAmountSubtotal = "amount_subtotal"
	// FieldTaxAmount holds the string denoting the tax_amount field in the database.
	FieldTaxAmount = "tax_amount"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOcrCompletedAt holds the string denoting the ocr_completed_at field in the database.
	FieldOcrCompletedAt = "ocr_completed_at"
	// FieldAiReviewedAt holds the string denoting the ai_reviewed_at field in the database.
	FieldAiReviewedAt = "ai_reviewed_at"
	// Table holds the table name of the receipt in the database.
	Table = "receipts"
)

// Columns holds all SQL columns for receipt fields.
var Columns = []string{
	FieldID,
	FieldOwnerUserID,
	FieldSource,
	FieldOriginalFilename,
	FieldStorageReference,
	FieldOcrRawText,
	FieldStructuredFields,
	FieldConfidenceScore,
	FieldStatus,
	FieldIsVerified,
	FieldReceiptDate,
	FieldVendorName,
	FieldAmountTotal,
	FieldAmountSubtotal,
	FieldTaxAmount,
	FieldCurrencyCode,
	FieldPaymentMethod,
	FieldCategory,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOcrCompletedAt,
	FieldAiReviewedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultIsVerified holds the default value on creation for the "is_verified" field.
	DefaultIsVerified bool
	// CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	CurrencyCodeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Receipt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerUserID orders the results by the owner_user_id field.
func ByOwnerUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerUserID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByStorageReference orders the results by the storage_reference field.
func ByStorageReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageReference, opts...).ToFunc()
}

// ByOcrRawText orders the results by the ocr_raw_text field.
func ByOcrRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrRawText, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIsVerified orders the results by the is_verified field.
func ByIsVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVerified, opts...).ToFunc()
}

// ByReceiptDate orders the results by the receipt_date field.
func ByReceiptDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiptDate, opts...).ToFunc()
}

// ByVendorName orders the results by the vendor_name field.
func ByVendorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorName, opts...).ToFunc()
}

// ByAmountTotal orders the results by the amount_total field.
func ByAmountTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountTotal, opts...).ToFunc()
}

// ByAmountSubtotal orders the results by the amount_subtotal field.
func ByAmountSubtotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountSubtotal, opts...).ToFunc()
}

// ByTaxAmount orders the results by the tax_amount field.
func ByTaxAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxAmount, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOcrCompletedAt orders the results by the ocr_completed_at field.
func ByOcrCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrCompletedAt, opts...).ToFunc()
}

// ByAiReviewedAt orders the results by the ai_reviewed_at field.
func ByAiReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiReviewedAt, opts...).ToFunc()
}
