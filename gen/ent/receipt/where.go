// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scouter-app/receipt-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldID, id))
}

// OwnerUserID applies equality check predicate on the "owner_user_id" field. It's identical to OwnerUserIDEQ.
func OwnerUserID(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOwnerUserID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSource, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOriginalFilename, v))
}

// StorageReference applies equality check predicate on the "storage_reference" field. It's identical to StorageReferenceEQ.
func StorageReference(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStorageReference, v))
}

// OcrRawText applies equality check predicate on the "ocr_raw_text" field. It's identical to OcrRawTextEQ.
func OcrRawText(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOcrRawText, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldConfidenceScore, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStatus, v))
}

// IsVerified applies equality check predicate on the "is_verified" field. It's identical to IsVerifiedEQ.
func IsVerified(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldIsVerified, v))
}

// ReceiptDate applies equality check predicate on the "receipt_date" field. It's identical to ReceiptDateEQ.
func ReceiptDate(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldReceiptDate, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldVendorName, v))
}

// AmountTotal applies equality check predicate on the "amount_total" field. It's identical to AmountTotalEQ.
func AmountTotal(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAmountTotal, v))
}

// AmountSubtotal applies equality check predicate on the "amount_subtotal" field. It's identical to AmountSubtotalEQ.
func AmountSubtotal(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAmountSubtotal, v))
}

// TaxAmount applies equality check predicate on the "tax_amount" field. It's identical to TaxAmountEQ.
func TaxAmount(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTaxAmount, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCurrencyCode, v))
}

// PaymentMethod applies equality check predicate on the "payment_method" field. It's identical to PaymentMethodEQ.
func PaymentMethod(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPaymentMethod, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCategory, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldUpdatedAt, v))
}

// OcrCompletedAt applies equality check predicate on the "ocr_completed_at" field. It's identical to OcrCompletedAtEQ.
func OcrCompletedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOcrCompletedAt, v))
}

// AiReviewedAt applies equality check predicate on the "ai_reviewed_at" field. It's identical to AiReviewedAtEQ.
func AiReviewedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAiReviewedAt, v))
}

// OwnerUserIDEQ applies the EQ predicate on the "owner_user_id" field.
func OwnerUserIDEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOwnerUserID, v))
}

// OwnerUserIDNEQ applies the NEQ predicate on the "owner_user_id" field.
func OwnerUserIDNEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldOwnerUserID, v))
}

// OwnerUserIDIn applies the In predicate on the "owner_user_id" field.
func OwnerUserIDIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDNotIn applies the NotIn predicate on the "owner_user_id" field.
func OwnerUserIDNotIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldOwnerUserID, vs...))
}

// OwnerUserIDGT applies the GT predicate on the "owner_user_id" field.
func OwnerUserIDGT(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldOwnerUserID, v))
}

// OwnerUserIDGTE applies the GTE predicate on the "owner_user_id" field.
func OwnerUserIDGTE(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldOwnerUserID, v))
}

// OwnerUserIDLT applies the LT predicate on the "owner_user_id" field.
func OwnerUserIDLT(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldOwnerUserID, v))
}

// OwnerUserIDLTE applies the LTE predicate on the "owner_user_id" field.
func OwnerUserIDLTE(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldOwnerUserID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldSource, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// StorageReferenceEQ applies the EQ predicate on the "storage_reference" field.
func StorageReferenceEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStorageReference, v))
}

// StorageReferenceNEQ applies the NEQ predicate on the "storage_reference" field.
func StorageReferenceNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldStorageReference, v))
}

// StorageReferenceIn applies the In predicate on the "storage_reference" field.
func StorageReferenceIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldStorageReference, vs...))
}

// StorageReferenceNotIn applies the NotIn predicate on the "storage_reference" field.
func StorageReferenceNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldStorageReference, vs...))
}

// StorageReferenceGT applies the GT predicate on the "storage_reference" field.
func StorageReferenceGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldStorageReference, v))
}

// StorageReferenceGTE applies the GTE predicate on the "storage_reference" field.
func StorageReferenceGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldStorageReference, v))
}

// StorageReferenceLT applies the LT predicate on the "storage_reference" field.
func StorageReferenceLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldStorageReference, v))
}

// StorageReferenceLTE applies the LTE predicate on the "storage_reference" field.
func StorageReferenceLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldStorageReference, v))
}

// StorageReferenceContains applies the Contains predicate on the "storage_reference" field.
func StorageReferenceContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldStorageReference, v))
}

// StorageReferenceHasPrefix applies the HasPrefix predicate on the "storage_reference" field.
func StorageReferenceHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldStorageReference, v))
}

// StorageReferenceHasSuffix applies the HasSuffix predicate on the "storage_reference" field.
func StorageReferenceHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldStorageReference, v))
}

// StorageReferenceIsNil applies the IsNil predicate on the "storage_reference" field.
func StorageReferenceIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldStorageReference))
}

// StorageReferenceNotNil applies the NotNil predicate on the "storage_reference" field.
func StorageReferenceNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldStorageReference))
}

// StorageReferenceEqualFold applies the EqualFold predicate on the "storage_reference" field.
func StorageReferenceEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldStorageReference, v))
}

// StorageReferenceContainsFold applies the ContainsFold predicate on the "storage_reference" field.
func StorageReferenceContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldStorageReference, v))
}

// OcrRawTextEQ applies the EQ predicate on the "ocr_raw_text" field.
func OcrRawTextEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOcrRawText, v))
}

// OcrRawTextNEQ applies the NEQ predicate on the "ocr_raw_text" field.
func OcrRawTextNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldOcrRawText, v))
}

// OcrRawTextIn applies the In predicate on the "ocr_raw_text" field.
func OcrRawTextIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldOcrRawText, vs...))
}

// OcrRawTextNotIn applies the NotIn predicate on the "ocr_raw_text" field.
func OcrRawTextNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldOcrRawText, vs...))
}

// OcrRawTextGT applies the GT predicate on the "ocr_raw_text" field.
func OcrRawTextGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldOcrRawText, v))
}

// OcrRawTextGTE applies the GTE predicate on the "ocr_raw_text" field.
func OcrRawTextGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldOcrRawText, v))
}

// OcrRawTextLT applies the LT predicate on the "ocr_raw_text" field.
func OcrRawTextLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldOcrRawText, v))
}

// OcrRawTextLTE applies the LTE predicate on the "ocr_raw_text" field.
func OcrRawTextLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldOcrRawText, v))
}

// OcrRawTextContains applies the Contains predicate on the "ocr_raw_text" field.
func OcrRawTextContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldOcrRawText, v))
}

// OcrRawTextHasPrefix applies the HasPrefix predicate on the "ocr_raw_text" field.
func OcrRawTextHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldOcrRawText, v))
}

// OcrRawTextHasSuffix applies the HasSuffix predicate on the "ocr_raw_text" field.
func OcrRawTextHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldOcrRawText, v))
}

// OcrRawTextIsNil applies the IsNil predicate on the "ocr_raw_text" field.
func OcrRawTextIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldOcrRawText))
}

// OcrRawTextNotNil applies the NotNil predicate on the "ocr_raw_text" field.
func OcrRawTextNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldOcrRawText))
}

// OcrRawTextEqualFold applies the EqualFold predicate on the "ocr_raw_text" field.
func OcrRawTextEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldOcrRawText, v))
}

// OcrRawTextContainsFold applies the ContainsFold predicate on the "ocr_raw_text" field.
func OcrRawTextContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldOcrRawText, v))
}

// StructuredFieldsIsNil applies the IsNil predicate on the "structured_fields" field.
func StructuredFieldsIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldStructuredFields))
}

// StructuredFieldsNotNil applies the NotNil predicate on the "structured_fields" field.
func StructuredFieldsNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldStructuredFields))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float32) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldConfidenceScore))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldStatus, v))
}

// IsVerifiedEQ applies the EQ predicate on the "is_verified" field.
func IsVerifiedEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldIsVerified, v))
}

// IsVerifiedNEQ applies the NEQ predicate on the "is_verified" field.
func IsVerifiedNEQ(v bool) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldIsVerified, v))
}

// ReceiptDateEQ applies the EQ predicate on the "receipt_date" field.
func ReceiptDateEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldReceiptDate, v))
}

// ReceiptDateNEQ applies the NEQ predicate on the "receipt_date" field.
func ReceiptDateNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldReceiptDate, v))
}

// ReceiptDateIn applies the In predicate on the "receipt_date" field.
func ReceiptDateIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldReceiptDate, vs...))
}

// ReceiptDateNotIn applies the NotIn predicate on the "receipt_date" field.
func ReceiptDateNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldReceiptDate, vs...))
}

// ReceiptDateGT applies the GT predicate on the "receipt_date" field.
func ReceiptDateGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldReceiptDate, v))
}

// ReceiptDateGTE applies the GTE predicate on the "receipt_date" field.
func ReceiptDateGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldReceiptDate, v))
}

// ReceiptDateLT applies the LT predicate on the "receipt_date" field.
func ReceiptDateLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldReceiptDate, v))
}

// ReceiptDateLTE applies the LTE predicate on the "receipt_date" field.
func ReceiptDateLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldReceiptDate, v))
}

// ReceiptDateIsNil applies the IsNil predicate on the "receipt_date" field.
func ReceiptDateIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldReceiptDate))
}

// ReceiptDateNotNil applies the NotNil predicate on the "receipt_date" field.
func ReceiptDateNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldReceiptDate))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameIsNil applies the IsNil predicate on the "vendor_name" field.
func VendorNameIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldVendorName))
}

// VendorNameNotNil applies the NotNil predicate on the "vendor_name" field.
func VendorNameNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldVendorName))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldVendorName, v))
}

// AmountTotalEQ applies the EQ predicate on the "amount_total" field.
func AmountTotalEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAmountTotal, v))
}

// AmountTotalNEQ applies the NEQ predicate on the "amount_total" field.
func AmountTotalNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldAmountTotal, v))
}

// AmountTotalIn applies the In predicate on the "amount_total" field.
func AmountTotalIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldAmountTotal, vs...))
}

// AmountTotalNotIn applies the NotIn predicate on the "amount_total" field.
func AmountTotalNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldAmountTotal, vs...))
}

// AmountTotalGT applies the GT predicate on the "amount_total" field.
func AmountTotalGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldAmountTotal, v))
}

// AmountTotalGTE applies the GTE predicate on the "amount_total" field.
func AmountTotalGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldAmountTotal, v))
}

// AmountTotalLT applies the LT predicate on the "amount_total" field.
func AmountTotalLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldAmountTotal, v))
}

// AmountTotalLTE applies the LTE predicate on the "amount_total" field.
func AmountTotalLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldAmountTotal, v))
}

// AmountTotalIsNil applies the IsNil predicate on the "amount_total" field.
func AmountTotalIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldAmountTotal))
}

// AmountTotalNotNil applies the NotNil predicate on the "amount_total" field.
func AmountTotalNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldAmountTotal))
}

// AmountSubtotalEQ applies the EQ predicate on the "amount_subtotal" field.
func AmountSubtotalEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAmountSubtotal, v))
}

// AmountSubtotalNEQ applies the NEQ predicate on the "amount_subtotal" field.
func AmountSubtotalNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldAmountSubtotal, v))
}

// AmountSubtotalIn applies the In predicate on the "amount_subtotal" field.
func AmountSubtotalIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldAmountSubtotal, vs...))
}

// AmountSubtotalNotIn applies the NotIn predicate on the "amount_subtotal" field.
func AmountSubtotalNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldAmountSubtotal, vs...))
}

// AmountSubtotalGT applies the GT predicate on the "amount_subtotal" field.
func AmountSubtotalGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldAmountSubtotal, v))
}

// AmountSubtotalGTE applies the GTE predicate on the "amount_subtotal" field.
func AmountSubtotalGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldAmountSubtotal, v))
}

// AmountSubtotalLT applies the LT predicate on the "amount_subtotal" field.
func AmountSubtotalLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldAmountSubtotal, v))
}

// AmountSubtotalLTE applies the LTE predicate on the "amount_subtotal" field.
func AmountSubtotalLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldAmountSubtotal, v))
}

// AmountSubtotalIsNil applies the IsNil predicate on the "amount_subtotal" field.
func AmountSubtotalIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldAmountSubtotal))
}

// AmountSubtotalNotNil applies the NotNil predicate on the "amount_subtotal" field.
func AmountSubtotalNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldAmountSubtotal))
}

// TaxAmountEQ applies the EQ predicate on the "tax_amount" field.
func TaxAmountEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTaxAmount, v))
}

// TaxAmountNEQ applies the NEQ predicate on the "tax_amount" field.
func TaxAmountNEQ(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTaxAmount, v))
}

// TaxAmountIn applies the In predicate on the "tax_amount" field.
func TaxAmountIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldTaxAmount, vs...))
}

// TaxAmountNotIn applies the NotIn predicate on the "tax_amount" field.
func TaxAmountNotIn(vs ...float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldTaxAmount, vs...))
}

// TaxAmountGT applies the GT predicate on the "tax_amount" field.
func TaxAmountGT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldTaxAmount, v))
}

// TaxAmountGTE applies the GTE predicate on the "tax_amount" field.
func TaxAmountGTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldTaxAmount, v))
}

// TaxAmountLT applies the LT predicate on the "tax_amount" field.
func TaxAmountLT(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldTaxAmount, v))
}

// TaxAmountLTE applies the LTE predicate on the "tax_amount" field.
func TaxAmountLTE(v float64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldTaxAmount, v))
}

// TaxAmountIsNil applies the IsNil predicate on the "tax_amount" field.
func TaxAmountIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldTaxAmount))
}

// TaxAmountNotNil applies the NotNil predicate on the "tax_amount" field.
func TaxAmountNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldTaxAmount))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeIsNil applies the IsNil predicate on the "currency_code" field.
func CurrencyCodeIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldCurrencyCode))
}

// CurrencyCodeNotNil applies the NotNil predicate on the "currency_code" field.
func CurrencyCodeNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldCurrencyCode))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// PaymentMethodGT applies the GT predicate on the "payment_method" field.
func PaymentMethodGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldPaymentMethod, v))
}

// PaymentMethodGTE applies the GTE predicate on the "payment_method" field.
func PaymentMethodGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldPaymentMethod, v))
}

// PaymentMethodLT applies the LT predicate on the "payment_method" field.
func PaymentMethodLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldPaymentMethod, v))
}

// PaymentMethodLTE applies the LTE predicate on the "payment_method" field.
func PaymentMethodLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldPaymentMethod, v))
}

// PaymentMethodContains applies the Contains predicate on the "payment_method" field.
func PaymentMethodContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldPaymentMethod, v))
}

// PaymentMethodHasPrefix applies the HasPrefix predicate on the "payment_method" field.
func PaymentMethodHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldPaymentMethod, v))
}

// PaymentMethodHasSuffix applies the HasSuffix predicate on the "payment_method" field.
func PaymentMethodHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldPaymentMethod, v))
}

// PaymentMethodIsNil applies the IsNil predicate on the "payment_method" field.
func PaymentMethodIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldPaymentMethod))
}

// PaymentMethodNotNil applies the NotNil predicate on the "payment_method" field.
func PaymentMethodNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldPaymentMethod))
}

// PaymentMethodEqualFold applies the EqualFold predicate on the "payment_method" field.
func PaymentMethodEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldPaymentMethod, v))
}

// PaymentMethodContainsFold applies the ContainsFold predicate on the "payment_method" field.
func PaymentMethodContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldPaymentMethod, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Receipt {
	return predicate.Receipt(sql.FieldContainsFold(FieldCategory, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldUpdatedAt, v))
}

// OcrCompletedAtEQ applies the EQ predicate on the "ocr_completed_at" field.
func OcrCompletedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOcrCompletedAt, v))
}

// OcrCompletedAtNEQ applies the NEQ predicate on the "ocr_completed_at" field.
func OcrCompletedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldOcrCompletedAt, v))
}

// OcrCompletedAtIn applies the In predicate on the "ocr_completed_at" field.
func OcrCompletedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldOcrCompletedAt, vs...))
}

// OcrCompletedAtNotIn applies the NotIn predicate on the "ocr_completed_at" field.
func OcrCompletedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldOcrCompletedAt, vs...))
}

// OcrCompletedAtGT applies the GT predicate on the "ocr_completed_at" field.
func OcrCompletedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldOcrCompletedAt, v))
}

// OcrCompletedAtGTE applies the GTE predicate on the "ocr_completed_at" field.
func OcrCompletedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldOcrCompletedAt, v))
}

// OcrCompletedAtLT applies the LT predicate on the "ocr_completed_at" field.
func OcrCompletedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldOcrCompletedAt, v))
}

// OcrCompletedAtLTE applies the LTE predicate on the "ocr_completed_at" field.
func OcrCompletedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldOcrCompletedAt, v))
}

// OcrCompletedAtIsNil applies the IsNil predicate on the "ocr_completed_at" field.
func OcrCompletedAtIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldOcrCompletedAt))
}

// OcrCompletedAtNotNil applies the NotNil predicate on the "ocr_completed_at" field.
func OcrCompletedAtNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldOcrCompletedAt))
}

// AiReviewedAtEQ applies the EQ predicate on the "ai_reviewed_at" field.
func AiReviewedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldAiReviewedAt, v))
}

// AiReviewedAtNEQ applies the NEQ predicate on the "ai_reviewed_at" field.
func AiReviewedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldAiReviewedAt, v))
}

// AiReviewedAtIn applies the In predicate on the "ai_reviewed_at" field.
func AiReviewedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldAiReviewedAt, vs...))
}

// AiReviewedAtNotIn applies the NotIn predicate on the "ai_reviewed_at" field.
func AiReviewedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldAiReviewedAt, vs...))
}

// AiReviewedAtGT applies the GT predicate on the "ai_reviewed_at" field.
func AiReviewedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldAiReviewedAt, v))
}

// AiReviewedAtGTE applies the GTE predicate on the "ai_reviewed_at" field.
func AiReviewedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldAiReviewedAt, v))
}

// AiReviewedAtLT applies the LT predicate on the "ai_reviewed_at" field.
func AiReviewedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldAiReviewedAt, v))
}

// AiReviewedAtLTE applies the LTE predicate on the "ai_reviewed_at" field.
func AiReviewedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldAiReviewedAt, v))
}

// AiReviewedAtIsNil applies the IsNil predicate on the "ai_reviewed_at" field.
func AiReviewedAtIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldAiReviewedAt))
}

// AiReviewedAtNotNil applies the NotNil predicate on the "ai_reviewed_at" field.
func AiReviewedAtNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldAiReviewedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.NotPredicates(p))
}
