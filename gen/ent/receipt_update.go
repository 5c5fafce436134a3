// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/scouter-app/receipt-pipeline/gen/ent/predicate"
	"github.com/scouter-app/receipt-pipeline/gen/ent/receipt"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *ReceiptUpdate) SetSource(v string) *ReceiptUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableSource(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ReceiptUpdate) SetOriginalFilename(v string) *ReceiptUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableOriginalFilename(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStorageReference sets the "storage_reference" field.
func (_u *ReceiptUpdate) SetStorageReference(v string) *ReceiptUpdate {
	_u.mutation.SetStorageReference(v)
	return _u
}

// SetNillableStorageReference sets the "storage_reference" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableStorageReference(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetStorageReference(*v)
	}
	return _u
}

// ClearStorageReference clears the value of the "storage_reference" field.
func (_u *ReceiptUpdate) ClearStorageReference() *ReceiptUpdate {
	_u.mutation.ClearStorageReference()
	return _u
}

// SetOcrRawText sets the "ocr_raw_text" field.
func (_u *ReceiptUpdate) SetOcrRawText(v string) *ReceiptUpdate {
	_u.mutation.SetOcrRawText(v)
	return _u
}

// SetNillableOcrRawText sets the "ocr_raw_text" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableOcrRawText(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetOcrRawText(*v)
	}
	return _u
}

// ClearOcrRawText clears the value of the "ocr_raw_text" field.
func (_u *ReceiptUpdate) ClearOcrRawText() *ReceiptUpdate {
	_u.mutation.ClearOcrRawText()
	return _u
}

// SetStructuredFields sets the "structured_fields" field.
func (_u *ReceiptUpdate) SetStructuredFields(v json.RawMessage) *ReceiptUpdate {
	_u.mutation.SetStructuredFields(v)
	return _u
}

// AppendStructuredFields appends value to the "structured_fields" field.
func (_u *ReceiptUpdate) AppendStructuredFields(v json.RawMessage) *ReceiptUpdate {
	_u.mutation.AppendStructuredFields(v)
	return _u
}

// ClearStructuredFields clears the value of the "structured_fields" field.
func (_u *ReceiptUpdate) ClearStructuredFields() *ReceiptUpdate {
	_u.mutation.ClearStructuredFields()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ReceiptUpdate) SetConfidenceScore(v float32) *ReceiptUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableConfidenceScore(v *float32) *ReceiptUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ReceiptUpdate) AddConfidenceScore(v float32) *ReceiptUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ReceiptUpdate) ClearConfidenceScore() *ReceiptUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReceiptUpdate) SetStatus(v string) *ReceiptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableStatus(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *ReceiptUpdate) SetIsVerified(v bool) *ReceiptUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableIsVerified(v *bool) *ReceiptUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetReceiptDate sets the "receipt_date" field.
func (_u *ReceiptUpdate) SetReceiptDate(v time.Time) *ReceiptUpdate {
	_u.mutation.SetReceiptDate(v)
	return _u
}

// SetNillableReceiptDate sets the "receipt_date" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableReceiptDate(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetReceiptDate(*v)
	}
	return _u
}

// ClearReceiptDate clears the value of the "receipt_date" field.
func (_u *ReceiptUpdate) ClearReceiptDate() *ReceiptUpdate {
	_u.mutation.ClearReceiptDate()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ReceiptUpdate) SetVendorName(v string) *ReceiptUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableVendorName(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ReceiptUpdate) ClearVendorName() *ReceiptUpdate {
	_u.mutation.ClearVendorName()
	return _u
}

// SetAmountTotal sets the "amount_total" field.
func (_u *ReceiptUpdate) SetAmountTotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetAmountTotal()
	_u.mutation.SetAmountTotal(v)
	return _u
}

// SetNillableAmountTotal sets the "amount_total" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableAmountTotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetAmountTotal(*v)
	}
	return _u
}

// AddAmountTotal adds value to the "amount_total" field.
func (_u *ReceiptUpdate) AddAmountTotal(v float64) *ReceiptUpdate {
	_u.mutation.AddAmountTotal(v)
	return _u
}

// ClearAmountTotal clears the value of the "amount_total" field.
func (_u *ReceiptUpdate) ClearAmountTotal() *ReceiptUpdate {
	_u.mutation.ClearAmountTotal()
	return _u
}

// SetAmountSubtotal sets the "amount_subtotal" field.
func (_u *ReceiptUpdate) SetAmountSubtotal(v float64) *ReceiptUpdate {
	_u.mutation.ResetAmountSubtotal()
	_u.mutation.SetAmountSubtotal(v)
	return _u
}

// SetNillableAmountSubtotal sets the "amount_subtotal" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableAmountSubtotal(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetAmountSubtotal(*v)
	}
	return _u
}

// AddAmountSubtotal adds value to the "amount_subtotal" field.
func (_u *ReceiptUpdate) AddAmountSubtotal(v float64) *ReceiptUpdate {
	_u.mutation.AddAmountSubtotal(v)
	return _u
}

// ClearAmountSubtotal clears the value of the "amount_subtotal" field.
func (_u *ReceiptUpdate) ClearAmountSubtotal() *ReceiptUpdate {
	_u.mutation.ClearAmountSubtotal()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ReceiptUpdate) SetTaxAmount(v float64) *ReceiptUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTaxAmount(v *float64) *ReceiptUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *ReceiptUpdate) AddTaxAmount(v float64) *ReceiptUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ReceiptUpdate) ClearTaxAmount() *ReceiptUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ReceiptUpdate) SetCurrencyCode(v string) *ReceiptUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCurrencyCode(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *ReceiptUpdate) ClearCurrencyCode() *ReceiptUpdate {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ReceiptUpdate) SetPaymentMethod(v string) *ReceiptUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillablePaymentMethod(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *ReceiptUpdate) ClearPaymentMethod() *ReceiptUpdate {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReceiptUpdate) SetCategory(v string) *ReceiptUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCategory(v *string) *ReceiptUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ReceiptUpdate) ClearCategory() *ReceiptUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdate) SetUpdatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOcrCompletedAt sets the "ocr_completed_at" field.
func (_u *ReceiptUpdate) SetOcrCompletedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetOcrCompletedAt(v)
	return _u
}

// SetNillableOcrCompletedAt sets the "ocr_completed_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableOcrCompletedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetOcrCompletedAt(*v)
	}
	return _u
}

// ClearOcrCompletedAt clears the value of the "ocr_completed_at" field.
func (_u *ReceiptUpdate) ClearOcrCompletedAt() *ReceiptUpdate {
	_u.mutation.ClearOcrCompletedAt()
	return _u
}

// SetAiReviewedAt sets the "ai_reviewed_at" field.
func (_u *ReceiptUpdate) SetAiReviewedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetAiReviewedAt(v)
	return _u
}

// SetNillableAiReviewedAt sets the "ai_reviewed_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableAiReviewedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetAiReviewedAt(*v)
	}
	return _u
}

// ClearAiReviewedAt clears the value of the "ai_reviewed_at" field.
func (_u *ReceiptUpdate) ClearAiReviewedAt() *ReceiptUpdate {
	_u.mutation.ClearAiReviewedAt()
	return _u
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := receipt.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Receipt.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := receipt.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Receipt.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := receipt.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(receipt.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(receipt.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageReference(); ok {
		_spec.SetField(receipt.FieldStorageReference, field.TypeString, value)
	}
	if _u.mutation.StorageReferenceCleared() {
		_spec.ClearField(receipt.FieldStorageReference, field.TypeString)
	}
	if value, ok := _u.mutation.OcrRawText(); ok {
		_spec.SetField(receipt.FieldOcrRawText, field.TypeString, value)
	}
	if _u.mutation.OcrRawTextCleared() {
		_spec.ClearField(receipt.FieldOcrRawText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredFields(); ok {
		_spec.SetField(receipt.FieldStructuredFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, receipt.FieldStructuredFields, value)
		})
	}
	if _u.mutation.StructuredFieldsCleared() {
		_spec.ClearField(receipt.FieldStructuredFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(receipt.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(receipt.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(receipt.FieldConfidenceScore, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(receipt.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReceiptDate(); ok {
		_spec.SetField(receipt.FieldReceiptDate, field.TypeTime, value)
	}
	if _u.mutation.ReceiptDateCleared() {
		_spec.ClearField(receipt.FieldReceiptDate, field.TypeTime)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(receipt.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(receipt.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.AmountTotal(); ok {
		_spec.SetField(receipt.FieldAmountTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountTotal(); ok {
		_spec.AddField(receipt.FieldAmountTotal, field.TypeFloat64, value)
	}
	if _u.mutation.AmountTotalCleared() {
		_spec.ClearField(receipt.FieldAmountTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AmountSubtotal(); ok {
		_spec.SetField(receipt.FieldAmountSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountSubtotal(); ok {
		_spec.AddField(receipt.FieldAmountSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.AmountSubtotalCleared() {
		_spec.ClearField(receipt.FieldAmountSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(receipt.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(receipt.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(receipt.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(receipt.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(receipt.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(receipt.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OcrCompletedAt(); ok {
		_spec.SetField(receipt.FieldOcrCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrCompletedAtCleared() {
		_spec.ClearField(receipt.FieldOcrCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AiReviewedAt(); ok {
		_spec.SetField(receipt.FieldAiReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.AiReviewedAtCleared() {
		_spec.ClearField(receipt.FieldAiReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetSource sets the "source" field.
func (_u *ReceiptUpdateOne) SetSource(v string) *ReceiptUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableSource(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ReceiptUpdateOne) SetOriginalFilename(v string) *ReceiptUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableOriginalFilename(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStorageReference sets the "storage_reference" field.
func (_u *ReceiptUpdateOne) SetStorageReference(v string) *ReceiptUpdateOne {
	_u.mutation.SetStorageReference(v)
	return _u
}

// SetNillableStorageReference sets the "storage_reference" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableStorageReference(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetStorageReference(*v)
	}
	return _u
}

// ClearStorageReference clears the value of the "storage_reference" field.
func (_u *ReceiptUpdateOne) ClearStorageReference() *ReceiptUpdateOne {
	_u.mutation.ClearStorageReference()
	return _u
}

// SetOcrRawText sets the "ocr_raw_text" field.
func (_u *ReceiptUpdateOne) SetOcrRawText(v string) *ReceiptUpdateOne {
	_u.mutation.SetOcrRawText(v)
	return _u
}

// SetNillableOcrRawText sets the "ocr_raw_text" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableOcrRawText(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetOcrRawText(*v)
	}
	return _u
}

// ClearOcrRawText clears the value of the "ocr_raw_text" field.
func (_u *ReceiptUpdateOne) ClearOcrRawText() *ReceiptUpdateOne {
	_u.mutation.ClearOcrRawText()
	return _u
}

// SetStructuredFields sets the "structured_fields" field.
func (_u *ReceiptUpdateOne) SetStructuredFields(v json.RawMessage) *ReceiptUpdateOne {
	_u.mutation.SetStructuredFields(v)
	return _u
}

// AppendStructuredFields appends value to the "structured_fields" field.
func (_u *ReceiptUpdateOne) AppendStructuredFields(v json.RawMessage) *ReceiptUpdateOne {
	_u.mutation.AppendStructuredFields(v)
	return _u
}

// ClearStructuredFields clears the value of the "structured_fields" field.
func (_u *ReceiptUpdateOne) ClearStructuredFields() *ReceiptUpdateOne {
	_u.mutation.ClearStructuredFields()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ReceiptUpdateOne) SetConfidenceScore(v float32) *ReceiptUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableConfidenceScore(v *float32) *ReceiptUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ReceiptUpdateOne) AddConfidenceScore(v float32) *ReceiptUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *ReceiptUpdateOne) ClearConfidenceScore() *ReceiptUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReceiptUpdateOne) SetStatus(v string) *ReceiptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableStatus(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *ReceiptUpdateOne) SetIsVerified(v bool) *ReceiptUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableIsVerified(v *bool) *ReceiptUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetReceiptDate sets the "receipt_date" field.
func (_u *ReceiptUpdateOne) SetReceiptDate(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetReceiptDate(v)
	return _u
}

// SetNillableReceiptDate sets the "receipt_date" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableReceiptDate(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetReceiptDate(*v)
	}
	return _u
}

// ClearReceiptDate clears the value of the "receipt_date" field.
func (_u *ReceiptUpdateOne) ClearReceiptDate() *ReceiptUpdateOne {
	_u.mutation.ClearReceiptDate()
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ReceiptUpdateOne) SetVendorName(v string) *ReceiptUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableVendorName(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// ClearVendorName clears the value of the "vendor_name" field.
func (_u *ReceiptUpdateOne) ClearVendorName() *ReceiptUpdateOne {
	_u.mutation.ClearVendorName()
	return _u
}

// SetAmountTotal sets the "amount_total" field.
func (_u *ReceiptUpdateOne) SetAmountTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetAmountTotal()
	_u.mutation.SetAmountTotal(v)
	return _u
}

// SetNillableAmountTotal sets the "amount_total" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableAmountTotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetAmountTotal(*v)
	}
	return _u
}

// AddAmountTotal adds value to the "amount_total" field.
func (_u *ReceiptUpdateOne) AddAmountTotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddAmountTotal(v)
	return _u
}

// ClearAmountTotal clears the value of the "amount_total" field.
func (_u *ReceiptUpdateOne) ClearAmountTotal() *ReceiptUpdateOne {
	_u.mutation.ClearAmountTotal()
	return _u
}

// SetAmountSubtotal sets the "amount_subtotal" field.
func (_u *ReceiptUpdateOne) SetAmountSubtotal(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetAmountSubtotal()
	_u.mutation.SetAmountSubtotal(v)
	return _u
}

// SetNillableAmountSubtotal sets the "amount_subtotal" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableAmountSubtotal(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetAmountSubtotal(*v)
	}
	return _u
}

// AddAmountSubtotal adds value to the "amount_subtotal" field.
func (_u *ReceiptUpdateOne) AddAmountSubtotal(v float64) *ReceiptUpdateOne {
	_u.mutation.AddAmountSubtotal(v)
	return _u
}

// ClearAmountSubtotal clears the value of the "amount_subtotal" field.
func (_u *ReceiptUpdateOne) ClearAmountSubtotal() *ReceiptUpdateOne {
	_u.mutation.ClearAmountSubtotal()
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *ReceiptUpdateOne) SetTaxAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTaxAmount(v *float64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *ReceiptUpdateOne) AddTaxAmount(v float64) *ReceiptUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *ReceiptUpdateOne) ClearTaxAmount() *ReceiptUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ReceiptUpdateOne) SetCurrencyCode(v string) *ReceiptUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCurrencyCode(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (_u *ReceiptUpdateOne) ClearCurrencyCode() *ReceiptUpdateOne {
	_u.mutation.ClearCurrencyCode()
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *ReceiptUpdateOne) SetPaymentMethod(v string) *ReceiptUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillablePaymentMethod(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (_u *ReceiptUpdateOne) ClearPaymentMethod() *ReceiptUpdateOne {
	_u.mutation.ClearPaymentMethod()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ReceiptUpdateOne) SetCategory(v string) *ReceiptUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCategory(v *string) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ReceiptUpdateOne) ClearCategory() *ReceiptUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdateOne) SetUpdatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOcrCompletedAt sets the "ocr_completed_at" field.
func (_u *ReceiptUpdateOne) SetOcrCompletedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetOcrCompletedAt(v)
	return _u
}

// SetNillableOcrCompletedAt sets the "ocr_completed_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableOcrCompletedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetOcrCompletedAt(*v)
	}
	return _u
}

// ClearOcrCompletedAt clears the value of the "ocr_completed_at" field.
func (_u *ReceiptUpdateOne) ClearOcrCompletedAt() *ReceiptUpdateOne {
	_u.mutation.ClearOcrCompletedAt()
	return _u
}

// SetAiReviewedAt sets the "ai_reviewed_at" field.
func (_u *ReceiptUpdateOne) SetAiReviewedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetAiReviewedAt(v)
	return _u
}

// SetNillableAiReviewedAt sets the "ai_reviewed_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableAiReviewedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetAiReviewedAt(*v)
	}
	return _u
}

// ClearAiReviewedAt clears the value of the "ai_reviewed_at" field.
func (_u *ReceiptUpdateOne) ClearAiReviewedAt() *ReceiptUpdateOne {
	_u.mutation.ClearAiReviewedAt()
	return _u
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := receipt.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Receipt.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := receipt.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Receipt.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := receipt.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency_code": %w`, err)}
		}
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(receipt.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(receipt.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageReference(); ok {
		_spec.SetField(receipt.FieldStorageReference, field.TypeString, value)
	}
	if _u.mutation.StorageReferenceCleared() {
		_spec.ClearField(receipt.FieldStorageReference, field.TypeString)
	}
	if value, ok := _u.mutation.OcrRawText(); ok {
		_spec.SetField(receipt.FieldOcrRawText, field.TypeString, value)
	}
	if _u.mutation.OcrRawTextCleared() {
		_spec.ClearField(receipt.FieldOcrRawText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredFields(); ok {
		_spec.SetField(receipt.FieldStructuredFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, receipt.FieldStructuredFields, value)
		})
	}
	if _u.mutation.StructuredFieldsCleared() {
		_spec.ClearField(receipt.FieldStructuredFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(receipt.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(receipt.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(receipt.FieldConfidenceScore, field.TypeFloat32)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(receipt.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReceiptDate(); ok {
		_spec.SetField(receipt.FieldReceiptDate, field.TypeTime, value)
	}
	if _u.mutation.ReceiptDateCleared() {
		_spec.ClearField(receipt.FieldReceiptDate, field.TypeTime)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(receipt.FieldVendorName, field.TypeString, value)
	}
	if _u.mutation.VendorNameCleared() {
		_spec.ClearField(receipt.FieldVendorName, field.TypeString)
	}
	if value, ok := _u.mutation.AmountTotal(); ok {
		_spec.SetField(receipt.FieldAmountTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountTotal(); ok {
		_spec.AddField(receipt.FieldAmountTotal, field.TypeFloat64, value)
	}
	if _u.mutation.AmountTotalCleared() {
		_spec.ClearField(receipt.FieldAmountTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AmountSubtotal(); ok {
		_spec.SetField(receipt.FieldAmountSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountSubtotal(); ok {
		_spec.AddField(receipt.FieldAmountSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.AmountSubtotalCleared() {
		_spec.ClearField(receipt.FieldAmountSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(receipt.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(receipt.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(receipt.FieldCurrencyCode, field.TypeString, value)
	}
	if _u.mutation.CurrencyCodeCleared() {
		_spec.ClearField(receipt.FieldCurrencyCode, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
	}
	if _u.mutation.PaymentMethodCleared() {
		_spec.ClearField(receipt.FieldPaymentMethod, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(receipt.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(receipt.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OcrCompletedAt(); ok {
		_spec.SetField(receipt.FieldOcrCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrCompletedAtCleared() {
		_spec.ClearField(receipt.FieldOcrCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AiReviewedAt(); ok {
		_spec.SetField(receipt.FieldAiReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.AiReviewedAtCleared() {
		_spec.ClearField(receipt.FieldAiReviewedAt, field.TypeTime)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
