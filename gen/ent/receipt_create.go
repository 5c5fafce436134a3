// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scouter-app/receipt-pipeline/gen/ent/receipt"
)

// ReceiptCreate is the builder for creating a Receipt entity.
type ReceiptCreate struct {
	config
	mutation *ReceiptMutation
	hooks    []Hook
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *ReceiptCreate) SetOwnerUserID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ReceiptCreate) SetSource(v string) *ReceiptCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableSource(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *ReceiptCreate) SetOriginalFilename(v string) *ReceiptCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetStorageReference sets the "storage_reference" field.
func (_c *ReceiptCreate) SetStorageReference(v string) *ReceiptCreate {
	_c.mutation.SetStorageReference(v)
	return _c
}

// SetNillableStorageReference sets the "storage_reference" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableStorageReference(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetStorageReference(*v)
	}
	return _c
}

// SetOcrRawText sets the "ocr_raw_text" field.
func (_c *ReceiptCreate) SetOcrRawText(v string) *ReceiptCreate {
	_c.mutation.SetOcrRawText(v)
	return _c
}

// SetNillableOcrRawText sets the "ocr_raw_text" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableOcrRawText(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetOcrRawText(*v)
	}
	return _c
}

// SetStructuredFields sets the "structured_fields" field.
func (_c *ReceiptCreate) SetStructuredFields(v json.RawMessage) *ReceiptCreate {
	_c.mutation.SetStructuredFields(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ReceiptCreate) SetConfidenceScore(v float32) *ReceiptCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableConfidenceScore(v *float32) *ReceiptCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReceiptCreate) SetStatus(v string) *ReceiptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableStatus(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsVerified sets the "is_verified" field.
func (_c *ReceiptCreate) SetIsVerified(v bool) *ReceiptCreate {
	_c.mutation.SetIsVerified(v)
	return _c
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableIsVerified(v *bool) *ReceiptCreate {
	if v != nil {
		_c.SetIsVerified(*v)
	}
	return _c
}

// SetReceiptDate sets the "receipt_date" field.
func (_c *ReceiptCreate) SetReceiptDate(v time.Time) *ReceiptCreate {
	_c.mutation.SetReceiptDate(v)
	return _c
}

// SetNillableReceiptDate sets the "receipt_date" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableReceiptDate(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetReceiptDate(*v)
	}
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *ReceiptCreate) SetVendorName(v string) *ReceiptCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableVendorName(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetVendorName(*v)
	}
	return _c
}

// SetAmountTotal sets the "amount_total" field.
func (_c *ReceiptCreate) SetAmountTotal(v float64) *ReceiptCreate {
	_c.mutation.SetAmountTotal(v)
	return _c
}

// SetNillableAmountTotal sets the "amount_total" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableAmountTotal(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetAmountTotal(*v)
	}
	return _c
}

// SetAmountSubtotal sets the "amount_subtotal" field.
func (_c *ReceiptCreate) SetAmountSubtotal(v float64) *ReceiptCreate {
	_c.mutation.SetAmountSubtotal(v)
	return _c
}

// SetNillableAmountSubtotal sets the "amount_subtotal" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableAmountSubtotal(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetAmountSubtotal(*v)
	}
	return _c
}

// SetTaxAmount sets the "tax_amount" field.
func (_c *ReceiptCreate) SetTaxAmount(v float64) *ReceiptCreate {
	_c.mutation.SetTaxAmount(v)
	return _c
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTaxAmount(v *float64) *ReceiptCreate {
	if v != nil {
		_c.SetTaxAmount(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *ReceiptCreate) SetCurrencyCode(v string) *ReceiptCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCurrencyCode(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *ReceiptCreate) SetPaymentMethod(v string) *ReceiptCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillablePaymentMethod(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ReceiptCreate) SetCategory(v string) *ReceiptCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCategory(v *string) *ReceiptCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptCreate) SetCreatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCreatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReceiptCreate) SetUpdatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableUpdatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOcrCompletedAt sets the "ocr_completed_at" field.
func (_c *ReceiptCreate) SetOcrCompletedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetOcrCompletedAt(v)
	return _c
}

// SetNillableOcrCompletedAt sets the "ocr_completed_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableOcrCompletedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetOcrCompletedAt(*v)
	}
	return _c
}

// SetAiReviewedAt sets the "ai_reviewed_at" field.
func (_c *ReceiptCreate) SetAiReviewedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetAiReviewedAt(v)
	return _c
}

// SetNillableAiReviewedAt sets the "ai_reviewed_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableAiReviewedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetAiReviewedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptCreate) SetID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReceiptMutation object of the builder.
func (_c *ReceiptCreate) Mutation() *ReceiptMutation {
	return _c.mutation
}

// Save creates the Receipt in the database.
func (_c *ReceiptCreate) Save(ctx context.Context) (*Receipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptCreate) SaveX(ctx context.Context) *Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := receipt.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := receipt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		v := receipt.DefaultIsVerified
		_c.mutation.SetIsVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := receipt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptCreate) check() error {
	if _, ok := _c.mutation.OwnerUserID(); !ok {
		return &ValidationError{Name: "owner_user_id", err: errors.New(`ent: missing required field "Receipt.owner_user_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Receipt.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := receipt.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Receipt.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "Receipt.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := receipt.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Receipt.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Receipt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := receipt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Receipt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		return &ValidationError{Name: "is_verified", err: errors.New(`ent: missing required field "Receipt.is_verified"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := receipt.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Receipt.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receipt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Receipt.updated_at"`)}
	}
	return nil
}

func (_c *ReceiptCreate) sqlSave(ctx context.Context) (*Receipt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReceiptCreate) createSpec() (*Receipt, *sqlgraph.CreateSpec) {
	var (
		_node = &Receipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receipt.Table, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerUserID(); ok {
		_spec.SetField(receipt.FieldOwnerUserID, field.TypeUUID, value)
		_node.OwnerUserID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(receipt.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(receipt.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.StorageReference(); ok {
		_spec.SetField(receipt.FieldStorageReference, field.TypeString, value)
		_node.StorageReference = &value
	}
	if value, ok := _c.mutation.OcrRawText(); ok {
		_spec.SetField(receipt.FieldOcrRawText, field.TypeString, value)
		_node.OcrRawText = &value
	}
	if value, ok := _c.mutation.StructuredFields(); ok {
		_spec.SetField(receipt.FieldStructuredFields, field.TypeJSON, value)
		_node.StructuredFields = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(receipt.FieldConfidenceScore, field.TypeFloat32, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(receipt.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsVerified(); ok {
		_spec.SetField(receipt.FieldIsVerified, field.TypeBool, value)
		_node.IsVerified = value
	}
	if value, ok := _c.mutation.ReceiptDate(); ok {
		_spec.SetField(receipt.FieldReceiptDate, field.TypeTime, value)
		_node.ReceiptDate = &value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(receipt.FieldVendorName, field.TypeString, value)
		_node.VendorName = &value
	}
	if value, ok := _c.mutation.AmountTotal(); ok {
		_spec.SetField(receipt.FieldAmountTotal, field.TypeFloat64, value)
		_node.AmountTotal = &value
	}
	if value, ok := _c.mutation.AmountSubtotal(); ok {
		_spec.SetField(receipt.FieldAmountSubtotal, field.TypeFloat64, value)
		_node.AmountSubtotal = &value
	}
	if value, ok := _c.mutation.TaxAmount(); ok {
		_spec.SetField(receipt.FieldTaxAmount, field.TypeFloat64, value)
		_node.TaxAmount = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(receipt.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = &value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(receipt.FieldPaymentMethod, field.TypeString, value)
		_node.PaymentMethod = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(receipt.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OcrCompletedAt(); ok {
		_spec.SetField(receipt.FieldOcrCompletedAt, field.TypeTime, value)
		_node.OcrCompletedAt = &value
	}
	if value, ok := _c.mutation.AiReviewedAt(); ok {
		_spec.SetField(receipt.FieldAiReviewedAt, field.TypeTime, value)
		_node.AiReviewedAt = &value
	}
	return _node, _spec
}

// ReceiptCreateBulk is the builder for creating many Receipt entities in bulk.
type ReceiptCreateBulk struct {
	config
	err      error
	builders []*ReceiptCreate
}

// Save creates the Receipt entities in the database.
func (_c *ReceiptCreateBulk) Save(ctx context.Context) ([]*Receipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReceiptCreateBulk) SaveX(ctx context.Context) []*Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
