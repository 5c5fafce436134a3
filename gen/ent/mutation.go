// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scouter-app/receipt-pipeline/gen/ent/predicate"
	"github.com/scouter-app/receipt-pipeline/gen/ent/receipt"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeReceipt = "Receipt"
)

// ReceiptMutation represents an operation that mutates the Receipt nodes in the graph.
type ReceiptMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	owner_user_id           *uuid.UUID
	source                  *string
	original_filename       *string
	storage_reference       *string
	ocr_raw_text            *string
	structured_fields       *json.RawMessage
	appendstructured_fields json.RawMessage
	confidence_score        *float32
	addconfidence_score     *float32
	status                  *string
	is_verified             *bool
	receipt_date            *time.Time
	vendor_name             *string
	amount_total            *float64
	addamount_total         *float64
	amount_subtotal         *float64
	addamount_subtotal      *float64
	tax_amount              *float64
	addtax_amount           *float64
	currency_code           *string
	payment_method          *string
	category                *string
	created_at              *time.Time
	updated_at              *time.Time
	ocr_completed_at        *time.Time
	ai_reviewed_at          *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Receipt, error)
	predicates              []predicate.Receipt
}

var _ ent.Mutation = (*ReceiptMutation)(nil)

// receiptOption allows management of the mutation configuration using functional options.
type receiptOption func(*ReceiptMutation)

// newReceiptMutation creates new mutation for the Receipt entity.
func newReceiptMutation(c config, op Op, opts ...receiptOption) *ReceiptMutation {
	m := &ReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypeReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptID sets the ID field of the mutation.
func withReceiptID(id uuid.UUID) receiptOption {
	return func(m *ReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *Receipt
		)
		m.oldValue = func(ctx context.Context) (*Receipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Receipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceipt sets the old Receipt of the mutation.
func withReceipt(node *Receipt) receiptOption {
	return func(m *ReceiptMutation) {
		m.oldValue = func(context.Context) (*Receipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Receipt entities.
func (m *ReceiptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Receipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *ReceiptMutation) SetOwnerUserID(u uuid.UUID) {
	m.owner_user_id = &u
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *ReceiptMutation) OwnerUserID() (r uuid.UUID, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOwnerUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *ReceiptMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
}

// SetSource sets the "source" field.
func (m *ReceiptMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ReceiptMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ReceiptMutation) ResetSource() {
	m.source = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *ReceiptMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *ReceiptMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *ReceiptMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetStorageReference sets the "storage_reference" field.
func (m *ReceiptMutation) SetStorageReference(s string) {
	m.storage_reference = &s
}

// StorageReference returns the value of the "storage_reference" field in the mutation.
func (m *ReceiptMutation) StorageReference() (r string, exists bool) {
	v := m.storage_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageReference returns the old "storage_reference" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldStorageReference(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageReference: %w", err)
	}
	return oldValue.StorageReference, nil
}

// ClearStorageReference clears the value of the "storage_reference" field.
func (m *ReceiptMutation) ClearStorageReference() {
	m.storage_reference = nil
	m.clearedFields[receipt.FieldStorageReference] = struct{}{}
}

// StorageReferenceCleared returns if the "storage_reference" field was cleared in this mutation.
func (m *ReceiptMutation) StorageReferenceCleared() bool {
	_, ok := m.clearedFields[receipt.FieldStorageReference]
	return ok
}

// ResetStorageReference resets all changes to the "storage_reference" field.
func (m *ReceiptMutation) ResetStorageReference() {
	m.storage_reference = nil
	delete(m.clearedFields, receipt.FieldStorageReference)
}

// SetOcrRawText sets the "ocr_raw_text" field.
func (m *ReceiptMutation) SetOcrRawText(s string) {
	m.ocr_raw_text = &s
}

// OcrRawText returns the value of the "ocr_raw_text" field in the mutation.
func (m *ReceiptMutation) OcrRawText() (r string, exists bool) {
	v := m.ocr_raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrRawText returns the old "ocr_raw_text" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOcrRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrRawText: %w", err)
	}
	return oldValue.OcrRawText, nil
}

// ClearOcrRawText clears the value of the "ocr_raw_text" field.
func (m *ReceiptMutation) ClearOcrRawText() {
	m.ocr_raw_text = nil
	m.clearedFields[receipt.FieldOcrRawText] = struct{}{}
}

// OcrRawTextCleared returns if the "ocr_raw_text" field was cleared in this mutation.
func (m *ReceiptMutation) OcrRawTextCleared() bool {
	_, ok := m.clearedFields[receipt.FieldOcrRawText]
	return ok
}

// ResetOcrRawText resets all changes to the "ocr_raw_text" field.
func (m *ReceiptMutation) ResetOcrRawText() {
	m.ocr_raw_text = nil
	delete(m.clearedFields, receipt.FieldOcrRawText)
}

// SetStructuredFields sets the "structured_fields" field.
func (m *ReceiptMutation) SetStructuredFields(jm json.RawMessage) {
	m.structured_fields = &jm
	m.appendstructured_fields = nil
}

// StructuredFields returns the value of the "structured_fields" field in the mutation.
func (m *ReceiptMutation) StructuredFields() (r json.RawMessage, exists bool) {
	v := m.structured_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredFields returns the old "structured_fields" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldStructuredFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredFields: %w", err)
	}
	return oldValue.StructuredFields, nil
}

// AppendStructuredFields adds jm to the "structured_fields" field.
func (m *ReceiptMutation) AppendStructuredFields(jm json.RawMessage) {
	m.appendstructured_fields = append(m.appendstructured_fields, jm...)
}

// AppendedStructuredFields returns the list of values that were appended to the "structured_fields" field in this mutation.
func (m *ReceiptMutation) AppendedStructuredFields() (json.RawMessage, bool) {
	if len(m.appendstructured_fields) == 0 {
		return nil, false
	}
	return m.appendstructured_fields, true
}

// ClearStructuredFields clears the value of the "structured_fields" field.
func (m *ReceiptMutation) ClearStructuredFields() {
	m.structured_fields = nil
	m.appendstructured_fields = nil
	m.clearedFields[receipt.FieldStructuredFields] = struct{}{}
}

// StructuredFieldsCleared returns if the "structured_fields" field was cleared in this mutation.
func (m *ReceiptMutation) StructuredFieldsCleared() bool {
	_, ok := m.clearedFields[receipt.FieldStructuredFields]
	return ok
}

// ResetStructuredFields resets all changes to the "structured_fields" field.
func (m *ReceiptMutation) ResetStructuredFields() {
	m.structured_fields = nil
	m.appendstructured_fields = nil
	delete(m.clearedFields, receipt.FieldStructuredFields)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ReceiptMutation) SetConfidenceScore(f float32) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ReceiptMutation) ConfidenceScore() (r float32, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldConfidenceScore(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ReceiptMutation) AddConfidenceScore(f float32) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ReceiptMutation) AddedConfidenceScore() (r float32, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *ReceiptMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[receipt.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *ReceiptMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[receipt.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ReceiptMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, receipt.FieldConfidenceScore)
}

// SetStatus sets the "status" field.
func (m *ReceiptMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReceiptMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReceiptMutation) ResetStatus() {
	m.status = nil
}

// SetIsVerified sets the "is_verified" field.
func (m *ReceiptMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *ReceiptMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *ReceiptMutation) ResetIsVerified() {
	m.is_verified = nil
}

// SetReceiptDate sets the "receipt_date" field.
func (m *ReceiptMutation) SetReceiptDate(t time.Time) {
	m.receipt_date = &t
}

// ReceiptDate returns the value of the "receipt_date" field in the mutation.
func (m *ReceiptMutation) ReceiptDate() (r time.Time, exists bool) {
	v := m.receipt_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptDate returns the old "receipt_date" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldReceiptDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptDate: %w", err)
	}
	return oldValue.ReceiptDate, nil
}

// ClearReceiptDate clears the value of the "receipt_date" field.
func (m *ReceiptMutation) ClearReceiptDate() {
	m.receipt_date = nil
	m.clearedFields[receipt.FieldReceiptDate] = struct{}{}
}

// ReceiptDateCleared returns if the "receipt_date" field was cleared in this mutation.
func (m *ReceiptMutation) ReceiptDateCleared() bool {
	_, ok := m.clearedFields[receipt.FieldReceiptDate]
	return ok
}

// ResetReceiptDate resets all changes to the "receipt_date" field.
func (m *ReceiptMutation) ResetReceiptDate() {
	m.receipt_date = nil
	delete(m.clearedFields, receipt.FieldReceiptDate)
}

// SetVendorName sets the "vendor_name" field.
func (m *ReceiptMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *ReceiptMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldVendorName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ClearVendorName clears the value of the "vendor_name" field.
func (m *ReceiptMutation) ClearVendorName() {
	m.vendor_name = nil
	m.clearedFields[receipt.FieldVendorName] = struct{}{}
}

// VendorNameCleared returns if the "vendor_name" field was cleared in this mutation.
func (m *ReceiptMutation) VendorNameCleared() bool {
	_, ok := m.clearedFields[receipt.FieldVendorName]
	return ok
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *ReceiptMutation) ResetVendorName() {
	m.vendor_name = nil
	delete(m.clearedFields, receipt.FieldVendorName)
}

// SetAmountTotal sets the "amount_total" field.
func (m *ReceiptMutation) SetAmountTotal(f float64) {
	m.amount_total = &f
	m.addamount_total = nil
}

// AmountTotal returns the value of the "amount_total" field in the mutation.
func (m *ReceiptMutation) AmountTotal() (r float64, exists bool) {
	v := m.amount_total
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountTotal returns the old "amount_total" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldAmountTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountTotal: %w", err)
	}
	return oldValue.AmountTotal, nil
}

// AddAmountTotal adds f to the "amount_total" field.
func (m *ReceiptMutation) AddAmountTotal(f float64) {
	if m.addamount_total != nil {
		*m.addamount_total += f
	} else {
		m.addamount_total = &f
	}
}

// AddedAmountTotal returns the value that was added to the "amount_total" field in this mutation.
func (m *ReceiptMutation) AddedAmountTotal() (r float64, exists bool) {
	v := m.addamount_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmountTotal clears the value of the "amount_total" field.
func (m *ReceiptMutation) ClearAmountTotal() {
	m.amount_total = nil
	m.addamount_total = nil
	m.clearedFields[receipt.FieldAmountTotal] = struct{}{}
}

// AmountTotalCleared returns if the "amount_total" field was cleared in this mutation.
func (m *ReceiptMutation) AmountTotalCleared() bool {
	_, ok := m.clearedFields[receipt.FieldAmountTotal]
	return ok
}

// ResetAmountTotal resets all changes to the "amount_total" field.
func (m *ReceiptMutation) ResetAmountTotal() {
	m.amount_total = nil
	m.addamount_total = nil
	delete(m.clearedFields, receipt.FieldAmountTotal)
}

// SetAmountSubtotal sets the "amount_subtotal" field.
func (m *ReceiptMutation) SetAmountSubtotal(f float64) {
	m.amount_subtotal = &f
	m.addamount_subtotal = nil
}

// AmountSubtotal returns the value of the "amount_subtotal" field in the mutation.
func (m *ReceiptMutation) AmountSubtotal() (r float64, exists bool) {
	v := m.amount_subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountSubtotal returns the old "amount_subtotal" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldAmountSubtotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountSubtotal: %w", err)
	}
	return oldValue.AmountSubtotal, nil
}

// AddAmountSubtotal adds f to the "amount_subtotal" field.
func (m *ReceiptMutation) AddAmountSubtotal(f float64) {
	if m.addamount_subtotal != nil {
		*m.addamount_subtotal += f
	} else {
		m.addamount_subtotal = &f
	}
}

// AddedAmountSubtotal returns the value that was added to the "amount_subtotal" field in this mutation.
func (m *ReceiptMutation) AddedAmountSubtotal() (r float64, exists bool) {
	v := m.addamount_subtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmountSubtotal clears the value of the "amount_subtotal" field.
func (m *ReceiptMutation) ClearAmountSubtotal() {
	m.amount_subtotal = nil
	m.addamount_subtotal = nil
	m.clearedFields[receipt.FieldAmountSubtotal] = struct{}{}
}

// AmountSubtotalCleared returns if the "amount_subtotal" field was cleared in this mutation.
func (m *ReceiptMutation) AmountSubtotalCleared() bool {
	_, ok := m.clearedFields[receipt.FieldAmountSubtotal]
	return ok
}

// ResetAmountSubtotal resets all changes to the "amount_subtotal" field.
func (m *ReceiptMutation) ResetAmountSubtotal() {
	m.amount_subtotal = nil
	m.addamount_subtotal = nil
	delete(m.clearedFields, receipt.FieldAmountSubtotal)
}

// SetTaxAmount sets the "tax_amount" field.
func (m *ReceiptMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *ReceiptMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *ReceiptMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *ReceiptMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *ReceiptMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[receipt.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *ReceiptMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *ReceiptMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, receipt.FieldTaxAmount)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *ReceiptMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *ReceiptMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCurrencyCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ClearCurrencyCode clears the value of the "currency_code" field.
func (m *ReceiptMutation) ClearCurrencyCode() {
	m.currency_code = nil
	m.clearedFields[receipt.FieldCurrencyCode] = struct{}{}
}

// CurrencyCodeCleared returns if the "currency_code" field was cleared in this mutation.
func (m *ReceiptMutation) CurrencyCodeCleared() bool {
	_, ok := m.clearedFields[receipt.FieldCurrencyCode]
	return ok
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *ReceiptMutation) ResetCurrencyCode() {
	m.currency_code = nil
	delete(m.clearedFields, receipt.FieldCurrencyCode)
}

// SetPaymentMethod sets the "payment_method" field.
func (m *ReceiptMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *ReceiptMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldPaymentMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *ReceiptMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[receipt.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *ReceiptMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[receipt.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *ReceiptMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, receipt.FieldPaymentMethod)
}

// SetCategory sets the "category" field.
func (m *ReceiptMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ReceiptMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ReceiptMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[receipt.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ReceiptMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[receipt.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ReceiptMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, receipt.FieldCategory)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReceiptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReceiptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReceiptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReceiptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReceiptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReceiptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOcrCompletedAt sets the "ocr_completed_at" field.
func (m *ReceiptMutation) SetOcrCompletedAt(t time.Time) {
	m.ocr_completed_at = &t
}

// OcrCompletedAt returns the value of the "ocr_completed_at" field in the mutation.
func (m *ReceiptMutation) OcrCompletedAt() (r time.Time, exists bool) {
	v := m.ocr_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrCompletedAt returns the old "ocr_completed_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOcrCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrCompletedAt: %w", err)
	}
	return oldValue.OcrCompletedAt, nil
}

// ClearOcrCompletedAt clears the value of the "ocr_completed_at" field.
func (m *ReceiptMutation) ClearOcrCompletedAt() {
	m.ocr_completed_at = nil
	m.clearedFields[receipt.FieldOcrCompletedAt] = struct{}{}
}

// OcrCompletedAtCleared returns if the "ocr_completed_at" field was cleared in this mutation.
func (m *ReceiptMutation) OcrCompletedAtCleared() bool {
	_, ok := m.clearedFields[receipt.FieldOcrCompletedAt]
	return ok
}

// ResetOcrCompletedAt resets all changes to the "ocr_completed_at" field.
func (m *ReceiptMutation) ResetOcrCompletedAt() {
	m.ocr_completed_at = nil
	delete(m.clearedFields, receipt.FieldOcrCompletedAt)
}

// SetAiReviewedAt sets the "ai_reviewed_at" field.
func (m *ReceiptMutation) SetAiReviewedAt(t time.Time) {
	m.ai_reviewed_at = &t
}

// AiReviewedAt returns the value of the "ai_reviewed_at" field in the mutation.
func (m *ReceiptMutation) AiReviewedAt() (r time.Time, exists bool) {
	v := m.ai_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAiReviewedAt returns the old "ai_reviewed_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldAiReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiReviewedAt: %w", err)
	}
	return oldValue.AiReviewedAt, nil
}

// ClearAiReviewedAt clears the value of the "ai_reviewed_at" field.
func (m *ReceiptMutation) ClearAiReviewedAt() {
	m.ai_reviewed_at = nil
	m.clearedFields[receipt.FieldAiReviewedAt] = struct{}{}
}

// AiReviewedAtCleared returns if the "ai_reviewed_at" field was cleared in this mutation.
func (m *ReceiptMutation) AiReviewedAtCleared() bool {
	_, ok := m.clearedFields[receipt.FieldAiReviewedAt]
	return ok
}

// ResetAiReviewedAt resets all changes to the "ai_reviewed_at" field.
func (m *ReceiptMutation) ResetAiReviewedAt() {
	m.ai_reviewed_at = nil
	delete(m.clearedFields, receipt.FieldAiReviewedAt)
}

// Where appends a list predicates to the ReceiptMutation builder.
func (m *ReceiptMutation) Where(ps ...predicate.Receipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Receipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Receipt).
func (m *ReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.owner_user_id != nil {
		fields = append(fields, receipt.FieldOwnerUserID)
	}
	if m.source != nil {
		fields = append(fields, receipt.FieldSource)
	}
	if m.original_filename != nil {
		fields = append(fields, receipt.FieldOriginalFilename)
	}
	if m.storage_reference != nil {
		fields = append(fields, receipt.FieldStorageReference)
	}
	if m.ocr_raw_text != nil {
		fields = append(fields, receipt.FieldOcrRawText)
	}
	if m.structured_fields != nil {
		fields = append(fields, receipt.FieldStructuredFields)
	}
	if m.confidence_score != nil {
		fields = append(fields, receipt.FieldConfidenceScore)
	}
	if m.status != nil {
		fields = append(fields, receipt.FieldStatus)
	}
	if m.is_verified != nil {
		fields = append(fields, receipt.FieldIsVerified)
	}
	if m.receipt_date != nil {
		fields = append(fields, receipt.FieldReceiptDate)
	}
	if m.vendor_name != nil {
		fields = append(fields, receipt.FieldVendorName)
	}
	if m.amount_total != nil {
		fields = append(fields, receipt.FieldAmountTotal)
	}
	if m.amount_subtotal != nil {
		fields = append(fields, receipt.FieldAmountSubtotal)
	}
	if m.tax_amount != nil {
		fields = append(fields, receipt.FieldTaxAmount)
	}
	if m.currency_code != nil {
		fields = append(fields, receipt.FieldCurrencyCode)
	}
	if m.payment_method != nil {
		fields = append(fields, receipt.FieldPaymentMethod)
	}
	if m.category != nil {
		fields = append(fields, receipt.FieldCategory)
	}
	if m.created_at != nil {
		fields = append(fields, receipt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, receipt.FieldUpdatedAt)
	}
	if m.ocr_completed_at != nil {
		fields = append(fields, receipt.FieldOcrCompletedAt)
	}
	if m.ai_reviewed_at != nil {
		fields = append(fields, receipt.FieldAiReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldOwnerUserID:
		return m.OwnerUserID()
	case receipt.FieldSource:
		return m.Source()
	case receipt.FieldOriginalFilename:
		return m.OriginalFilename()
	case receipt.FieldStorageReference:
		return m.StorageReference()
	case receipt.FieldOcrRawText:
		return m.OcrRawText()
	case receipt.FieldStructuredFields:
		return m.StructuredFields()
	case receipt.FieldConfidenceScore:
		return m.ConfidenceScore()
	case receipt.FieldStatus:
		return m.Status()
	case receipt.FieldIsVerified:
		return m.IsVerified()
	case receipt.FieldReceiptDate:
		return m.ReceiptDate()
	case receipt.FieldVendorName:
		return m.VendorName()
	case receipt.FieldAmountTotal:
		return m.AmountTotal()
	case receipt.FieldAmountSubtotal:
		return m.AmountSubtotal()
	case receipt.FieldTaxAmount:
		return m.TaxAmount()
	case receipt.FieldCurrencyCode:
		return m.CurrencyCode()
	case receipt.FieldPaymentMethod:
		return m.PaymentMethod()
	case receipt.FieldCategory:
		return m.Category()
	case receipt.FieldCreatedAt:
		return m.CreatedAt()
	case receipt.FieldUpdatedAt:
		return m.UpdatedAt()
	case receipt.FieldOcrCompletedAt:
		return m.OcrCompletedAt()
	case receipt.FieldAiReviewedAt:
		return m.AiReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receipt.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case receipt.FieldSource:
		return m.OldSource(ctx)
	case receipt.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case receipt.FieldStorageReference:
		return m.OldStorageReference(ctx)
	case receipt.FieldOcrRawText:
		return m.OldOcrRawText(ctx)
	case receipt.FieldStructuredFields:
		return m.OldStructuredFields(ctx)
	case receipt.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case receipt.FieldStatus:
		return m.OldStatus(ctx)
	case receipt.FieldIsVerified:
		return m.OldIsVerified(ctx)
	case receipt.FieldReceiptDate:
		return m.OldReceiptDate(ctx)
	case receipt.FieldVendorName:
		return m.OldVendorName(ctx)
	case receipt.FieldAmountTotal:
		return m.OldAmountTotal(ctx)
	case receipt.FieldAmountSubtotal:
		return m.OldAmountSubtotal(ctx)
	case receipt.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case receipt.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case receipt.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case receipt.FieldCategory:
		return m.OldCategory(ctx)
	case receipt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case receipt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case receipt.FieldOcrCompletedAt:
		return m.OldOcrCompletedAt(ctx)
	case receipt.FieldAiReviewedAt:
		return m.OldAiReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Receipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldOwnerUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case receipt.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case receipt.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case receipt.FieldStorageReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageReference(v)
		return nil
	case receipt.FieldOcrRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrRawText(v)
		return nil
	case receipt.FieldStructuredFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredFields(v)
		return nil
	case receipt.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case receipt.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case receipt.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	case receipt.FieldReceiptDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptDate(v)
		return nil
	case receipt.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case receipt.FieldAmountTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountTotal(v)
		return nil
	case receipt.FieldAmountSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountSubtotal(v)
		return nil
	case receipt.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case receipt.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case receipt.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case receipt.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case receipt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case receipt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case receipt.FieldOcrCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrCompletedAt(v)
		return nil
	case receipt.FieldAiReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, receipt.FieldConfidenceScore)
	}
	if m.addamount_total != nil {
		fields = append(fields, receipt.FieldAmountTotal)
	}
	if m.addamount_subtotal != nil {
		fields = append(fields, receipt.FieldAmountSubtotal)
	}
	if m.addtax_amount != nil {
		fields = append(fields, receipt.FieldTaxAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case receipt.FieldAmountTotal:
		return m.AddedAmountTotal()
	case receipt.FieldAmountSubtotal:
		return m.AddedAmountSubtotal()
	case receipt.FieldTaxAmount:
		return m.AddedTaxAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case receipt.FieldAmountTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountTotal(v)
		return nil
	case receipt.FieldAmountSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountSubtotal(v)
		return nil
	case receipt.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receipt.FieldStorageReference) {
		fields = append(fields, receipt.FieldStorageReference)
	}
	if m.FieldCleared(receipt.FieldOcrRawText) {
		fields = append(fields, receipt.FieldOcrRawText)
	}
	if m.FieldCleared(receipt.FieldStructuredFields) {
		fields = append(fields, receipt.FieldStructuredFields)
	}
	if m.FieldCleared(receipt.FieldConfidenceScore) {
		fields = append(fields, receipt.FieldConfidenceScore)
	}
	if m.FieldCleared(receipt.FieldReceiptDate) {
		fields = append(fields, receipt.FieldReceiptDate)
	}
	if m.FieldCleared(receipt.FieldVendorName) {
		fields = append(fields, receipt.FieldVendorName)
	}
	if m.FieldCleared(receipt.FieldAmountTotal) {
		fields = append(fields, receipt.FieldAmountTotal)
	}
	if m.FieldCleared(receipt.FieldAmountSubtotal) {
		fields = append(fields, receipt.FieldAmountSubtotal)
	}
	if m.FieldCleared(receipt.FieldTaxAmount) {
		fields = append(fields, receipt.FieldTaxAmount)
	}
	if m.FieldCleared(receipt.FieldCurrencyCode) {
		fields = append(fields, receipt.FieldCurrencyCode)
	}
	if m.FieldCleared(receipt.FieldPaymentMethod) {
		fields = append(fields, receipt.FieldPaymentMethod)
	}
	if m.FieldCleared(receipt.FieldCategory) {
		fields = append(fields, receipt.FieldCategory)
	}
	if m.FieldCleared(receipt.FieldOcrCompletedAt) {
		fields = append(fields, receipt.FieldOcrCompletedAt)
	}
	if m.FieldCleared(receipt.FieldAiReviewedAt) {
		fields = append(fields, receipt.FieldAiReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptMutation) ClearField(name string) error {
	switch name {
	case receipt.FieldStorageReference:
		m.ClearStorageReference()
		return nil
	case receipt.FieldOcrRawText:
		m.ClearOcrRawText()
		return nil
	case receipt.FieldStructuredFields:
		m.ClearStructuredFields()
		return nil
	case receipt.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	case receipt.FieldReceiptDate:
		m.ClearReceiptDate()
		return nil
	case receipt.FieldVendorName:
		m.ClearVendorName()
		return nil
	case receipt.FieldAmountTotal:
		m.ClearAmountTotal()
		return nil
	case receipt.FieldAmountSubtotal:
		m.ClearAmountSubtotal()
		return nil
	case receipt.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case receipt.FieldCurrencyCode:
		m.ClearCurrencyCode()
		return nil
	case receipt.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case receipt.FieldCategory:
		m.ClearCategory()
		return nil
	case receipt.FieldOcrCompletedAt:
		m.ClearOcrCompletedAt()
		return nil
	case receipt.FieldAiReviewedAt:
		m.ClearAiReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Receipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptMutation) ResetField(name string) error {
	switch name {
	case receipt.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case receipt.FieldSource:
		m.ResetSource()
		return nil
	case receipt.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case receipt.FieldStorageReference:
		m.ResetStorageReference()
		return nil
	case receipt.FieldOcrRawText:
		m.ResetOcrRawText()
		return nil
	case receipt.FieldStructuredFields:
		m.ResetStructuredFields()
		return nil
	case receipt.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case receipt.FieldStatus:
		m.ResetStatus()
		return nil
	case receipt.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	case receipt.FieldReceiptDate:
		m.ResetReceiptDate()
		return nil
	case receipt.FieldVendorName:
		m.ResetVendorName()
		return nil
	case receipt.FieldAmountTotal:
		m.ResetAmountTotal()
		return nil
	case receipt.FieldAmountSubtotal:
		m.ResetAmountSubtotal()
		return nil
	case receipt.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case receipt.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case receipt.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case receipt.FieldCategory:
		m.ResetCategory()
		return nil
	case receipt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case receipt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case receipt.FieldOcrCompletedAt:
		m.ResetOcrCompletedAt()
		return nil
	case receipt.FieldAiReviewedAt:
		m.ResetAiReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Receipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Receipt edge %s", name)
}
