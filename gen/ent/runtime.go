// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/scouter-app/receipt-pipeline/db/ent/schema"
	"github.com/scouter-app/receipt-pipeline/gen/ent/receipt"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescSource is the schema descriptor for source field.
	receiptDescSource := receiptFields[2].Descriptor()
	// receipt.DefaultSource holds the default value on creation for the source field.
	receipt.DefaultSource = receiptDescSource.Default.(string)
	// receipt.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	receipt.SourceValidator = receiptDescSource.Validators[0].(func(string) error)
	// receiptDescOriginalFilename is the schema descriptor for original_filename field.
	receiptDescOriginalFilename := receiptFields[3].Descriptor()
	// receipt.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	receipt.OriginalFilenameValidator = receiptDescOriginalFilename.Validators[0].(func(string) error)
	// receiptDescStatus is the schema descriptor for status field.
	receiptDescStatus := receiptFields[8].Descriptor()
	// receipt.DefaultStatus holds the default value on creation for the status field.
	receipt.DefaultStatus = receiptDescStatus.Default.(string)
	// receipt.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	receipt.StatusValidator = receiptDescStatus.Validators[0].(func(string) error)
	// receiptDescIsVerified is the schema descriptor for is_verified field.
	receiptDescIsVerified := receiptFields[9].Descriptor()
	// receipt.DefaultIsVerified holds the default value on creation for the is_verified field.
	receipt.DefaultIsVerified = receiptDescIsVerified.Default.(bool)
	// receiptDescCurrencyCode is the schema descriptor for currency_code field.
	receiptDescCurrencyCode := receiptFields[15].Descriptor()
	// receipt.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	receipt.CurrencyCodeValidator = func() func(string) error {
		validators := receiptDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[18].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[19].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
}
