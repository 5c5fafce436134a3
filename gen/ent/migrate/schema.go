// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_user_id", Type: field.TypeUUID},
		{Name: "source", Type: field.TypeString, Default: "upload"},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "storage_reference", Type: field.TypeString, Nullable: true},
		{Name: "ocr_raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "structured_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat32, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "receipt_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "amount_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "amount_subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency_code", Type: field.TypeString, Nullable: true, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "payment_method", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ocr_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "ai_reviewed_at", Type: field.TypeTime, Nullable: true},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_owner_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1], ReceiptsColumns[8], ReceiptsColumns[18]},
			},
			{
				Name:    "receipt_owner_user_id_receipt_date",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1], ReceiptsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReceiptsTable,
	}
)

func init() {
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
}
