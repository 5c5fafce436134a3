package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/scouter-app/receipt-pipeline/constants"
	"github.com/scouter-app/receipt-pipeline/db/ent/schema/utils"
)

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_user_id", uuid.UUID{}).Immutable(),
		field.String("source").
			Default(string(constants.SourceUpload)).
			Validate(utils.EnumValidator(constants.Sources...)),
		field.String("original_filename").NotEmpty(),
		field.String("storage_reference").Optional().Nillable(),
		field.String("ocr_raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("structured_fields", json.RawMessage{}).
			Optional(),
		// set if and only if status is at or past ai_done
		field.Float32("confidence_score").Optional().Nillable(),
		field.String("status").
			Default(string(constants.StatusUploaded)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		field.Bool("is_verified").Default(false),

		// Projections of structured_fields into first-class columns.
		field.Time("receipt_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("vendor_name").Optional().Nillable(),
		field.Float("amount_total").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("amount_subtotal").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency_code").Optional().Nillable().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("payment_method").Optional().Nillable(),
		field.String("category").Optional().Nillable(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("ocr_completed_at").Optional().Nillable(),
		field.Time("ai_reviewed_at").Optional().Nillable(),
	}
}

func (Receipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_user_id", "status", "created_at"),
		index.Fields("owner_user_id", "receipt_date"),
	}
}
