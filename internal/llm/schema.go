package llm

// BuildReceiptJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the model as a structured output constraint and also use it
// locally to validate what comes back.
func BuildReceiptJSONSchema(allowedCategories []string) map[string]any {
	props := map[string]any{
		"receipt_date":    map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"vendor_name":     map[string]any{"type": "string", "minLength": 1},
		"location":        map[string]any{"type": "string"},
		"amount_total":    amountProp(),
		"amount_subtotal": amountProp(),
		"tax_amount":      amountProp(),
		"currency":        map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"payment_method":  map[string]any{"type": "string"},
		"category":        map[string]any{"type": "string"},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"description": map[string]any{"type": "string", "minLength": 1},
					"quantity":    map[string]any{"type": "number", "minimum": 0},
					"price":       amountProp(),
				},
				"required": []string{"description"},
			},
		},
		// models trained on percentage scales sometimes return 0..100 here;
		// the client normalizes before validation
		"confidence_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{"vendor_name", "amount_total", "currency", "confidence_score"}

	// Constrain category if a taxonomy is provided.
	if len(allowedCategories) > 0 {
		props["category"] = map[string]any{
			"type": "string",
			"enum": allowedCategories,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func amountProp() map[string]any {
	return map[string]any{"type": "number"}
}
