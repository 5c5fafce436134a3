package llm

import (
	"encoding/json"
	"testing"

	"github.com/scouter-app/receipt-pipeline/constants"
)

func validPayload() map[string]any {
	return map[string]any{
		"receipt_date":     "2026-08-01",
		"vendor_name":      "Corner Deli",
		"amount_total":     42.50,
		"amount_subtotal":  39.00,
		"tax_amount":       3.50,
		"currency":         "USD",
		"payment_method":   "credit_card",
		"category":         "Meals",
		"confidence_score": 0.91,
		"items": []map[string]any{
			{"description": "Sandwich", "quantity": 1.0, "price": 12.50},
		},
	}
}

func TestSchemaAcceptsValidPayload(t *testing.T) {
	schema := BuildReceiptJSONSchema(constants.AsStringSlice())
	data, _ := json.Marshal(validPayload())
	if err := ValidateJSONAgainstSchema(schema, data); err != nil {
		t.Fatalf("expected valid payload to pass: %v", err)
	}
}

func TestSchemaRejectsBadPayloads(t *testing.T) {
	schema := BuildReceiptJSONSchema(constants.AsStringSlice())

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing vendor", func(m map[string]any) { delete(m, "vendor_name") }},
		{"missing total", func(m map[string]any) { delete(m, "amount_total") }},
		{"missing confidence", func(m map[string]any) { delete(m, "confidence_score") }},
		{"confidence out of range", func(m map[string]any) { m["confidence_score"] = 1.5 }},
		{"unknown category", func(m map[string]any) { m["category"] = "Crypto" }},
		{"bad date format", func(m map[string]any) { m["receipt_date"] = "08/01/2026" }},
		{"short currency", func(m map[string]any) { m["currency"] = "US" }},
		{"string amount", func(m map[string]any) { m["amount_total"] = "42.50" }},
		{"extra field", func(m map[string]any) { m["tip"] = 5.0 }},
	}
	for _, tc := range cases {
		payload := validPayload()
		tc.mutate(payload)
		data, _ := json.Marshal(payload)
		if err := ValidateJSONAgainstSchema(schema, data); err == nil {
			t.Errorf("%s: expected validation to fail", tc.name)
		}
	}
}

func TestSchemaUnconstrainedCategory(t *testing.T) {
	schema := BuildReceiptJSONSchema(nil)
	payload := validPayload()
	payload["category"] = "anything goes"
	data, _ := json.Marshal(payload)
	if err := ValidateJSONAgainstSchema(schema, data); err != nil {
		t.Fatalf("expected free-form category to pass without a taxonomy: %v", err)
	}
}

func TestNormalizeConfidence(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float32
	}{
		{"already normalized", 0.87, 0.87},
		{"percentage scale", 87, 0.87},
		{"full percentage", 100, 1},
		{"negative clamps", -3, 0},
		{"boundary one", 1, 1},
	}
	for _, tc := range cases {
		raw, _ := json.Marshal(map[string]any{"confidence_score": tc.in, "vendor_name": "x"})
		out, got, err := NormalizeConfidence(raw)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		var m map[string]any
		if err := json.Unmarshal(out, &m); err != nil {
			t.Fatalf("%s: reparse: %v", tc.name, err)
		}
		if float32(m["confidence_score"].(float64)) != tc.want {
			t.Errorf("%s: payload carries %v, want %v", tc.name, m["confidence_score"], tc.want)
		}
	}
}

func TestNormalizeConfidenceMissing(t *testing.T) {
	if _, _, err := NormalizeConfidence([]byte(`{"vendor_name":"x"}`)); err == nil {
		t.Fatal("expected an error when confidence_score is absent")
	}
}
