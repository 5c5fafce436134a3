package constants

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to ReceiptStatus }{
		{StatusUploaded, StatusOCRDone},
		{StatusOCRDone, StatusAIDone},
		{StatusAIDone, StatusAwaitingReview},
		{StatusAIDone, StatusLowConfidence},
		{StatusAwaitingReview, StatusVerified},
		{StatusLowConfidence, StatusVerified},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to ReceiptStatus }{
		{StatusUploaded, StatusAIDone},              // skips ocr
		{StatusUploaded, StatusVerified},            // skips everything
		{StatusOCRDone, StatusUploaded},             // backward
		{StatusAIDone, StatusVerified},              // must route first
		{StatusAwaitingReview, StatusAIDone},        // backward
		{StatusAwaitingReview, StatusLowConfidence}, // sideways between review states
		{StatusVerified, StatusUploaded},            // terminal
		{StatusFailed, StatusUploaded},              // terminal
		{StatusFailed, StatusOCRDone},
	}
	for _, tc := range forbidden {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be forbidden", tc.from, tc.to)
		}
	}
}

func TestRankOrdering(t *testing.T) {
	order := []ReceiptStatus{StatusUploaded, StatusOCRDone, StatusAIDone, StatusAwaitingReview, StatusVerified}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("expected %s to outrank %s", order[i], order[i-1])
		}
	}
	if StatusAwaitingReview.Rank() != StatusLowConfidence.Rank() {
		t.Error("review states should share a rank")
	}
	if StatusFailed.Rank() != 0 {
		t.Error("failed should sit outside the happy path ordering")
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []ReceiptStatus{StatusUploaded, StatusOCRDone, StatusAIDone, StatusAwaitingReview, StatusLowConfidence} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	for _, s := range []ReceiptStatus{StatusVerified, StatusFailed} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Meals", Meals, true},
		{"restaurant", Meals, true},
		{"FUEL", Gas, true},
		{"  groceries ", Groceries, true},
		{"uber", Travel, true},
		{"cryptocurrency", Other, false},
		{"", Other, false},
	}
	for _, tc := range cases {
		got, ok := Canonicalize(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Canonicalize(%q) = (%s, %v), want (%s, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
