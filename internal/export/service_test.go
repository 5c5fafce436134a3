package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/scouter-app/receipt-pipeline/constants"
	"github.com/scouter-app/receipt-pipeline/internal/entity"
	"github.com/scouter-app/receipt-pipeline/internal/repository"
)

type stubRepo struct {
	verified []*entity.Receipt

	gotFrom *time.Time
	gotTo   *time.Time
}

func (s *stubRepo) Create(context.Context, *repository.CreateReceiptRequest) (*entity.Receipt, error) {
	return nil, nil
}
func (s *stubRepo) GetByID(context.Context, uuid.UUID) (*entity.Receipt, error) { return nil, nil }
func (s *stubRepo) List(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}
func (s *stubRepo) ListVerified(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.Receipt, error) {
	s.gotFrom, s.gotTo = from, to
	return s.verified, nil
}
func (s *stubRepo) SetUploaded(context.Context, uuid.UUID, string) (*entity.Receipt, error) {
	return nil, nil
}
func (s *stubRepo) FinishOCR(context.Context, uuid.UUID, string) (*entity.Receipt, error) {
	return nil, nil
}
func (s *stubRepo) FinishExtraction(context.Context, uuid.UUID, repository.ExtractionOutcome) (*entity.Receipt, error) {
	return nil, nil
}
func (s *stubRepo) Route(context.Context, uuid.UUID, constants.ReceiptStatus) (*entity.Receipt, error) {
	return nil, nil
}
func (s *stubRepo) Verify(context.Context, uuid.UUID) (*entity.Receipt, error) { return nil, nil }
func (s *stubRepo) MarkFailed(context.Context, uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}

func TestExportVerifiedXLSX(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	vendor := "Corner Deli"
	category := "Meals"
	total := 42.50
	currency := "USD"
	conf := float32(0.91)

	repo := &stubRepo{verified: []*entity.Receipt{
		{
			ID:              uuid.New(),
			Status:          constants.StatusVerified,
			IsVerified:      true,
			ReceiptDate:     &date,
			VendorName:      &vendor,
			Category:        &category,
			AmountTotal:     &total,
			CurrencyCode:    &currency,
			ConfidenceScore: &conf,
		},
		{
			// sparse row: projections never filled in
			ID:         uuid.New(),
			Status:     constants.StatusVerified,
			IsVerified: true,
		},
	}}

	svc := NewService(repo, logger)
	data, err := svc.ExportVerifiedXLSX(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	check := func(cell, want string) {
		t.Helper()
		got, err := f.GetCellValue("Receipts", cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}

	check("A1", "Receipt Date")
	check("B1", "Vendor")
	check("D1", "Total")

	check("A2", "2026-08-01")
	check("B2", "Corner Deli")
	check("C2", "Meals")
	check("D2", "42.5")
	check("G2", "USD")
	check("I2", "0.91")

	check("A3", "")
	check("B3", "")
}

func TestExportDateWindowDefaultsToToday(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := &stubRepo{}
	svc := NewService(repo, logger)

	from := time.Date(2026, 7, 1, 13, 45, 0, 0, time.Local)
	if _, err := svc.ExportVerifiedXLSX(context.Background(), uuid.New(), &from, nil); err != nil {
		t.Fatalf("export: %v", err)
	}

	if repo.gotFrom == nil || !repo.gotFrom.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from not normalized to midnight UTC: %v", repo.gotFrom)
	}
	if repo.gotTo == nil {
		t.Error("to should default to today when only from is given")
	}
}
