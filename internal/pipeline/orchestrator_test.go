package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scouter-app/receipt-pipeline/constants"
	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/entity"
	"github.com/scouter-app/receipt-pipeline/internal/extract"
	"github.com/scouter-app/receipt-pipeline/internal/llm"
	"github.com/scouter-app/receipt-pipeline/internal/progress"
	"github.com/scouter-app/receipt-pipeline/internal/repository"
)

func TestOrchestrator(t *testing.T) {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	RegisterFailHandler(Fail)
	RunSpecs(t, "Pipeline Suite")
}

// mockRepo is an in-memory implementation of repository.ReceiptRepository
// that mirrors the state machine rules.
type mockRepo struct {
	mu       sync.Mutex
	receipts map[uuid.UUID]*entity.Receipt
}

func newMockRepo() *mockRepo {
	return &mockRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
}

func (m *mockRepo) seed(status constants.ReceiptStatus) *entity.Receipt {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := &entity.Receipt{
		ID:               uuid.New(),
		OwnerUserID:      uuid.New(),
		Source:           constants.SourceUpload,
		OriginalFilename: "receipt.jpg",
		Status:           status,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	m.receipts[rec.ID] = rec
	return rec
}

func (m *mockRepo) Create(_ context.Context, req *repository.CreateReceiptRequest) (*entity.Receipt, error) {
	rec := m.seed(constants.StatusUploaded)
	rec.OwnerUserID = req.OwnerUserID
	rec.OriginalFilename = req.OriginalFilename
	return copyOf(rec), nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.receipts[id]
	if !ok {
		return nil, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
	}
	return copyOf(rec), nil
}

func (m *mockRepo) List(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}

func (m *mockRepo) ListVerified(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}

func (m *mockRepo) SetUploaded(_ context.Context, id uuid.UUID, storageRef string) (*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.receipts[id]
	if rec.StorageReference == nil {
		rec.StorageReference = &storageRef
	}
	return copyOf(rec), nil
}

func (m *mockRepo) FinishOCR(_ context.Context, id uuid.UUID, rawText string) (*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.receipts[id]
	if rec.Status.Rank() < constants.StatusOCRDone.Rank() {
		rec.OCRRawText = &rawText
		rec.Status = constants.StatusOCRDone
	}
	return copyOf(rec), nil
}

func (m *mockRepo) FinishExtraction(_ context.Context, id uuid.UUID, out repository.ExtractionOutcome) (*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.receipts[id]
	if rec.Status.Rank() < constants.StatusAIDone.Rank() {
		conf := out.Confidence
		rec.ConfidenceScore = &conf
		rec.StructuredFields = out.RawJSON
		rec.Status = constants.StatusAIDone
	}
	return copyOf(rec), nil
}

func (m *mockRepo) Route(_ context.Context, id uuid.UUID, to constants.ReceiptStatus) (*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.receipts[id]
	if rec.Status.Rank() < to.Rank() {
		if !constants.CanTransition(rec.Status, to) {
			return nil, fmt.Errorf("%s from %s: %w", to, rec.Status, common.ErrInvalidState)
		}
		rec.Status = to
	}
	return copyOf(rec), nil
}

func (m *mockRepo) Verify(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.receipts[id]
	if !constants.CanTransition(rec.Status, constants.StatusVerified) {
		return nil, fmt.Errorf("verify from %s: %w", rec.Status, common.ErrInvalidState)
	}
	rec.Status = constants.StatusVerified
	rec.IsVerified = true
	return copyOf(rec), nil
}

func (m *mockRepo) MarkFailed(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.receipts[id]
	if !rec.Status.IsTerminal() {
		rec.Status = constants.StatusFailed
	}
	return copyOf(rec), nil
}

func (m *mockRepo) status(id uuid.UUID) constants.ReceiptStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.receipts[id].Status
}

func copyOf(r *entity.Receipt) *entity.Receipt {
	c := *r
	return &c
}

// mockStore is an in-memory object store.
type mockStore struct {
	mu     sync.Mutex
	files  map[string][]byte
	putErr error
	getErr error
}

func newMockStore() *mockStore {
	return &mockStore{files: make(map[string][]byte)}
}

func (m *mockStore) Put(_ context.Context, key string, data []byte, _ string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	return nil
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	if !ok {
		return nil, common.Rejected("object storage", errors.New("no such key"))
	}
	return data, nil
}

// mockOCR counts calls and can fail the first N of them.
type mockOCR struct {
	mu        sync.Mutex
	calls     int
	failFirst int
	failWith  error
	text      string
}

func (m *mockOCR) ExtractText(_ context.Context, _ []byte) (extract.TextExtractionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.calls <= m.failFirst {
		return extract.TextExtractionResult{}, m.failWith
	}
	return extract.TextExtractionResult{Text: m.text, WordCount: 2}, nil
}

// mockExtractor returns a fixed field set or an error.
type mockExtractor struct {
	mu         sync.Mutex
	calls      int
	err        error
	confidence float32
}

func (m *mockExtractor) ExtractFields(_ context.Context, _ llm.ExtractRequest) (llm.ReceiptFields, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return llm.ReceiptFields{}, nil, m.err
	}
	total := 42.50
	fields := llm.ReceiptFields{
		ReceiptDate: "2026-08-01",
		VendorName:  "Corner Deli",
		AmountTotal: &total,
		Currency:    "USD",
		Category:    "Meals",
		Confidence:  m.confidence,
	}
	raw, _ := json.Marshal(fields)
	return fields, raw, nil
}

var _ = Describe("Orchestrator", func() {
	var (
		repo      *mockRepo
		store     *mockStore
		ocr       *mockOCR
		extractor *mockExtractor
		tracker   *progress.Tracker
		orch      *Orchestrator

		rec *entity.Receipt
		job *Job
		err error
	)

	BeforeEach(func() {
		repo = newMockRepo()
		store = newMockStore()
		ocr = &mockOCR{text: "Corner Deli 42.50"}
		extractor = &mockExtractor{confidence: 0.9}
		tracker = progress.NewTracker(slog.New(slog.NewTextHandler(io.Discard, nil)))

		orch = NewOrchestrator(repo, store, ocr, extractor, tracker, Config{
			ConfidenceThreshold: 0.75,
			MaxAttempts:         3,
			RetryBaseDelay:      time.Millisecond,
			StageTimeout:        time.Second,
		}, slog.New(slog.NewTextHandler(io.Discard, nil)))

		rec = repo.seed(constants.StatusUploaded)
		job = &Job{
			ReceiptID:   rec.ID,
			SessionID:   tracker.CreateSession(rec.ID),
			Image:       []byte("fake image data"),
			ContentType: "image/jpeg",
		}
	})

	AfterEach(func() {
		tracker.Close()
	})

	JustBeforeEach(func() {
		err = orch.Process(context.Background(), job)
	})

	When("every stage succeeds with high confidence", func() {
		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("routes the receipt to the review queue", func() {
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusAwaitingReview))
		})

		It("stores the image under the receipt id", func() {
			Expect(store.files).To(HaveKey("receipts/" + rec.ID.String() + ".jpg"))
		})

		It("marks every stage done in the session", func() {
			snap, gerr := tracker.Get(job.SessionID)
			Expect(gerr).NotTo(HaveOccurred())
			Expect(snap.OverallStatus).To(Equal(constants.StageDone))
			for _, st := range snap.Stages {
				Expect(st.Status).To(Equal(constants.StageDone))
				Expect(st.Completion).To(Equal(1.0))
			}
		})
	})

	When("confidence lands below the threshold", func() {
		BeforeEach(func() {
			extractor.confidence = 0.4
		})

		It("flags the receipt as low confidence", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusLowConfidence))
		})
	})

	When("confidence sits exactly at the threshold", func() {
		BeforeEach(func() {
			extractor.confidence = 0.75
		})

		It("routes to the normal review queue", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusAwaitingReview))
		})
	})

	When("the ocr engine is briefly unavailable", func() {
		BeforeEach(func() {
			ocr.failFirst = 2
			ocr.failWith = common.Unavailable("ocr engine", errors.New("503"))
		})

		It("retries until the stage succeeds", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(ocr.calls).To(Equal(3))
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusAwaitingReview))
		})
	})

	When("the ocr engine stays unavailable", func() {
		BeforeEach(func() {
			ocr.failFirst = 10
			ocr.failWith = common.Unavailable("ocr engine", errors.New("503"))
		})

		It("gives up after the attempt budget", func() {
			Expect(err).To(HaveOccurred())
			Expect(ocr.calls).To(Equal(3))
		})

		It("leaves the receipt at its last completed state", func() {
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusUploaded))
		})

		It("fails the session", func() {
			snap, _ := tracker.Get(job.SessionID)
			Expect(snap.OverallStatus).To(Equal(constants.StageFailed))
		})
	})

	When("the ai extractor rejects the input", func() {
		BeforeEach(func() {
			extractor.err = common.Rejected("ai extractor", errors.New("schema validation failed"))
		})

		It("does not retry a permanent failure", func() {
			Expect(err).To(HaveOccurred())
			Expect(extractor.calls).To(Equal(1))
		})

		It("keeps the receipt resumable at ocr_done", func() {
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusOCRDone))
		})

		It("fails the session at the extraction stage", func() {
			snap, _ := tracker.Get(job.SessionID)
			Expect(snap.OverallStatus).To(Equal(constants.StageFailed))
			for _, st := range snap.Stages {
				if st.Name == constants.StageAIExtraction {
					Expect(st.Status).To(Equal(constants.StageFailed))
					Expect(st.Error).NotTo(BeEmpty())
				}
			}
		})
	})

	When("a failed run is retried without image bytes", func() {
		BeforeEach(func() {
			extractor.err = common.Rejected("ai extractor", errors.New("bad json"))
			ferr := orch.Process(context.Background(), job)
			Expect(ferr).To(HaveOccurred())
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusOCRDone))

			// second run resumes from storage
			extractor.err = nil
			job = &Job{
				ReceiptID: rec.ID,
				SessionID: tracker.CreateSession(rec.ID),
			}
		})

		It("skips the completed stages and finishes", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusAwaitingReview))
		})

		It("does not run ocr again", func() {
			Expect(ocr.calls).To(Equal(1))
		})
	})

	When("the upload stage fails permanently", func() {
		BeforeEach(func() {
			store.putErr = common.Rejected("object storage", errors.New("bucket policy"))
		})

		It("returns the error", func() {
			Expect(err).To(HaveOccurred())
		})

		It("marks the receipt itself failed", func() {
			Expect(repo.status(rec.ID)).To(Equal(constants.StatusFailed))
		})
	})

	When("the receipt is already terminal", func() {
		BeforeEach(func() {
			_, verr := repo.MarkFailed(context.Background(), rec.ID)
			Expect(verr).NotTo(HaveOccurred())
		})

		It("refuses to process it", func() {
			Expect(err).To(MatchError(common.ErrInvalidState))
		})
	})

	When("the receipt does not exist", func() {
		BeforeEach(func() {
			job.ReceiptID = uuid.New()
		})

		It("returns not found", func() {
			Expect(err).To(MatchError(common.ErrNotFound))
		})
	})
})
