package receipts

import (
	"context"
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
	"github.com/scouter-app/receipt-pipeline/internal/pipeline"
	"github.com/scouter-app/receipt-pipeline/internal/progress"
	"github.com/scouter-app/receipt-pipeline/internal/repository"
)

func TestService(t *testing.T) {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	RegisterFailHandler(Fail)
	RunSpecs(t, "Receipts Suite")
}

// mockRepo is an in-memory repository covering the service surface.
type mockRepo struct {
	mu        sync.Mutex
	receipts  map[uuid.UUID]*entity.Receipt
	createErr error
	verifyErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
}

func (m *mockRepo) seed(status constants.ReceiptStatus) *entity.Receipt {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := &entity.Receipt{
		ID:          uuid.New(),
		OwnerUserID: uuid.New(),
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	m.receipts[rec.ID] = rec
	return rec
}

func (m *mockRepo) Create(_ context.Context, req *repository.CreateReceiptRequest) (*entity.Receipt, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	rec := m.seed(constants.StatusUploaded)
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.OwnerUserID = req.OwnerUserID
	rec.Source = req.Source
	rec.OriginalFilename = req.OriginalFilename
	return rec, nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.receipts[id]
	if !ok {
		return nil, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
	}
	return rec, nil
}

func (m *mockRepo) List(_ context.Context, ownerID uuid.UUID, _, _ *time.Time) ([]*entity.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Receipt
	for _, r := range m.receipts {
		if r.OwnerUserID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) ListVerified(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Receipt, error) {
	return nil, nil
}

func (m *mockRepo) SetUploaded(_ context.Context, id uuid.UUID, ref string) (*entity.Receipt, error) {
	return m.receipts[id], nil
}

func (m *mockRepo) FinishOCR(_ context.Context, id uuid.UUID, _ string) (*entity.Receipt, error) {
	return m.receipts[id], nil
}

func (m *mockRepo) FinishExtraction(_ context.Context, id uuid.UUID, _ repository.ExtractionOutcome) (*entity.Receipt, error) {
	return m.receipts[id], nil
}

func (m *mockRepo) Route(_ context.Context, id uuid.UUID, _ constants.ReceiptStatus) (*entity.Receipt, error) {
	return m.receipts[id], nil
}

func (m *mockRepo) Verify(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	if m.verifyErr != nil {
		return nil, m.verifyErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := m.receipts[id]
	rec.Status = constants.StatusVerified
	rec.IsVerified = true
	return rec, nil
}

func (m *mockRepo) MarkFailed(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return m.receipts[id], nil
}

// mockQueue records enqueued jobs.
type mockQueue struct {
	mu         sync.Mutex
	jobs       []*pipeline.Job
	enqueueErr error
}

func (m *mockQueue) Enqueue(_ context.Context, job *pipeline.Job) error {
	if m.enqueueErr != nil {
		return m.enqueueErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, job)
	return nil
}

var _ = Describe("Service", func() {
	var (
		repo    *mockRepo
		tracker *progress.Tracker
		queue   *mockQueue
		service *Service
	)

	BeforeEach(func() {
		repo = newMockRepo()
		tracker = progress.NewTracker(slog.New(slog.NewTextHandler(io.Discard, nil)))
		queue = &mockQueue{}
		service = NewService(repo, tracker, queue, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	AfterEach(func() {
		tracker.Close()
	})

	Describe("Process", func() {
		var (
			req       *ProcessRequest
			receiptID uuid.UUID
			sessionID string
			err       error
		)

		BeforeEach(func() {
			req = &ProcessRequest{
				OwnerUserID: uuid.New(),
				Filename:    "lunch.jpg",
				ContentType: "image/jpeg",
				Image:       []byte("fake image data"),
			}
		})

		JustBeforeEach(func() {
			receiptID, sessionID, err = service.Process(context.Background(), req)
		})

		When("the request is valid", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("creates a trackable session", func() {
				snap, gerr := tracker.Get(sessionID)
				Expect(gerr).NotTo(HaveOccurred())
				Expect(snap.ReceiptID).To(Equal(receiptID))
			})

			It("enqueues exactly one job with the image", func() {
				Expect(queue.jobs).To(HaveLen(1))
				Expect(queue.jobs[0].ReceiptID).To(Equal(receiptID))
				Expect(queue.jobs[0].SessionID).To(Equal(sessionID))
				Expect(queue.jobs[0].Image).To(Equal(req.Image))
			})

			It("defaults the source to upload", func() {
				rec, _ := repo.GetByID(context.Background(), receiptID)
				Expect(rec.Source).To(Equal(constants.SourceUpload))
			})
		})

		When("the content type carries parameters", func() {
			BeforeEach(func() {
				req.ContentType = "image/JPEG; charset=binary"
			})

			It("normalizes before checking", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(queue.jobs[0].ContentType).To(Equal("image/jpeg"))
			})
		})

		When("the image is empty", func() {
			BeforeEach(func() {
				req.Image = nil
			})

			It("rejects the request", func() {
				Expect(err).To(MatchError(common.ErrInvalidInput))
			})
		})

		When("the content type is not an accepted image", func() {
			BeforeEach(func() {
				req.ContentType = "application/pdf"
			})

			It("rejects the request", func() {
				Expect(err).To(MatchError(common.ErrInvalidInput))
			})

			It("creates no receipt and no job", func() {
				Expect(queue.jobs).To(BeEmpty())
				Expect(repo.receipts).To(BeEmpty())
			})
		})

		When("the owner is missing", func() {
			BeforeEach(func() {
				req.OwnerUserID = uuid.Nil
			})

			It("rejects the request", func() {
				Expect(err).To(MatchError(common.ErrInvalidInput))
			})
		})
	})

	Describe("Confirm", func() {
		var (
			rec       *entity.Receipt
			confirmed *entity.Receipt
			err       error
		)

		JustBeforeEach(func() {
			confirmed, err = service.Confirm(context.Background(), rec.ID)
		})

		When("the receipt awaits review", func() {
			BeforeEach(func() {
				rec = repo.seed(constants.StatusAwaitingReview)
			})

			It("verifies it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(confirmed.Status).To(Equal(constants.StatusVerified))
				Expect(confirmed.IsVerified).To(BeTrue())
			})
		})

		When("the receipt was flagged low confidence", func() {
			BeforeEach(func() {
				rec = repo.seed(constants.StatusLowConfidence)
			})

			It("verifies it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(confirmed.Status).To(Equal(constants.StatusVerified))
			})
		})

		When("processing has not reached review yet", func() {
			BeforeEach(func() {
				rec = repo.seed(constants.StatusUploaded)
			})

			It("rejects the confirmation", func() {
				Expect(err).To(MatchError(common.ErrInvalidState))
			})
		})

		When("the receipt is already verified", func() {
			BeforeEach(func() {
				rec = repo.seed(constants.StatusVerified)
			})

			It("rejects the confirmation", func() {
				Expect(err).To(MatchError(common.ErrInvalidState))
			})
		})

		When("the receipt does not exist", func() {
			BeforeEach(func() {
				rec = &entity.Receipt{ID: uuid.New()}
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(common.ErrNotFound))
			})
		})
	})
})
