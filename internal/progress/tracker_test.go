package progress

import (
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
)

func TestTracker(t *testing.T) {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	RegisterFailHandler(Fail)
	RunSpecs(t, "Progress Suite")
}

var _ = Describe("Tracker", func() {
	var (
		tracker   *Tracker
		receiptID uuid.UUID
		sessionID string
	)

	BeforeEach(func() {
		tracker = NewTracker(slog.New(slog.NewTextHandler(io.Discard, nil)))
		receiptID = uuid.New()
		sessionID = tracker.CreateSession(receiptID)
	})

	AfterEach(func() {
		tracker.Close()
	})

	Describe("CreateSession", func() {
		It("starts every stage pending", func() {
			snap, err := tracker.Get(sessionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(snap.ReceiptID).To(Equal(receiptID))
			Expect(snap.OverallStatus).To(Equal(constants.StagePending))
			Expect(snap.Stages).To(HaveLen(len(constants.StageOrder)))
			for i, st := range snap.Stages {
				Expect(st.Name).To(Equal(constants.StageOrder[i]))
				Expect(st.Status).To(Equal(constants.StagePending))
			}
		})

		It("hands out unique session ids", func() {
			other := tracker.CreateSession(receiptID)
			Expect(other).NotTo(Equal(sessionID))
		})
	})

	Describe("Get", func() {
		When("the session is unknown", func() {
			It("returns not found", func() {
				_, err := tracker.Get("nonexistent")
				Expect(err).To(MatchError(common.ErrNotFound))
			})
		})

		It("returns an isolated copy", func() {
			snap, _ := tracker.Get(sessionID)
			snap.Stages[0].Status = constants.StageFailed

			again, _ := tracker.Get(sessionID)
			Expect(again.Stages[0].Status).To(Equal(constants.StagePending))
		})
	})

	Describe("UpdateStage", func() {
		It("moves the overall status to running with the first stage", func() {
			err := tracker.UpdateStage(sessionID, constants.StageUpload, constants.StageRunning, 0, "")
			Expect(err).NotTo(HaveOccurred())

			snap, _ := tracker.Get(sessionID)
			Expect(snap.OverallStatus).To(Equal(constants.StageRunning))
		})

		It("marks overall done when every stage finishes", func() {
			for _, name := range constants.StageOrder {
				Expect(tracker.UpdateStage(sessionID, name, constants.StageDone, 1, "")).To(Succeed())
			}
			snap, _ := tracker.Get(sessionID)
			Expect(snap.OverallStatus).To(Equal(constants.StageDone))
		})

		It("fails the whole session when one stage fails", func() {
			Expect(tracker.UpdateStage(sessionID, constants.StageUpload, constants.StageDone, 1, "")).To(Succeed())
			Expect(tracker.UpdateStage(sessionID, constants.StageOCR, constants.StageFailed, 0, "engine down")).To(Succeed())

			snap, _ := tracker.Get(sessionID)
			Expect(snap.OverallStatus).To(Equal(constants.StageFailed))
			Expect(snap.Stages[1].Error).To(Equal("engine down"))
		})

		It("ignores an update that would rewind a stage", func() {
			Expect(tracker.UpdateStage(sessionID, constants.StageOCR, constants.StageDone, 1, "")).To(Succeed())
			Expect(tracker.UpdateStage(sessionID, constants.StageOCR, constants.StageRunning, 0.5, "")).To(Succeed())

			snap, _ := tracker.Get(sessionID)
			Expect(snap.Stages[1].Status).To(Equal(constants.StageDone))
			Expect(snap.Stages[1].Completion).To(Equal(1.0))
		})

		It("is idempotent for repeated identical updates", func() {
			Expect(tracker.UpdateStage(sessionID, constants.StageUpload, constants.StageDone, 1, "")).To(Succeed())
			before, _ := tracker.Get(sessionID)
			Expect(tracker.UpdateStage(sessionID, constants.StageUpload, constants.StageDone, 1, "")).To(Succeed())
			after, _ := tracker.Get(sessionID)
			Expect(after.UpdatedAt).To(Equal(before.UpdatedAt))
		})

		When("the stage name is unknown", func() {
			It("rejects the update", func() {
				err := tracker.UpdateStage(sessionID, "compress", constants.StageRunning, 0, "")
				Expect(err).To(MatchError(common.ErrInvalidInput))
			})
		})

		When("the session is unknown", func() {
			It("returns not found", func() {
				err := tracker.UpdateStage("nonexistent", constants.StageUpload, constants.StageRunning, 0, "")
				Expect(err).To(MatchError(common.ErrNotFound))
			})
		})
	})

	Describe("List", func() {
		It("returns sessions newest first", func() {
			second := tracker.CreateSession(uuid.New())
			all := tracker.List()
			Expect(all).To(HaveLen(2))
			Expect(all[0].CreatedAt.Before(all[1].CreatedAt)).To(BeFalse())
			ids := []string{all[0].SessionID, all[1].SessionID}
			Expect(ids).To(ContainElements(sessionID, second))
		})
	})

	Describe("eviction", func() {
		It("drops idle sessions past the retention window regardless of state", func() {
			Expect(tracker.UpdateStage(sessionID, constants.StageUpload, constants.StageRunning, 0, "")).To(Succeed())
			tracker.evict(time.Now().UTC().Add(2 * time.Hour))

			_, err := tracker.Get(sessionID)
			Expect(err).To(MatchError(common.ErrNotFound))
		})

		It("keeps sessions updated within the retention window", func() {
			Expect(tracker.UpdateStage(sessionID, constants.StageUpload, constants.StageRunning, 0, "")).To(Succeed())
			tracker.evict(time.Now().UTC().Add(30 * time.Minute))

			_, err := tracker.Get(sessionID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("concurrent updates", func() {
		It("keeps independent sessions consistent", func() {
			const n = 16
			ids := make([]string, n)
			for i := range ids {
				ids[i] = tracker.CreateSession(uuid.New())
			}

			var wg sync.WaitGroup
			for _, id := range ids {
				wg.Add(1)
				go func(sid string) {
					defer wg.Done()
					for _, name := range constants.StageOrder {
						_ = tracker.UpdateStage(sid, name, constants.StageRunning, 0, "")
						_ = tracker.UpdateStage(sid, name, constants.StageDone, 1, "")
					}
				}(id)
			}
			wg.Wait()

			for _, id := range ids {
				snap, err := tracker.Get(id)
				Expect(err).NotTo(HaveOccurred())
				Expect(snap.OverallStatus).To(Equal(constants.StageDone))
			}
		})
	})
})
