package progress

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scouter-app/receipt-pipeline/constants"
	"github.com/scouter-app/receipt-pipeline/internal/common"
	"github.com/scouter-app/receipt-pipeline/internal/entity"
)

// Tracker holds per-receipt processing sessions in process memory.
// Sessions are advisory UI state; losing them on restart is acceptable
// because the receipt row itself records durable progress.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[string]*session

	retention time.Duration
	log       *slog.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// session guards its snapshot with its own mutex so concurrent updates
// to different sessions never contend.
type session struct {
	mu   sync.Mutex
	snap entity.SessionSnapshot
}

type Option func(*Tracker)

// WithRetention sets how long idle sessions stay queryable.
func WithRetention(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.retention = d
		}
	}
}

func NewTracker(logger *slog.Logger, opts ...Option) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		sessions:  make(map[string]*session),
		retention: time.Hour,
		log:       logger,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	go t.janitor()
	return t
}

// CreateSession registers a new session for a receipt and returns its
// opaque id. All stages start out pending.
func (t *Tracker) CreateSession(receiptID uuid.UUID) string {
	id := uuid.New().String()
	now := time.Now().UTC()

	stages := make([]entity.StageProgress, len(constants.StageOrder))
	for i, name := range constants.StageOrder {
		stages[i] = entity.StageProgress{Name: name, Status: constants.StagePending}
	}

	s := &session{snap: entity.SessionSnapshot{
		SessionID:     id,
		ReceiptID:     receiptID,
		Stages:        stages,
		OverallStatus: constants.StagePending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}}

	t.mu.Lock()
	t.sessions[id] = s
	t.mu.Unlock()

	t.log.Info("progress.session.created", "session_id", id, "receipt_id", receiptID)
	return id
}

// UpdateStage applies a stage transition. Stale and out-of-order updates
// are logged and ignored so retried stages cannot rewind the display.
func (t *Tracker) UpdateStage(sessionID, stage string, status constants.StageStatus, completion float64, errMsg string) error {
	t.mu.RLock()
	s, ok := t.sessions[sessionID]
	t.mu.RUnlock()
	if !ok {
		return common.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.snap.Stages {
		if s.snap.Stages[i].Name == stage {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.log.Warn("progress.update.unknown_stage", "session_id", sessionID, "stage", stage)
		return common.ErrInvalidInput
	}

	cur := &s.snap.Stages[idx]
	if status.Rank() < cur.Status.Rank() {
		t.log.Warn("progress.update.out_of_order",
			"session_id", sessionID, "stage", stage,
			"current", cur.Status, "incoming", status)
		return nil
	}
	if status == cur.Status && completion <= cur.Completion && errMsg == cur.Error {
		return nil
	}

	cur.Status = status
	if completion > cur.Completion {
		cur.Completion = completion
	}
	if status == constants.StageDone {
		cur.Completion = 1
	}
	cur.Error = errMsg

	s.snap.OverallStatus = overall(s.snap.Stages)
	s.snap.UpdatedAt = time.Now().UTC()

	t.log.Info("progress.update",
		"session_id", sessionID, "stage", stage,
		"status", status, "overall", s.snap.OverallStatus)
	return nil
}

// Get returns a copy of the session snapshot, or ErrNotFound.
func (t *Tracker) Get(sessionID string) (entity.SessionSnapshot, error) {
	t.mu.RLock()
	s, ok := t.sessions[sessionID]
	t.mu.RUnlock()
	if !ok {
		return entity.SessionSnapshot{}, common.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.snap), nil
}

// List returns copies of all live sessions, newest first.
func (t *Tracker) List() []entity.SessionSnapshot {
	t.mu.RLock()
	all := make([]*session, 0, len(t.sessions))
	for _, s := range t.sessions {
		all = append(all, s)
	}
	t.mu.RUnlock()

	out := make([]entity.SessionSnapshot, 0, len(all))
	for _, s := range all {
		s.mu.Lock()
		out = append(out, cloneSnapshot(s.snap))
		s.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Close stops the janitor. Idempotent.
func (t *Tracker) Close() {
	t.closeOnce.Do(func() { close(t.done) })
}

func (t *Tracker) janitor() {
	interval := t.retention / 10
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.evict(time.Now().UTC())
		}
	}
}

// evict drops sessions whose last update is older than the retention
// window, regardless of completion state, to bound memory. A session
// still making progress keeps refreshing UpdatedAt and survives.
func (t *Tracker) evict(now time.Time) {
	cutoff := now.Add(-t.retention)

	t.mu.Lock()
	defer t.mu.Unlock()
	for id, s := range t.sessions {
		s.mu.Lock()
		stale := s.snap.UpdatedAt.Before(cutoff)
		s.mu.Unlock()
		if stale {
			delete(t.sessions, id)
			t.log.Info("progress.session.evicted", "session_id", id)
		}
	}
}

func overall(stages []entity.StageProgress) constants.StageStatus {
	allDone := true
	anyStarted := false
	for _, st := range stages {
		switch st.Status {
		case constants.StageFailed:
			return constants.StageFailed
		case constants.StageDone:
			anyStarted = true
		case constants.StageRunning:
			anyStarted = true
			allDone = false
		default:
			allDone = false
		}
	}
	if allDone {
		return constants.StageDone
	}
	if anyStarted {
		return constants.StageRunning
	}
	return constants.StagePending
}

func cloneSnapshot(in entity.SessionSnapshot) entity.SessionSnapshot {
	out := in
	out.Stages = make([]entity.StageProgress, len(in.Stages))
	copy(out.Stages, in.Stages)
	return out
}
