package constants

// ReceiptStatus is the canonical status for rows in receipt.
type ReceiptStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploaded       ReceiptStatus = "uploaded"             // image persisted to object storage
	StatusOCRDone        ReceiptStatus = "ocr_done"             // raw text extracted
	StatusAIDone         ReceiptStatus = "ai_done"              // structured fields extracted
	StatusAwaitingReview ReceiptStatus = "awaiting_user_review" // confident enough for the default review flow
	StatusLowConfidence  ReceiptStatus = "ai_low_confidence"    // below threshold, flagged for manual correction
	StatusVerified       ReceiptStatus = "verified"             // user confirmed, terminal
	StatusFailed         ReceiptStatus = "failed"               // terminal failure
)

// Statuses holds the allowed values for the receipt status column.
var Statuses = []string{
	string(StatusUploaded),
	string(StatusOCRDone),
	string(StatusAIDone),
	string(StatusAwaitingReview),
	string(StatusLowConfidence),
	string(StatusVerified),
	string(StatusFailed),
}

// statusRank orders the happy path. The two review routing states share
// a rank: a receipt reaches exactly one of them out of ai_done.
var statusRank = map[ReceiptStatus]int{
	StatusUploaded:       1,
	StatusOCRDone:        2,
	StatusAIDone:         3,
	StatusAwaitingReview: 4,
	StatusLowConfidence:  4,
	StatusVerified:       5,
}

// Rank returns the position of s along the pipeline, 0 if unknown or failed.
func (s ReceiptStatus) Rank() int {
	return statusRank[s]
}

// IsTerminal reports whether no further automatic transition occurs from s.
func (s ReceiptStatus) IsTerminal() bool {
	return s == StatusVerified || s == StatusFailed
}

// CanTransition reports whether the state machine permits from -> to.
// Receipts never move backward and never skip a state.
func CanTransition(from, to ReceiptStatus) bool {
	switch from {
	case StatusUploaded:
		return to == StatusOCRDone
	case StatusOCRDone:
		return to == StatusAIDone
	case StatusAIDone:
		return to == StatusAwaitingReview || to == StatusLowConfidence
	case StatusAwaitingReview, StatusLowConfidence:
		return to == StatusVerified
	default:
		return false
	}
}

// Source identifies how a receipt entered the system.
type Source string

const (
	SourceUpload Source = "upload"
	SourceEmail  Source = "email"
)

// Sources holds the allowed values for the receipt source column.
var Sources = []string{string(SourceUpload), string(SourceEmail)}

// StageStatus is the per-stage progress state held in the session tracker.
type StageStatus string

const (
	StagePending StageStatus = "pending"
	StageRunning StageStatus = "running"
	StageDone    StageStatus = "done"
	StageFailed  StageStatus = "failed"
)

var stageStatusRank = map[StageStatus]int{
	StagePending: 0,
	StageRunning: 1,
	StageDone:    2,
	StageFailed:  2,
}

// Rank returns the position of st in the pending -> running -> {done|failed} order.
func (st StageStatus) Rank() int {
	return stageStatusRank[st]
}

// Pipeline stage names, in execution order.
const (
	StageUpload       = "upload"
	StageOCR          = "ocr"
	StageAIExtraction = "ai_extraction"
	StageFinalize     = "finalize"
)

// StageOrder is the fixed stage sequence driven by the orchestrator.
var StageOrder = []string{StageUpload, StageOCR, StageAIExtraction, StageFinalize}
