package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/scouter-app/receipt-pipeline/constants"
)

// StageProgress is the observable state of one pipeline stage.
type StageProgress struct {
	Name       string                `json:"name"`
	Status     constants.StageStatus `json:"status"`
	Completion float64               `json:"completion_fraction"`
	Error      string                `json:"error,omitempty"`
}

// SessionSnapshot is an immutable copy of a tracked pipeline run,
// returned to polling clients.
type SessionSnapshot struct {
	SessionID     string                `json:"session_id"`
	ReceiptID     uuid.UUID             `json:"receipt_id"`
	Stages        []StageProgress       `json:"stages"`
	OverallStatus constants.StageStatus `json:"overall_status"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
