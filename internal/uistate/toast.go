package uistate

import (
	"time"

	"github.com/google/uuid"
)

// DefaultToastDuration is how long a toast stays up when the caller does not
// say otherwise.
const DefaultToastDuration = 5 * time.Second

// Severity classifies a toast for presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Toast is one transient notification. Duration 0 means the toast stays until
// explicitly dismissed.
type Toast struct {
	ID        string
	Message   string
	Severity  Severity
	Duration  time.Duration
	CreatedAt time.Time
}

// newToastID returns a process-unique toast identifier. IDs are never reused,
// so a late auto-dismiss can only ever target the toast it was scheduled for.
func newToastID() string {
	return uuid.NewString()
}
