// Package Workflow coordinates the multi-step domain operations: the
// appointment completion cascade, the session-creation procedure and the
// balance/aggregation queries the rest of the app must go through.
package Workflow

import (
	"Evexia/Models"
	"time"
)

const (
	CompletionPending    = "pending"
	CompletedNoSession   = "completed_no_session"
	CompletedWithSession = "completed_with_session"
	FailedStatusUpdate   = "failed_status_update"
	FailedSessionCreate  = "failed_session_create"
)

// Completion is the outcome of the two-step completion cascade. A failed
// session step does not roll back the status update, so both partial states
// are representable.
type Completion struct {
	State   string          `json:"state"`
	Session *Models.Session `json:"session,omitempty"`
	Err     error           `json:"-"`
}

// CompletionStore is the two remote calls the cascade sequences.
type CompletionStore interface {
	MarkAppointmentCompleted(appointmentID uint) (Models.Appointment, error)
	CreateSession(accountID uint, clientID uint, startedAt time.Time) (Models.Session, error)
}

// CompleteAppointment marks the appointment completed and, when the operator
// asked for it, records a session for the occurrence. The status update
// always runs first; if it fails nothing else is attempted. A session
// failure after a successful status update leaves the appointment completed
// and is reported separately.
func CompleteAppointment(store CompletionStore, appointmentID uint, recordSession bool) Completion {
	appointment, err := store.MarkAppointmentCompleted(appointmentID)
	if err != nil {
		return Completion{State: FailedStatusUpdate, Err: err}
	}

	if !recordSession {
		return Completion{State: CompletedNoSession}
	}

	session, err := store.CreateSession(appointment.AccountID, appointment.ClientID, appointment.StartTime)
	if err != nil {
		return Completion{State: FailedSessionCreate, Err: err}
	}

	return Completion{State: CompletedWithSession, Session: &session}
}
