package Workflow

import (
	"errors"
	"testing"
	"time"

	"Evexia/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	calls []string

	markErr    error
	sessionErr error

	appointment Models.Appointment
}

func (s *fakeStore) MarkAppointmentCompleted(appointmentID uint) (Models.Appointment, error) {
	s.calls = append(s.calls, "mark")
	if s.markErr != nil {
		return Models.Appointment{}, s.markErr
	}
	return s.appointment, nil
}

func (s *fakeStore) CreateSession(accountID uint, clientID uint, startedAt time.Time) (Models.Session, error) {
	s.calls = append(s.calls, "session")
	if s.sessionErr != nil {
		return Models.Session{}, s.sessionErr
	}
	return Models.Session{AccountID: accountID, ClientID: clientID, StartedAt: startedAt}, nil
}

func scheduledAppointment() Models.Appointment {
	return Models.Appointment{
		AccountID: 1,
		ClientID:  42,
		StartTime: time.Date(2026, 2, 3, 10, 0, 0, 0, time.Local),
		Status:    Models.AppointmentCompleted,
	}
}

func TestCompleteWithSession(t *testing.T) {
	store := &fakeStore{appointment: scheduledAppointment()}

	completion := CompleteAppointment(store, 5, true)

	assert.Equal(t, CompletedWithSession, completion.State)
	require.NotNil(t, completion.Session)
	assert.Equal(t, uint(42), completion.Session.ClientID)
	assert.Equal(t, store.appointment.StartTime, completion.Session.StartedAt)
	// Exactly one status update, then exactly one session call
	assert.Equal(t, []string{"mark", "session"}, store.calls)
}

func TestCompleteWithoutSession(t *testing.T) {
	store := &fakeStore{appointment: scheduledAppointment()}

	completion := CompleteAppointment(store, 5, false)

	assert.Equal(t, CompletedNoSession, completion.State)
	assert.Nil(t, completion.Session)
	assert.Equal(t, []string{"mark"}, store.calls)
}

func TestCompleteStatusUpdateFailureAbortsCascade(t *testing.T) {
	store := &fakeStore{markErr: errors.New("write rejected")}

	completion := CompleteAppointment(store, 5, true)

	assert.Equal(t, FailedStatusUpdate, completion.State)
	assert.Error(t, completion.Err)
	// No session call is ever issued when the first step fails
	assert.Equal(t, []string{"mark"}, store.calls)
}

func TestCompleteSessionFailureLeavesAppointmentCompleted(t *testing.T) {
	store := &fakeStore{appointment: scheduledAppointment(), sessionErr: errors.New("package lookup failed")}

	completion := CompleteAppointment(store, 5, true)

	assert.Equal(t, FailedSessionCreate, completion.State)
	assert.Error(t, completion.Err)
	assert.Nil(t, completion.Session)
	// The status update is not rolled back
	assert.Equal(t, []string{"mark", "session"}, store.calls)
}
