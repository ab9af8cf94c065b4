package Validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAppointmentValid(t *testing.T) {
	form := AppointmentForm{
		ClientID:  7,
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		EndClock:  "10:30",
	}
	assert.True(t, ValidateAppointment(form).OK())

	// End time is optional
	form.EndClock = ""
	assert.True(t, ValidateAppointment(form).OK())
}

func TestValidateAppointmentRequiredFields(t *testing.T) {
	violations := ValidateAppointment(AppointmentForm{})
	assert.Equal(t, MsgRequired, violations["client_id"])
	assert.Equal(t, MsgRequired, violations["start_time"])
}

func TestValidateAppointmentEndAfterStart(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	cases := []struct {
		clock string
		msg   string
	}{
		{"08:00", MsgEndAfterStart},
		{"09:00", MsgEndAfterStart}, // equal is not after
		{"09:01", ""},
		{"23:59", ""},
		{"nonsense", MsgInvalidTime},
	}

	for _, tc := range cases {
		form := AppointmentForm{ClientID: 1, StartTime: start, EndClock: tc.clock}
		violations := ValidateAppointment(form)
		if tc.msg == "" {
			assert.NotContains(t, violations, "end_time", "clock %q should pass", tc.clock)
		} else {
			assert.Equal(t, tc.msg, violations["end_time"], "clock %q", tc.clock)
		}
	}
}

func TestResolveEndCombinesStartDate(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	end, err := ResolveEnd(start, "14:45")
	require.NoError(t, err)
	assert.Equal(t, 2026, end.Year())
	assert.Equal(t, time.March, end.Month())
	assert.Equal(t, 10, end.Day())
	assert.Equal(t, 14, end.Hour())
	assert.Equal(t, 45, end.Minute())
	assert.Equal(t, start.Location(), end.Location())
}
