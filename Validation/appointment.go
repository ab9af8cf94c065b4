package Validation

import (
	"time"
)

// AppointmentForm is the creatable field set of an appointment. EndClock is
// a time of day ("15:04"); the end instant is the appointment's start date
// combined with that clock.
type AppointmentForm struct {
	ClientID  uint      `json:"client_id"`
	StartTime time.Time `json:"start_time"`
	EndClock  string    `json:"end_clock"`
	Notes     string    `json:"notes"`
}

// ResolveEnd combines the start's calendar date with an end clock, in the
// start's location.
func ResolveEnd(start time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(start.Year(), start.Month(), start.Day(),
		t.Hour(), t.Minute(), 0, 0, start.Location()), nil
}

// ValidateAppointment checks an appointment form. The end time, when given,
// must resolve to an instant strictly after the start.
func ValidateAppointment(form AppointmentForm) Violations {
	violations := Violations{}

	if form.ClientID == 0 {
		violations["client_id"] = MsgRequired
	}
	if form.StartTime.IsZero() {
		violations["start_time"] = MsgRequired
	}
	if form.EndClock != "" && !form.StartTime.IsZero() {
		end, err := ResolveEnd(form.StartTime, form.EndClock)
		if err != nil {
			violations["end_time"] = MsgInvalidTime
		} else if !end.After(form.StartTime) {
			violations["end_time"] = MsgEndAfterStart
		}
	}

	return violations
}
