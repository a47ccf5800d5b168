package appointment

import (
	"context"
	"time"
)

// Repository is the storage contract for appointments. Lookups that miss
// return (nil, nil). Appointments are never deleted; cancellation is a
// status change.
type Repository interface {
	Get(ctx context.Context, id string) (*Appointment, error)
	// ListByDate returns appointments whose appointmentDate falls on the
	// same calendar day as day, in server-local time, ordered by time.
	ListByDate(ctx context.Context, day time.Time) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error)
	Create(ctx context.Context, in CreateAppointment) (*Appointment, error)
	Update(ctx context.Context, id string, in UpdateAppointment) (*Appointment, error)
}
