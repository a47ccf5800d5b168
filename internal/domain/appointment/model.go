package appointment

import "time"

// Appointment types.
const (
	TypeInPerson   = "in-person"
	TypeTelehealth = "telehealth"
)

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DefaultDuration is the appointment length in minutes when none is given.
const DefaultDuration = 30

// Appointment is a scheduled encounter between one patient and one doctor.
type Appointment struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patientId"`
	DoctorID        string    `json:"doctorId"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Duration        int       `json:"duration"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Room            *string   `json:"room,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreateAppointment is the input for scheduling an encounter.
type CreateAppointment struct {
	PatientID       string    `json:"patientId"`
	DoctorID        string    `json:"doctorId"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Duration        int       `json:"duration"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	Room            *string   `json:"room"`
	Notes           *string   `json:"notes"`
}

// UpdateAppointment carries a partial update; nil fields are left untouched.
type UpdateAppointment struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	AppointmentDate *time.Time `json:"appointmentDate"`
	Duration        *int       `json:"duration"`
	Type            *string    `json:"type"`
	Status          *string    `json:"status"`
	Room            *string    `json:"room"`
	Notes           *string    `json:"notes"`
}
