package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps appointments in a process-local map. Filtered
// queries are full scans over tens of records.
type MemoryRepository struct {
	mu           sync.RWMutex
	appointments map[string]*Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{appointments: make(map[string]*Appointment)}
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *MemoryRepository) ListByDate(_ context.Context, day time.Time) ([]*Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Appointment
	for _, a := range r.appointments {
		if !a.AppointmentDate.Before(start) && a.AppointmentDate.Before(end) {
			cp := *a
			result = append(result, &cp)
		}
	}
	sortByDate(result)
	return result, nil
}

func (r *MemoryRepository) ListByPatient(_ context.Context, patientID string) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			cp := *a
			result = append(result, &cp)
		}
	}
	sortByDate(result)
	return result, nil
}

func (r *MemoryRepository) ListByDoctor(_ context.Context, doctorID string) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Appointment
	for _, a := range r.appointments {
		if a.DoctorID == doctorID {
			cp := *a
			result = append(result, &cp)
		}
	}
	sortByDate(result)
	return result, nil
}

func sortByDate(list []*Appointment) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].AppointmentDate.Before(list[j].AppointmentDate)
	})
}

func (r *MemoryRepository) Create(_ context.Context, in CreateAppointment) (*Appointment, error) {
	now := time.Now()
	a := &Appointment{
		ID:              uuid.NewString(),
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		Title:           in.Title,
		Description:     in.Description,
		AppointmentDate: in.AppointmentDate,
		Duration:        in.Duration,
		Type:            in.Type,
		Status:          in.Status,
		Room:            in.Room,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if a.Duration <= 0 {
		a.Duration = DefaultDuration
	}
	if a.Type == "" {
		a.Type = TypeInPerson
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}

	r.mu.Lock()
	r.appointments[a.ID] = a
	r.mu.Unlock()

	cp := *a
	return &cp, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, in UpdateAppointment) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}

	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Description != nil {
		a.Description = in.Description
	}
	if in.AppointmentDate != nil {
		a.AppointmentDate = *in.AppointmentDate
	}
	if in.Duration != nil {
		a.Duration = *in.Duration
	}
	if in.Type != nil {
		a.Type = *in.Type
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.Room != nil {
		a.Room = in.Room
	}
	if in.Notes != nil {
		a.Notes = in.Notes
	}
	a.UpdatedAt = time.Now()

	cp := *a
	return &cp, nil
}

// Put inserts an appointment as-is, preserving id and timestamps. Used by
// fixture seeding and tests.
func (r *MemoryRepository) Put(a *Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.appointments[a.ID] = &cp
}
