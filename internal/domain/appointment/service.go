package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByDate(ctx context.Context, day time.Time) ([]*Appointment, error) {
	return s.repo.ListByDate(ctx, day)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) CreateAppointment(ctx context.Context, in CreateAppointment) (*Appointment, error) {
	if strings.TrimSpace(in.PatientID) == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	if strings.TrimSpace(in.DoctorID) == "" {
		return nil, fmt.Errorf("doctorId is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if in.AppointmentDate.IsZero() {
		return nil, fmt.Errorf("appointmentDate is required")
	}
	if in.Type != "" && in.Type != TypeInPerson && in.Type != TypeTelehealth {
		return nil, fmt.Errorf("type must be %q or %q", TypeInPerson, TypeTelehealth)
	}
	if in.Status != "" && !validStatus(in.Status) {
		return nil, fmt.Errorf("invalid status %q", in.Status)
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, in UpdateAppointment) (*Appointment, error) {
	if in.Status != nil && !validStatus(*in.Status) {
		return nil, fmt.Errorf("invalid status %q", *in.Status)
	}
	if in.Type != nil && *in.Type != TypeInPerson && *in.Type != TypeTelehealth {
		return nil, fmt.Errorf("type must be %q or %q", TypeInPerson, TypeTelehealth)
	}
	return s.repo.Update(ctx, id, in)
}

func validStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
