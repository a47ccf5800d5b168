package records

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetRecord(ctx context.Context, id string) (*MedicalRecord, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*MedicalRecord, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) CreateRecord(ctx context.Context, in CreateMedicalRecord) (*MedicalRecord, error) {
	if strings.TrimSpace(in.PatientID) == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	if strings.TrimSpace(in.DoctorID) == "" {
		return nil, fmt.Errorf("doctorId is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if in.RecordType != "" {
		if err := validateRecordType(in.RecordType); err != nil {
			return nil, err
		}
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) UpdateRecord(ctx context.Context, id string, in UpdateMedicalRecord) (*MedicalRecord, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	if in.RecordType != nil {
		if err := validateRecordType(*in.RecordType); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, in)
}

func validateRecordType(t string) error {
	switch t {
	case TypeDiagnosis, TypeLabResult, TypePrescription, TypeNote, TypeImaging:
		return nil
	default:
		return fmt.Errorf("invalid recordType %q", t)
	}
}
