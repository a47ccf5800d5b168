package records

import "context"

// Repository is the storage contract for medical records. Lookups that
// find nothing return (nil, nil).
type Repository interface {
	Get(ctx context.Context, id string) (*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string) ([]*MedicalRecord, error)
	Create(ctx context.Context, in CreateMedicalRecord) (*MedicalRecord, error)
	Update(ctx context.Context, id string, in UpdateMedicalRecord) (*MedicalRecord, error)
}
