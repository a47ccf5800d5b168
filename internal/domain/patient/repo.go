package patient

import "context"

// Repository is the storage contract for patients. Lookups that miss return
// (nil, nil). Patients are never deleted.
type Repository interface {
	Get(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Create(ctx context.Context, in CreatePatient) (*Patient, error)
	Update(ctx context.Context, id string, in UpdatePatient) (*Patient, error)
}
