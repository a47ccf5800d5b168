package patient

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps patients in a process-local map. Listing is a full
// scan; fine at demonstration scale.
type MemoryRepository struct {
	mu       sync.RWMutex
	patients map[string]*Patient
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{patients: make(map[string]*Patient)}
}

func clone(p *Patient) *Patient {
	cp := *p
	if p.MedicalHistory != nil {
		mh := *p.MedicalHistory
		mh.Conditions = append([]string(nil), p.MedicalHistory.Conditions...)
		mh.Surgeries = append([]string(nil), p.MedicalHistory.Surgeries...)
		cp.MedicalHistory = &mh
	}
	cp.Allergies = append([]string(nil), p.Allergies...)
	cp.Medications = append([]string(nil), p.Medications...)
	return &cp
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	return clone(p), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Patient, 0, len(r.patients))
	for _, p := range r.patients {
		result = append(result, clone(p))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepository) Create(_ context.Context, in CreatePatient) (*Patient, error) {
	now := time.Now()
	p := &Patient{
		ID:               uuid.NewString(),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		DateOfBirth:      in.DateOfBirth,
		Gender:           in.Gender,
		Address:          in.Address,
		EmergencyContact: in.EmergencyContact,
		MedicalHistory:   in.MedicalHistory,
		Allergies:        in.Allergies,
		Medications:      in.Medications,
		ProfileImage:     in.ProfileImage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	r.mu.Lock()
	r.patients[p.ID] = p
	r.mu.Unlock()

	return clone(p), nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, in UpdatePatient) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, nil
	}

	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.Email != nil {
		p.Email = in.Email
	}
	if in.Phone != nil {
		p.Phone = in.Phone
	}
	if in.DateOfBirth != nil {
		p.DateOfBirth = in.DateOfBirth
	}
	if in.Gender != nil {
		p.Gender = in.Gender
	}
	if in.Address != nil {
		p.Address = in.Address
	}
	if in.EmergencyContact != nil {
		p.EmergencyContact = in.EmergencyContact
	}
	if in.MedicalHistory != nil {
		p.MedicalHistory = in.MedicalHistory
	}
	if in.Allergies != nil {
		p.Allergies = *in.Allergies
	}
	if in.Medications != nil {
		p.Medications = *in.Medications
	}
	if in.ProfileImage != nil {
		p.ProfileImage = in.ProfileImage
	}
	p.UpdatedAt = time.Now()

	return clone(p), nil
}

// Put inserts a patient as-is, preserving id and timestamps. Used by fixture
// seeding and tests.
func (r *MemoryRepository) Put(p *Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patients[p.ID] = clone(p)
}
