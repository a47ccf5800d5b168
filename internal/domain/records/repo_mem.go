package records

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps medical records in a process-local map.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*MedicalRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]*MedicalRecord)}
}

// clone copies a record including its map and slice fields so callers
// cannot mutate stored state.
func clone(rec *MedicalRecord) *MedicalRecord {
	cp := *rec
	if rec.Data != nil {
		cp.Data = make(map[string]interface{}, len(rec.Data))
		for k, v := range rec.Data {
			cp.Data[k] = v
		}
	}
	if rec.Attachments != nil {
		cp.Attachments = append([]string(nil), rec.Attachments...)
	}
	return &cp
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return clone(rec), nil
}

func (r *MemoryRepository) ListByPatient(_ context.Context, patientID string) ([]*MedicalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*MedicalRecord
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			result = append(result, clone(rec))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepository) Create(_ context.Context, in CreateMedicalRecord) (*MedicalRecord, error) {
	now := time.Now()
	rec := &MedicalRecord{
		ID:            uuid.NewString(),
		PatientID:     in.PatientID,
		DoctorID:      in.DoctorID,
		AppointmentID: in.AppointmentID,
		Title:         in.Title,
		Description:   in.Description,
		RecordType:    in.RecordType,
		Data:          in.Data,
		Attachments:   in.Attachments,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if rec.RecordType == "" {
		rec.RecordType = TypeNote
	}

	r.mu.Lock()
	r.records[rec.ID] = rec
	r.mu.Unlock()

	return clone(rec), nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, in UpdateMedicalRecord) (*MedicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}

	if in.Title != nil {
		rec.Title = *in.Title
	}
	if in.Description != nil {
		rec.Description = in.Description
	}
	if in.RecordType != nil {
		rec.RecordType = *in.RecordType
	}
	if in.Data != nil {
		rec.Data = in.Data
	}
	if in.Attachments != nil {
		rec.Attachments = *in.Attachments
	}
	rec.UpdatedAt = time.Now()

	return clone(rec), nil
}

// Put inserts a record as-is, preserving id and timestamps. Used by
// fixture seeding and tests.
func (r *MemoryRepository) Put(rec *MedicalRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ID] = clone(rec)
}
