package insight

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps insights in a process-local map.
type MemoryRepository struct {
	mu       sync.RWMutex
	insights map[string]*Insight
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{insights: make(map[string]*Insight)}
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ins, ok := r.insights[id]
	if !ok {
		return nil, nil
	}
	cp := *ins
	return &cp, nil
}

func (r *MemoryRepository) ListRecent(_ context.Context, limit int) ([]*Insight, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	r.mu.RLock()
	all := make([]*Insight, 0, len(r.insights))
	for _, ins := range r.insights {
		cp := *ins
		all = append(all, &cp)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepository) ListByPatient(_ context.Context, patientID string) ([]*Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Insight
	for _, ins := range r.insights {
		if ins.PatientID == patientID {
			cp := *ins
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepository) Create(_ context.Context, in CreateInsight) (*Insight, error) {
	now := time.Now()
	ins := &Insight{
		ID:          uuid.NewString(),
		PatientID:   in.PatientID,
		DoctorID:    in.DoctorID,
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Confidence:  in.Confidence,
		Priority:    in.Priority,
		Status:      in.Status,
		Data:        in.Data,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ins.Priority == "" {
		ins.Priority = DefaultPriority
	}
	if ins.Status == "" {
		ins.Status = StatusActive
	}
	if ins.Type == "" {
		ins.Type = TypeInfo
	}

	r.mu.Lock()
	r.insights[ins.ID] = ins
	r.mu.Unlock()

	cp := *ins
	return &cp, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, in UpdateInsight) (*Insight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ins, ok := r.insights[id]
	if !ok {
		return nil, nil
	}

	if in.Status != nil {
		ins.Status = *in.Status
	}
	if in.Priority != nil {
		ins.Priority = *in.Priority
	}
	ins.UpdatedAt = time.Now()

	cp := *ins
	return &cp, nil
}

// Put inserts an insight as-is, preserving id and timestamps. Used by
// fixture seeding and tests.
func (r *MemoryRepository) Put(ins *Insight) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ins
	r.insights[ins.ID] = &cp
}
