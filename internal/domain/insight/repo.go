package insight

import "context"

// Repository is the storage contract for AI insights. Lookups that miss
// return (nil, nil). Insights have no delete path.
type Repository interface {
	Get(ctx context.Context, id string) (*Insight, error)
	// ListRecent returns at most limit insights ordered by descending
	// creation time. A non-positive limit means DefaultLimit.
	ListRecent(ctx context.Context, limit int) ([]*Insight, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Insight, error)
	Create(ctx context.Context, in CreateInsight) (*Insight, error)
	Update(ctx context.Context, id string, in UpdateInsight) (*Insight, error)
}
