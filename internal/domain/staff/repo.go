package staff

import "context"

// Repository is the storage contract for staff accounts. Lookups that miss
// return (nil, nil): absence is an expected outcome, not an error.
type Repository interface {
	Get(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, in CreateUser) (*User, error)
	Update(ctx context.Context, id string, in UpdateUser) (*User, error)
}
