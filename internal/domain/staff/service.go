package staff

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

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// CreateUser registers a staff account, enforcing username and email
// uniqueness before handing the input to storage.
func (s *Service) CreateUser(ctx context.Context, in CreateUser) (*User, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return nil, fmt.Errorf("firstName and lastName are required")
	}

	if existing, err := s.repo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("username %q is already taken", in.Username)
	}
	if existing, err := s.repo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("email %q is already registered", in.Email)
	}

	return s.repo.Create(ctx, in)
}

func (s *Service) UpdateUser(ctx context.Context, id string, in UpdateUser) (*User, error) {
	return s.repo.Update(ctx, id, in)
}

// Login resolves a username to its account. The dashboard performs no real
// credential verification: any password is accepted for a known username.
func (s *Service) Login(ctx context.Context, username string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	return s.repo.GetByUsername(ctx, username)
}
