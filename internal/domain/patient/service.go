package patient

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

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreatePatient(ctx context.Context, in CreatePatient) (*Patient, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return nil, fmt.Errorf("firstName and lastName are required")
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) UpdatePatient(ctx context.Context, id string, in UpdatePatient) (*Patient, error) {
	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		return nil, fmt.Errorf("firstName must not be empty")
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		return nil, fmt.Errorf("lastName must not be empty")
	}
	return s.repo.Update(ctx, id, in)
}
