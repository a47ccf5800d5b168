package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/meddesk/meddesk/internal/platform/ai"
)

// Analyzer is the slice of the AI client the insight service depends on.
type Analyzer interface {
	AnalyzeSymptoms(ctx context.Context, input ai.SymptomInput) (*ai.SymptomAnalysis, error)
	CheckDrugInteractions(ctx context.Context, input ai.InteractionInput) (*ai.InteractionReport, error)
	GenerateTreatmentPlan(ctx context.Context, input ai.TreatmentInput) (*ai.TreatmentPlan, error)
}

// Broadcaster pushes insight events to connected dashboard clients.
type Broadcaster interface {
	Broadcast(topic, event string, payload interface{})
}

type Service struct {
	repo     Repository
	analyzer Analyzer
	events   Broadcaster
}

func NewService(repo Repository, analyzer Analyzer, events Broadcaster) *Service {
	return &Service{repo: repo, analyzer: analyzer, events: events}
}

func (s *Service) GetInsight(ctx context.Context, id string) (*Insight, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Insight, error) {
	return s.repo.ListRecent(ctx, limit)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Insight, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) UpdateInsight(ctx context.Context, id string, in UpdateInsight) (*Insight, error) {
	if in.Status != nil {
		switch *in.Status {
		case StatusActive, StatusReviewed, StatusDismissed:
		default:
			return nil, fmt.Errorf("invalid status %q", *in.Status)
		}
	}
	return s.repo.Update(ctx, id, in)
}

// AnalysisRequest identifies who the analysis is for and who asked for it.
type AnalysisRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
}

func (r AnalysisRequest) validate() error {
	if strings.TrimSpace(r.PatientID) == "" {
		return fmt.Errorf("%w: patientId is required", ai.ErrInvalidInput)
	}
	if strings.TrimSpace(r.DoctorID) == "" {
		return fmt.Errorf("%w: doctorId is required", ai.ErrInvalidInput)
	}
	return nil
}

// SymptomAnalysisResult pairs the model output with the persisted insight.
type SymptomAnalysisResult struct {
	Analysis *ai.SymptomAnalysis `json:"analysis"`
	Insight  *Insight            `json:"insight"`
}

// AnalyzeSymptoms proxies the call to the model and persists the structured
// result as an insight. Type and priority derive from the reported risk
// level; confidence is taken from the model verbatim.
func (s *Service) AnalyzeSymptoms(ctx context.Context, req AnalysisRequest, input ai.SymptomInput) (*SymptomAnalysisResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	analysis, err := s.analyzer.AnalyzeSymptoms(ctx, input)
	if err != nil {
		return nil, err
	}

	ins, err := s.record(ctx, req, "Symptom Analysis", analysis.Summary, analysis.RiskLevel, analysis.Confidence, map[string]interface{}{
		"input":  input,
		"result": analysis,
	})
	if err != nil {
		return nil, err
	}
	return &SymptomAnalysisResult{Analysis: analysis, Insight: ins}, nil
}

// InteractionResult pairs the model output with the persisted insight.
type InteractionResult struct {
	Report  *ai.InteractionReport `json:"report"`
	Insight *Insight              `json:"insight"`
}

// CheckDrugInteractions proxies the interaction check to the model and
// persists the result as an insight.
func (s *Service) CheckDrugInteractions(ctx context.Context, req AnalysisRequest, input ai.InteractionInput) (*InteractionResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	report, err := s.analyzer.CheckDrugInteractions(ctx, input)
	if err != nil {
		return nil, err
	}

	ins, err := s.record(ctx, req, "Drug Interaction Check", report.Summary, report.RiskLevel, report.Confidence, map[string]interface{}{
		"input":  input,
		"result": report,
	})
	if err != nil {
		return nil, err
	}
	return &InteractionResult{Report: report, Insight: ins}, nil
}

// TreatmentPlanResult pairs the model output with the persisted insight.
type TreatmentPlanResult struct {
	Plan    *ai.TreatmentPlan `json:"plan"`
	Insight *Insight          `json:"insight"`
}

// GenerateTreatmentPlan proxies plan generation to the model and persists
// the result as an insight.
func (s *Service) GenerateTreatmentPlan(ctx context.Context, req AnalysisRequest, input ai.TreatmentInput) (*TreatmentPlanResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	plan, err := s.analyzer.GenerateTreatmentPlan(ctx, input)
	if err != nil {
		return nil, err
	}

	ins, err := s.record(ctx, req, "Treatment Plan", plan.Summary, plan.RiskLevel, plan.Confidence, map[string]interface{}{
		"input":  input,
		"result": plan,
	})
	if err != nil {
		return nil, err
	}
	return &TreatmentPlanResult{Plan: plan, Insight: ins}, nil
}

func (s *Service) record(ctx context.Context, req AnalysisRequest, title, description, risk string, confidence int, data map[string]interface{}) (*Insight, error) {
	ins, err := s.repo.Create(ctx, CreateInsight{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Title:       title,
		Description: description,
		Type:        ai.TypeForRisk(risk),
		Confidence:  confidence,
		Priority:    ai.PriorityForRisk(risk),
		Data:        data,
	})
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.Broadcast("insights", "insight.created", ins)
	}
	return ins, nil
}
