package insight

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/meddesk/meddesk/internal/platform/ai"
)

// -- Mock analyzer --

type mockAnalyzer struct {
	symptom     *ai.SymptomAnalysis
	interaction *ai.InteractionReport
	plan        *ai.TreatmentPlan
	err         error
}

func (m *mockAnalyzer) AnalyzeSymptoms(_ context.Context, _ ai.SymptomInput) (*ai.SymptomAnalysis, error) {
	return m.symptom, m.err
}

func (m *mockAnalyzer) CheckDrugInteractions(_ context.Context, _ ai.InteractionInput) (*ai.InteractionReport, error) {
	return m.interaction, m.err
}

func (m *mockAnalyzer) GenerateTreatmentPlan(_ context.Context, _ ai.TreatmentInput) (*ai.TreatmentPlan, error) {
	return m.plan, m.err
}

type recordingBroadcaster struct {
	topics []string
	events []string
}

func (r *recordingBroadcaster) Broadcast(topic, event string, _ interface{}) {
	r.topics = append(r.topics, topic)
	r.events = append(r.events, event)
}

func TestService_AnalyzeSymptoms_PersistsInsight(t *testing.T) {
	repo := NewMemoryRepository()
	events := &recordingBroadcaster{}
	svc := NewService(repo, &mockAnalyzer{
		symptom: &ai.SymptomAnalysis{
			Summary:    "possible pneumonia",
			RiskLevel:  ai.RiskHigh,
			Confidence: 88,
		},
	}, events)

	result, err := svc.AnalyzeSymptoms(context.Background(),
		AnalysisRequest{PatientID: "p-1", DoctorID: "d-1"},
		ai.SymptomInput{Symptoms: []string{"fever", "cough"}},
	)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	ins := result.Insight
	if ins.Type != TypeWarning {
		t.Errorf("high risk should map to warning, got %s", ins.Type)
	}
	if ins.Priority != "high" {
		t.Errorf("high risk should map to high priority, got %s", ins.Priority)
	}
	if ins.Confidence != 88 {
		t.Errorf("confidence must come from the model verbatim, got %d", ins.Confidence)
	}
	if ins.Description != "possible pneumonia" {
		t.Errorf("unexpected description %q", ins.Description)
	}
	if ins.Data == nil {
		t.Error("expected raw payload to be stored")
	}

	stored, _ := repo.Get(context.Background(), ins.ID)
	if stored == nil {
		t.Fatal("expected insight to be persisted")
	}

	if len(events.events) != 1 || events.events[0] != "insight.created" {
		t.Errorf("expected one insight.created event, got %v", events.events)
	}
	if events.topics[0] != "insights" {
		t.Errorf("expected insights topic, got %s", events.topics[0])
	}
}

func TestService_AnalyzeSymptoms_RequiresPatientAndDoctor(t *testing.T) {
	svc := NewService(NewMemoryRepository(), &mockAnalyzer{}, nil)

	_, err := svc.AnalyzeSymptoms(context.Background(), AnalysisRequest{DoctorID: "d-1"}, ai.SymptomInput{})
	if !errors.Is(err, ai.ErrInvalidInput) {
		t.Errorf("expected invalid-input error, got %v", err)
	}

	_, err = svc.AnalyzeSymptoms(context.Background(), AnalysisRequest{PatientID: "p-1"}, ai.SymptomInput{})
	if !errors.Is(err, ai.ErrInvalidInput) {
		t.Errorf("expected invalid-input error, got %v", err)
	}
}

func TestService_AnalyzeSymptoms_UpstreamFailureCreatesNothing(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, &mockAnalyzer{err: fmt.Errorf("model unavailable")}, nil)

	_, err := svc.AnalyzeSymptoms(context.Background(),
		AnalysisRequest{PatientID: "p-1", DoctorID: "d-1"},
		ai.SymptomInput{Symptoms: []string{"fever"}},
	)
	if err == nil {
		t.Fatal("expected upstream error to propagate")
	}

	list, _ := repo.ListRecent(context.Background(), 0)
	if len(list) != 0 {
		t.Error("no insight should be persisted on upstream failure")
	}
}

func TestService_CheckDrugInteractions_CriticalMapsToError(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, &mockAnalyzer{
		interaction: &ai.InteractionReport{
			Summary:    "dangerous combination",
			RiskLevel:  ai.RiskCritical,
			Confidence: 95,
		},
	}, nil)

	result, err := svc.CheckDrugInteractions(context.Background(),
		AnalysisRequest{PatientID: "p-1", DoctorID: "d-1"},
		ai.InteractionInput{Medications: []string{"warfarin", "aspirin"}},
	)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if result.Insight.Type != TypeError {
		t.Errorf("critical risk should map to error, got %s", result.Insight.Type)
	}
	if result.Insight.Priority != "urgent" {
		t.Errorf("critical risk should map to urgent priority, got %s", result.Insight.Priority)
	}
}

func TestService_GenerateTreatmentPlan_LowRiskMapsToSuccess(t *testing.T) {
	svc := NewService(NewMemoryRepository(), &mockAnalyzer{
		plan: &ai.TreatmentPlan{
			Summary:    "routine management",
			RiskLevel:  ai.RiskLow,
			Confidence: 70,
		},
	}, nil)

	result, err := svc.GenerateTreatmentPlan(context.Background(),
		AnalysisRequest{PatientID: "p-1", DoctorID: "d-1"},
		ai.TreatmentInput{Condition: "hypertension"},
	)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if result.Insight.Type != TypeSuccess {
		t.Errorf("low risk should map to success, got %s", result.Insight.Type)
	}
	if result.Insight.Title != "Treatment Plan" {
		t.Errorf("unexpected title %q", result.Insight.Title)
	}
}

func TestService_UpdateInsight_RejectsBadStatus(t *testing.T) {
	svc := NewService(NewMemoryRepository(), &mockAnalyzer{}, nil)

	bad := "archived"
	if _, err := svc.UpdateInsight(context.Background(), "any", UpdateInsight{Status: &bad}); err == nil {
		t.Error("expected invalid status to be rejected")
	}
}
