package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks caller mistakes, as opposed to upstream model
// failures.
var ErrInvalidInput = errors.New("invalid input")

// Risk levels reported by the model.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// SymptomInput describes a patient presentation for analysis.
type SymptomInput struct {
	Symptoms       []string `json:"symptoms"`
	Duration       string   `json:"duration,omitempty"`
	Severity       string   `json:"severity,omitempty"`
	PatientAge     *int     `json:"patientAge,omitempty"`
	MedicalHistory []string `json:"medicalHistory,omitempty"`
}

// SymptomAnalysis is the model's structured assessment.
type SymptomAnalysis struct {
	Summary            string   `json:"summary"`
	RiskLevel          string   `json:"riskLevel"`
	Confidence         int      `json:"confidence"`
	PossibleConditions []string `json:"possibleConditions,omitempty"`
	Recommendations    []string `json:"recommendations,omitempty"`
	Urgency            string   `json:"urgency,omitempty"`
}

// InteractionInput lists medications to check against each other.
type InteractionInput struct {
	Medications []string `json:"medications"`
}

// DrugInteraction describes one flagged pairing.
type DrugInteraction struct {
	Drugs       []string `json:"drugs"`
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
}

// InteractionReport is the model's interaction assessment.
type InteractionReport struct {
	Summary         string            `json:"summary"`
	RiskLevel       string            `json:"riskLevel"`
	Confidence      int               `json:"confidence"`
	Interactions    []DrugInteraction `json:"interactions,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
}

// TreatmentInput describes a condition to plan treatment for.
type TreatmentInput struct {
	Condition          string   `json:"condition"`
	PatientAge         *int     `json:"patientAge,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	CurrentMedications []string `json:"currentMedications,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// TreatmentStep is one step of a generated plan.
type TreatmentStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TreatmentPlan is the model's generated plan.
type TreatmentPlan struct {
	Summary    string          `json:"summary"`
	RiskLevel  string          `json:"riskLevel"`
	Confidence int             `json:"confidence"`
	Steps      []TreatmentStep `json:"steps,omitempty"`
	FollowUp   string          `json:"followUp,omitempty"`
}

const symptomSystemPrompt = `You are a clinical decision-support assistant for licensed medical staff.
Analyze the reported symptoms and respond with a single JSON object:
{"summary": string, "riskLevel": "low"|"medium"|"high"|"critical", "confidence": integer 0-100,
"possibleConditions": [string], "recommendations": [string], "urgency": string}.
Respond with JSON only.`

const interactionSystemPrompt = `You are a pharmacology assistant for licensed medical staff.
Check the given medication list for interactions and respond with a single JSON object:
{"summary": string, "riskLevel": "low"|"medium"|"high"|"critical", "confidence": integer 0-100,
"interactions": [{"drugs": [string], "severity": string, "description": string}],
"recommendations": [string]}. Respond with JSON only.`

const treatmentSystemPrompt = `You are a clinical planning assistant for licensed medical staff.
Draft a treatment plan for the given condition and respond with a single JSON object:
{"summary": string, "riskLevel": "low"|"medium"|"high"|"critical", "confidence": integer 0-100,
"steps": [{"title": string, "description": string}], "followUp": string}. Respond with JSON only.`

// AnalyzeSymptoms asks the model to assess a symptom presentation.
func (c *Client) AnalyzeSymptoms(ctx context.Context, input SymptomInput) (*SymptomAnalysis, error) {
	if len(input.Symptoms) == 0 {
		return nil, fmt.Errorf("%w: at least one symptom is required", ErrInvalidInput)
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}

	var out SymptomAnalysis
	if err := c.complete(ctx, symptomSystemPrompt, string(payload), &out); err != nil {
		return nil, err
	}
	out.RiskLevel = normalizeRisk(out.RiskLevel)
	return &out, nil
}

// CheckDrugInteractions asks the model to flag interactions in a medication list.
func (c *Client) CheckDrugInteractions(ctx context.Context, input InteractionInput) (*InteractionReport, error) {
	if len(input.Medications) < 2 {
		return nil, fmt.Errorf("%w: at least two medications are required", ErrInvalidInput)
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}

	var out InteractionReport
	if err := c.complete(ctx, interactionSystemPrompt, string(payload), &out); err != nil {
		return nil, err
	}
	out.RiskLevel = normalizeRisk(out.RiskLevel)
	return &out, nil
}

// GenerateTreatmentPlan asks the model to draft a plan for a condition.
func (c *Client) GenerateTreatmentPlan(ctx context.Context, input TreatmentInput) (*TreatmentPlan, error) {
	if strings.TrimSpace(input.Condition) == "" {
		return nil, fmt.Errorf("%w: condition is required", ErrInvalidInput)
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}

	var out TreatmentPlan
	if err := c.complete(ctx, treatmentSystemPrompt, string(payload), &out); err != nil {
		return nil, err
	}
	out.RiskLevel = normalizeRisk(out.RiskLevel)
	return &out, nil
}

// TypeForRisk maps a model risk level onto the insight type shown on the
// dashboard.
func TypeForRisk(risk string) string {
	switch normalizeRisk(risk) {
	case RiskLow:
		return "success"
	case RiskMedium:
		return "info"
	case RiskHigh:
		return "warning"
	case RiskCritical:
		return "error"
	default:
		return "info"
	}
}

// PriorityForRisk maps a model risk level onto an insight priority.
func PriorityForRisk(risk string) string {
	switch normalizeRisk(risk) {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskCritical:
		return "urgent"
	default:
		return "medium"
	}
}

func normalizeRisk(risk string) string {
	switch strings.ToLower(strings.TrimSpace(risk)) {
	case "low", "minimal":
		return RiskLow
	case "medium", "moderate":
		return RiskMedium
	case "high":
		return RiskHigh
	case "critical", "severe", "urgent":
		return RiskCritical
	default:
		return ""
	}
}
