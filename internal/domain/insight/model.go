package insight

import "time"

// Insight types shown on the dashboard.
const (
	TypeWarning = "warning"
	TypeSuccess = "success"
	TypeError   = "error"
	TypeInfo    = "info"
)

// Insight statuses.
const (
	StatusActive    = "active"
	StatusReviewed  = "reviewed"
	StatusDismissed = "dismissed"
)

// Default values applied at creation.
const (
	DefaultPriority = "medium"
	DefaultLimit    = 10
)

// Insight is a stored result of an AI analysis call, attached to a patient
// and attributed to the requesting doctor. Confidence always comes from the
// upstream model; nothing is recomputed locally.
type Insight struct {
	ID          string                 `json:"id"`
	PatientID   string                 `json:"patientId"`
	DoctorID    string                 `json:"doctorId"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        string                 `json:"type"`
	Confidence  int                    `json:"confidence"`
	Priority    string                 `json:"priority"`
	Status      string                 `json:"status"`
	Data        map[string]interface{} `json:"data,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// CreateInsight is the input for persisting an analysis result.
type CreateInsight struct {
	PatientID   string                 `json:"patientId"`
	DoctorID    string                 `json:"doctorId"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        string                 `json:"type"`
	Confidence  int                    `json:"confidence"`
	Priority    string                 `json:"priority"`
	Status      string                 `json:"status"`
	Data        map[string]interface{} `json:"data"`
}

// UpdateInsight carries a partial update (status and priority are the fields
// the dashboard changes); nil fields are left untouched.
type UpdateInsight struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}
