package records

import "time"

// Record types.
const (
	TypeDiagnosis    = "diagnosis"
	TypeLabResult    = "lab_result"
	TypePrescription = "prescription"
	TypeNote         = "note"
	TypeImaging      = "imaging"
)

// MedicalRecord is a clinical entry in a patient's chart, authored by a
// staff user and optionally tied to the appointment it came out of.
type MedicalRecord struct {
	ID            string                 `json:"id"`
	PatientID     string                 `json:"patientId"`
	DoctorID      string                 `json:"doctorId"`
	AppointmentID *string                `json:"appointmentId,omitempty"`
	Title         string                 `json:"title"`
	Description   *string                `json:"description,omitempty"`
	RecordType    string                 `json:"recordType"`
	Data          map[string]interface{} `json:"data,omitempty"`
	Attachments   []string               `json:"attachments,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// CreateMedicalRecord is the input for adding a chart entry.
type CreateMedicalRecord struct {
	PatientID     string                 `json:"patientId"`
	DoctorID      string                 `json:"doctorId"`
	AppointmentID *string                `json:"appointmentId"`
	Title         string                 `json:"title"`
	Description   *string                `json:"description"`
	RecordType    string                 `json:"recordType"`
	Data          map[string]interface{} `json:"data"`
	Attachments   []string               `json:"attachments"`
}

// UpdateMedicalRecord carries partial changes. Nil fields are left as-is.
type UpdateMedicalRecord struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	RecordType  *string                `json:"recordType"`
	Data        map[string]interface{} `json:"data"`
	Attachments *[]string              `json:"attachments"`
}
