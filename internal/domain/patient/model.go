package patient

import "time"

// MedicalHistory is the free-form structured history attached to a patient.
type MedicalHistory struct {
	Conditions []string `json:"conditions,omitempty"`
	Surgeries  []string `json:"surgeries,omitempty"`
}

// Patient is a care recipient of the practice.
type Patient struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Email            *string         `json:"email,omitempty"`
	Phone            *string         `json:"phone,omitempty"`
	DateOfBirth      *string         `json:"dateOfBirth,omitempty"`
	Gender           *string         `json:"gender,omitempty"`
	Address          *string         `json:"address,omitempty"`
	EmergencyContact *string         `json:"emergencyContact,omitempty"`
	MedicalHistory   *MedicalHistory `json:"medicalHistory,omitempty"`
	Allergies        []string        `json:"allergies,omitempty"`
	Medications      []string        `json:"medications,omitempty"`
	ProfileImage     *string         `json:"profileImage,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// CreatePatient is the input for registering a patient.
type CreatePatient struct {
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Email            *string         `json:"email"`
	Phone            *string         `json:"phone"`
	DateOfBirth      *string         `json:"dateOfBirth"`
	Gender           *string         `json:"gender"`
	Address          *string         `json:"address"`
	EmergencyContact *string         `json:"emergencyContact"`
	MedicalHistory   *MedicalHistory `json:"medicalHistory"`
	Allergies        []string        `json:"allergies"`
	Medications      []string        `json:"medications"`
	ProfileImage     *string         `json:"profileImage"`
}

// UpdatePatient carries a partial update; nil fields are left untouched.
type UpdatePatient struct {
	FirstName        *string         `json:"firstName"`
	LastName         *string         `json:"lastName"`
	Email            *string         `json:"email"`
	Phone            *string         `json:"phone"`
	DateOfBirth      *string         `json:"dateOfBirth"`
	Gender           *string         `json:"gender"`
	Address          *string         `json:"address"`
	EmergencyContact *string         `json:"emergencyContact"`
	MedicalHistory   *MedicalHistory `json:"medicalHistory"`
	Allergies        *[]string       `json:"allergies"`
	Medications      *[]string       `json:"medications"`
	ProfileImage     *string         `json:"profileImage"`
}
