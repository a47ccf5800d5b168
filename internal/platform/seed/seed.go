// Package seed loads the fixture data set served by a fresh dev instance:
// one doctor, three patients, a day of appointments, recent insights and a
// small inbox. IDs are fixed so restarts keep the same URLs working.
package seed

import (
	"time"

	"github.com/meddesk/meddesk/internal/domain/appointment"
	"github.com/meddesk/meddesk/internal/domain/insight"
	"github.com/meddesk/meddesk/internal/domain/messaging"
	"github.com/meddesk/meddesk/internal/domain/patient"
	"github.com/meddesk/meddesk/internal/domain/records"
	"github.com/meddesk/meddesk/internal/domain/staff"
)

// Stores collects the in-memory repositories the fixtures go into.
type Stores struct {
	Users        *staff.MemoryRepository
	Patients     *patient.MemoryRepository
	Appointments *appointment.MemoryRepository
	Insights     *insight.MemoryRepository
	Messages     *messaging.MemoryRepository
	Records      *records.MemoryRepository
}

func strptr(s string) *string { return &s }

// Apply writes the fixture data set and returns the seeded doctor, which
// the dev auth layer uses as the logged-in identity.
func Apply(s Stores) *staff.User {
	now := time.Now()
	today := func(hour, min int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	}

	doctor := &staff.User{
		ID:             "user-sarah-chen",
		Username:       "dr.chen",
		Email:          "sarah.chen@meddesk.example",
		FirstName:      "Sarah",
		LastName:       "Chen",
		Role:           "doctor",
		Specialization: strptr("Internal Medicine"),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.Users.Put(doctor)

	patients := []*patient.Patient{
		{
			ID:          "patient-emma-wilson",
			FirstName:   "Emma",
			LastName:    "Wilson",
			Email:       strptr("emma.wilson@example.com"),
			Phone:       strptr("555-0101"),
			DateOfBirth: strptr("1985-03-12"),
			Gender:      strptr("female"),
			MedicalHistory: &patient.MedicalHistory{
				Conditions: []string{"hypertension"},
			},
			Allergies:   []string{"penicillin"},
			Medications: []string{"lisinopril 10mg"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "patient-james-rodriguez",
			FirstName:   "James",
			LastName:    "Rodriguez",
			Email:       strptr("james.rodriguez@example.com"),
			Phone:       strptr("555-0102"),
			DateOfBirth: strptr("1972-11-03"),
			Gender:      strptr("male"),
			MedicalHistory: &patient.MedicalHistory{
				Conditions: []string{"type 2 diabetes", "hyperlipidemia"},
				Surgeries:  []string{"appendectomy (2001)"},
			},
			Medications: []string{"metformin 500mg", "atorvastatin 20mg"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "patient-lily-park",
			FirstName:   "Lily",
			LastName:    "Park",
			Email:       strptr("lily.park@example.com"),
			Phone:       strptr("555-0103"),
			DateOfBirth: strptr("1994-07-28"),
			Gender:      strptr("female"),
			Allergies:   []string{"latex"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, p := range patients {
		s.Patients.Put(p)
	}

	appointments := []*appointment.Appointment{
		{
			ID:              "appt-wilson-checkup",
			PatientID:       "patient-emma-wilson",
			DoctorID:        doctor.ID,
			Title:           "Annual physical",
			AppointmentDate: today(9, 0),
			Duration:        appointment.DefaultDuration,
			Type:            appointment.TypeInPerson,
			Status:          appointment.StatusScheduled,
			Room:            strptr("204"),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "appt-rodriguez-followup",
			PatientID:       "patient-james-rodriguez",
			DoctorID:        doctor.ID,
			Title:           "Diabetes follow-up",
			Description:     strptr("Review latest A1C and adjust metformin if needed"),
			AppointmentDate: today(11, 30),
			Duration:        45,
			Type:            appointment.TypeInPerson,
			Status:          appointment.StatusScheduled,
			Room:            strptr("204"),
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "appt-park-telehealth",
			PatientID:       "patient-lily-park",
			DoctorID:        doctor.ID,
			Title:           "Telehealth consult",
			AppointmentDate: today(14, 15),
			Duration:        appointment.DefaultDuration,
			Type:            appointment.TypeTelehealth,
			Status:          appointment.StatusScheduled,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
	for _, a := range appointments {
		s.Appointments.Put(a)
	}

	insights := []*insight.Insight{
		{
			ID:          "insight-wilson-bp",
			PatientID:   "patient-emma-wilson",
			DoctorID:    doctor.ID,
			Title:       "Blood pressure trending up",
			Description: "Last three readings exceed the target range for this patient.",
			Type:        insight.TypeWarning,
			Confidence:  82,
			Priority:    "high",
			Status:      insight.StatusActive,
			CreatedAt:   now.Add(-2 * time.Hour),
			UpdatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "insight-rodriguez-a1c",
			PatientID:   "patient-james-rodriguez",
			DoctorID:    doctor.ID,
			Title:       "A1C within target",
			Description: "Current regimen is holding A1C at 6.8; no change recommended.",
			Type:        insight.TypeSuccess,
			Confidence:  91,
			Priority:    "low",
			Status:      insight.StatusActive,
			CreatedAt:   now.Add(-4 * time.Hour),
			UpdatedAt:   now.Add(-4 * time.Hour),
		},
		{
			ID:          "insight-park-intake",
			PatientID:   "patient-lily-park",
			DoctorID:    doctor.ID,
			Title:       "Intake forms incomplete",
			Description: "Allergy history on file but medication list has not been collected.",
			Type:        insight.TypeInfo,
			Confidence:  67,
			Priority:    insight.DefaultPriority,
			Status:      insight.StatusActive,
			CreatedAt:   now.Add(-6 * time.Hour),
			UpdatedAt:   now.Add(-6 * time.Hour),
		},
	}
	for _, ins := range insights {
		s.Insights.Put(ins)
	}

	messages := []*messaging.Message{
		{
			ID:          "msg-lab-results",
			SenderID:    "user-front-desk",
			ReceiverID:  doctor.ID,
			PatientID:   strptr("patient-james-rodriguez"),
			Subject:     strptr("Lab results uploaded"),
			Content:     "Rodriguez A1C and lipid panel results are in the chart.",
			MessageType: messaging.TypeMedical,
			CreatedAt:   now.Add(-90 * time.Minute),
		},
		{
			ID:          "msg-reschedule",
			SenderID:    "user-front-desk",
			ReceiverID:  doctor.ID,
			PatientID:   strptr("patient-emma-wilson"),
			Subject:     strptr("Reschedule request"),
			Content:     "Emma Wilson asked to move her physical to next week if possible.",
			MessageType: messaging.TypeAppointment,
			CreatedAt:   now.Add(-45 * time.Minute),
		},
		{
			ID:          "msg-reminder",
			SenderID:    doctor.ID,
			ReceiverID:  "user-front-desk",
			Content:     "Please confirm the 2:15 telehealth link went out to Lily Park.",
			MessageType: messaging.TypeGeneral,
			CreatedAt:   now.Add(-20 * time.Minute),
		},
	}
	for _, m := range messages {
		s.Messages.Put(m)
	}

	s.Records.Put(&records.MedicalRecord{
		ID:          "record-rodriguez-a1c",
		PatientID:   "patient-james-rodriguez",
		DoctorID:    doctor.ID,
		Title:       "A1C result",
		Description: strptr("A1C 6.8%, down from 7.2% three months ago."),
		RecordType:  records.TypeLabResult,
		Data:        map[string]interface{}{"a1c": 6.8},
		CreatedAt:   now.Add(-3 * time.Hour),
		UpdatedAt:   now.Add(-3 * time.Hour),
	})

	return doctor
}
