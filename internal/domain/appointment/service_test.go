package appointment

import (
	"context"
	"testing"
	"time"
)

func TestService_CreateAppointment_Validation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	now := time.Now()

	cases := []struct {
		name string
		in   CreateAppointment
	}{
		{"missing patient", CreateAppointment{DoctorID: "d", Title: "T", AppointmentDate: now}},
		{"missing doctor", CreateAppointment{PatientID: "p", Title: "T", AppointmentDate: now}},
		{"missing title", CreateAppointment{PatientID: "p", DoctorID: "d", AppointmentDate: now}},
		{"missing date", CreateAppointment{PatientID: "p", DoctorID: "d", Title: "T"}},
		{"bad type", CreateAppointment{PatientID: "p", DoctorID: "d", Title: "T", AppointmentDate: now, Type: "phone"}},
		{"bad status", CreateAppointment{PatientID: "p", DoctorID: "d", Title: "T", AppointmentDate: now, Status: "done"}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateAppointment(ctx, tc.in); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestService_CreateAppointment_Telehealth(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	a, err := svc.CreateAppointment(context.Background(), CreateAppointment{
		PatientID:       "p-1",
		DoctorID:        "d-1",
		Title:           "Video follow-up",
		AppointmentDate: time.Now(),
		Type:            TypeTelehealth,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Type != TypeTelehealth {
		t.Errorf("expected telehealth, got %s", a.Type)
	}
}

func TestService_UpdateAppointment_RejectsBadStatus(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	bad := "done"
	if _, err := svc.UpdateAppointment(context.Background(), "any", UpdateAppointment{Status: &bad}); err == nil {
		t.Error("expected invalid status to be rejected")
	}
}
