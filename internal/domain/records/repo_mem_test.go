package records

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	desc := "Type 2 diabetes, newly diagnosed"
	created, err := repo.Create(ctx, CreateMedicalRecord{
		PatientID:   "p-1",
		DoctorID:    "u-1",
		Title:       "Diabetes diagnosis",
		Description: &desc,
		RecordType:  TypeDiagnosis,
		Data:        map[string]interface{}{"hba1c": 7.8},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Title != "Diabetes diagnosis" || got.RecordType != TypeDiagnosis {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestMemoryRepository_CreateDefaultsToNote(t *testing.T) {
	repo := NewMemoryRepository()

	rec, err := repo.Create(context.Background(), CreateMedicalRecord{
		PatientID: "p-1",
		DoctorID:  "u-1",
		Title:     "Follow-up observations",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.RecordType != TypeNote {
		t.Errorf("expected default recordType note, got %s", rec.RecordType)
	}
}

func TestMemoryRepository_GetMissing(t *testing.T) {
	repo := NewMemoryRepository()

	rec, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Error("expected nil for missing id")
	}
}

func TestMemoryRepository_ListByPatient_NewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	now := time.Now()

	repo.Put(&MedicalRecord{ID: "r-old", PatientID: "p-1", DoctorID: "u-1", Title: "old", RecordType: TypeNote, CreatedAt: now.Add(-time.Hour)})
	repo.Put(&MedicalRecord{ID: "r-new", PatientID: "p-1", DoctorID: "u-1", Title: "new", RecordType: TypeNote, CreatedAt: now})
	repo.Put(&MedicalRecord{ID: "r-other", PatientID: "p-2", DoctorID: "u-1", Title: "other", RecordType: TypeNote, CreatedAt: now})

	list, err := repo.ListByPatient(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records for p-1, got %d", len(list))
	}
	if list[0].ID != "r-new" || list[1].ID != "r-old" {
		t.Errorf("expected newest first, got %s then %s", list[0].ID, list[1].ID)
	}
}

func TestMemoryRepository_UpdateMerge(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	rec, _ := repo.Create(ctx, CreateMedicalRecord{
		PatientID:   "p-1",
		DoctorID:    "u-1",
		Title:       "CBC panel",
		RecordType:  TypeLabResult,
		Attachments: []string{"cbc.pdf"},
	})

	time.Sleep(2 * time.Millisecond)

	title := "CBC panel (corrected)"
	empty := []string{}
	updated, err := repo.Update(ctx, rec.ID, UpdateMedicalRecord{
		Title:       &title,
		Attachments: &empty,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != title {
		t.Errorf("title not updated: %s", updated.Title)
	}
	if updated.RecordType != TypeLabResult {
		t.Error("recordType must survive a partial update")
	}
	if len(updated.Attachments) != 0 {
		t.Error("supplying an empty attachments slice must clear the list")
	}
	if !updated.UpdatedAt.After(rec.UpdatedAt) {
		t.Error("updatedAt must advance")
	}
}

func TestMemoryRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryRepository()

	title := "x"
	rec, err := repo.Update(context.Background(), "missing", UpdateMedicalRecord{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Error("expected nil for missing id")
	}
}

func TestMemoryRepository_CopySemantics(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, CreateMedicalRecord{
		PatientID:  "p-1",
		DoctorID:   "u-1",
		Title:      "Imaging",
		RecordType: TypeImaging,
		Data:       map[string]interface{}{"modality": "xray"},
	})

	created.Title = "mutated"
	created.Data["modality"] = "mutated"

	got, _ := repo.Get(ctx, created.ID)
	if got.Title != "Imaging" {
		t.Error("caller mutation leaked into stored record")
	}
	if got.Data["modality"] != "xray" {
		t.Error("caller mutation leaked into stored data map")
	}
}
