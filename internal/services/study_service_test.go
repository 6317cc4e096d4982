package services

import (
	"context"
	"testing"

	"echo_api/internal/database"
)

const (
	testOrgID   = "0f8fad5b-d9cb-469f-a165-70867728950e"
	testUserID  = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	testStudyID = "9b2d7a34-1c1f-4e5a-8f0d-3a9c1b2d4e5f"
)

func validStudy() database.Record {
	return database.Record{
		"organization_id": testOrgID,
		"created_by":      testUserID,
		"name":            "Pilot A",
	}
}

func TestStudyServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("fills defaults", func(t *testing.T) {
		store := &fakeStore{createID: testStudyID}
		service := NewStudyService(store)

		id, err := service.Create(ctx, validStudy())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if id != testStudyID {
			t.Errorf("Create() = %v, want %v", id, testStudyID)
		}

		call := store.lastCall(t)
		if call.method != "create" || call.table != "studies" {
			t.Fatalf("unexpected store call %+v", call)
		}
		if call.data["status"] != "draft" {
			t.Errorf("status default = %v, want draft", call.data["status"])
		}
		if call.data["target_participants"] != 50 {
			t.Errorf("target_participants default = %v, want 50", call.data["target_participants"])
		}
		if call.data["duration_days"] != 7 {
			t.Errorf("duration_days default = %v, want 7", call.data["duration_days"])
		}
	})

	t.Run("keeps caller values over defaults", func(t *testing.T) {
		store := &fakeStore{createID: testStudyID}
		service := NewStudyService(store)

		study := validStudy()
		study["status"] = "active"
		study["target_participants"] = 120
		if _, err := service.Create(ctx, study); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		call := store.lastCall(t)
		if call.data["status"] != "active" {
			t.Errorf("status = %v, want active", call.data["status"])
		}
		if call.data["target_participants"] != 120 {
			t.Errorf("target_participants = %v, want 120", call.data["target_participants"])
		}
	})

	t.Run("rejects incomplete payloads", func(t *testing.T) {
		store := &fakeStore{}
		service := NewStudyService(store)

		_, err := service.Create(ctx, database.Record{})
		assertValidation(t, err)

		for _, field := range []string{"organization_id", "created_by", "name"} {
			study := validStudy()
			delete(study, field)
			_, err := service.Create(ctx, study)
			assertValidation(t, err)
		}
		if len(store.calls) != 0 {
			t.Errorf("store received %d calls for invalid payloads", len(store.calls))
		}
	})
}

func TestStudyServiceUpdateDelete(t *testing.T) {
	ctx := context.Background()

	store := &fakeStore{updateID: testStudyID, deleteID: testStudyID}
	service := NewStudyService(store)

	if _, err := service.Update(ctx, "", database.Record{"name": "x"}); err == nil {
		t.Error("Update() with empty id expected an error")
	}
	if _, err := service.Update(ctx, testStudyID, database.Record{}); err == nil {
		t.Error("Update() with empty data expected an error")
	}

	if _, err := service.Update(ctx, testStudyID, database.Record{"name": "Renamed"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	call := store.lastCall(t)
	if call.table != "studies" || call.query["id"] != testStudyID {
		t.Errorf("update call = %+v", call)
	}

	if _, err := service.Delete(ctx, testStudyID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	call = store.lastCall(t)
	if call.method != "delete" || call.query["id"] != testStudyID {
		t.Errorf("delete call = %+v", call)
	}
}
