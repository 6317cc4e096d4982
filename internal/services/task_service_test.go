package services

import (
	"context"
	"testing"

	"echo_api/internal/database"
)

const testTaskID = "3d594650-3436-11e5-bebb-002590f2a2e2"

func validTask() database.Record {
	return database.Record{
		"study_id": testStudyID,
		"type":     "camera",
		"title":    "Record your morning routine",
	}
}

func TestTaskServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("appends after the last task", func(t *testing.T) {
		store := &fakeStore{
			createID: testTaskID,
			readRows: []database.Record{
				{"id": "a", "order_index": int32(2)},
				{"id": "b", "order_index": int32(5)},
				{"id": "c", "order_index": int32(1)},
			},
		}
		service := NewTaskService(store)

		if _, err := service.Create(ctx, validTask()); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		call := store.lastCall(t)
		if call.method != "create" || call.table != "tasks" {
			t.Fatalf("unexpected store call %+v", call)
		}
		if call.data["order_index"] != 6 {
			t.Errorf("order_index = %v, want 6", call.data["order_index"])
		}
	})

	t.Run("first task of a study gets index 1", func(t *testing.T) {
		store := &fakeStore{createID: testTaskID}
		service := NewTaskService(store)

		if _, err := service.Create(ctx, validTask()); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got := store.lastCall(t).data["order_index"]; got != 1 {
			t.Errorf("order_index = %v, want 1", got)
		}
	})

	t.Run("explicit order_index is kept", func(t *testing.T) {
		store := &fakeStore{createID: testTaskID}
		service := NewTaskService(store)

		task := validTask()
		task["order_index"] = 9
		if _, err := service.Create(ctx, task); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		call := store.lastCall(t)
		if call.method != "create" {
			t.Fatalf("store call = %+v, want a direct create with no read", call)
		}
		if call.data["order_index"] != 9 {
			t.Errorf("order_index = %v, want 9", call.data["order_index"])
		}
	})

	t.Run("rejects bad payloads", func(t *testing.T) {
		store := &fakeStore{}
		service := NewTaskService(store)

		_, err := service.Create(ctx, database.Record{})
		assertValidation(t, err)

		task := validTask()
		task["study_id"] = "not-a-uuid"
		_, err = service.Create(ctx, task)
		assertValidation(t, err)

		task = validTask()
		task["type"] = "karaoke"
		_, err = service.Create(ctx, task)
		assertValidation(t, err)

		for _, field := range []string{"study_id", "type", "title"} {
			task := validTask()
			delete(task, field)
			_, err := service.Create(ctx, task)
			assertValidation(t, err)
		}
	})
}

func TestTaskServiceRead(t *testing.T) {
	ctx := context.Background()

	t.Run("sorts by order index", func(t *testing.T) {
		store := &fakeStore{
			readRows: []database.Record{
				{"id": "b", "order_index": int32(3)},
				{"id": "a", "order_index": int32(1)},
				{"id": "c", "order_index": int32(2)},
			},
		}
		service := NewTaskService(store)

		tasks, err := service.Read(ctx, database.Record{"study_id": testStudyID})
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}

		got := make([]string, len(tasks))
		for i, task := range tasks {
			got[i] = task["id"].(string)
		}
		want := []string{"a", "b", "c"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("sorted ids = %v, want %v", got, want)
			}
		}
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		service := NewTaskService(&fakeStore{})
		_, err := service.Read(ctx, database.Record{"study_id": "nope"})
		assertValidation(t, err)
	})
}

func TestTaskServiceUpdate(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{updateID: testTaskID}
	service := NewTaskService(store)

	_, err := service.Update(ctx, "not-a-uuid", database.Record{"title": "x"})
	assertValidation(t, err)

	_, err = service.Update(ctx, testTaskID, database.Record{"type": "karaoke"})
	assertValidation(t, err)

	if _, err := service.Update(ctx, testTaskID, database.Record{"title": "Renamed"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	call := store.lastCall(t)
	if call.table != "tasks" || call.query["id"] != testTaskID {
		t.Errorf("update call = %+v", call)
	}
}

func TestTaskServiceReorder(t *testing.T) {
	ctx := context.Background()

	t.Run("updates each task in sequence", func(t *testing.T) {
		store := &fakeStore{updateID: testTaskID}
		service := NewTaskService(store)

		ids := []string{
			"11111111-1111-4111-8111-111111111111",
			"22222222-2222-4222-8222-222222222222",
		}
		if err := service.Reorder(ctx, testStudyID, ids); err != nil {
			t.Fatalf("Reorder() error = %v", err)
		}

		if len(store.calls) != len(ids) {
			t.Fatalf("store received %d calls, want %d", len(store.calls), len(ids))
		}
		for i, call := range store.calls {
			if call.method != "update" {
				t.Fatalf("call %d method = %s", i, call.method)
			}
			if call.query["id"] != ids[i] || call.query["study_id"] != testStudyID {
				t.Errorf("call %d query = %v", i, call.query)
			}
			if call.data["order_index"] != i+1 {
				t.Errorf("call %d order_index = %v, want %d", i, call.data["order_index"], i+1)
			}
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		service := NewTaskService(&fakeStore{})

		assertValidation(t, service.Reorder(ctx, testStudyID, nil))
		assertValidation(t, service.Reorder(ctx, "bad", []string{testTaskID}))
		assertValidation(t, service.Reorder(ctx, testStudyID, []string{"bad"}))
	})
}
