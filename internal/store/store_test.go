package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/order"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := s.Stats(); err != nil {
		t.Fatalf("Stats on fresh database: %v", err)
	}

	// Reopen to verify the schema persists at the expected path.
	s.Close()
	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	_ = filepath.Join(dir, ".umi", "planner.db")
}

func TestGroupPageScoping(t *testing.T) {
	s := openTestStore(t)

	pageID, err := s.AddPage("School", "book", 0)
	if err != nil {
		t.Fatalf("AddPage: %v", err)
	}

	if _, err := s.AddGroup("Main A", 0, nil); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := s.AddGroup("Main B", 1, nil); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := s.AddGroup("School A", 0, &pageID); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}

	main, err := s.Groups(nil)
	if err != nil {
		t.Fatalf("Groups(nil): %v", err)
	}
	if len(main) != 2 {
		t.Fatalf("expected 2 main-page groups, got %d", len(main))
	}
	for _, g := range main {
		if g.PageID != nil {
			t.Errorf("main-page group %q has page_id %v", g.Name, *g.PageID)
		}
	}

	scoped, err := s.Groups(&pageID)
	if err != nil {
		t.Fatalf("Groups(page): %v", err)
	}
	if len(scoped) != 1 || scoped[0].Name != "School A" {
		t.Fatalf("unexpected page groups: %+v", scoped)
	}
	if scoped[0].PageID == nil || *scoped[0].PageID != pageID {
		t.Errorf("page group lost its page_id: %+v", scoped[0])
	}
}

func TestObjectCRUD(t *testing.T) {
	s := openTestStore(t)

	groupID, _ := s.AddGroup("G", 0, nil)
	id, err := s.AddObject(groupID, "Essay", 0, 4)
	if err != nil {
		t.Fatalf("AddObject: %v", err)
	}

	got, err := s.Object(id)
	if err != nil {
		t.Fatalf("Object: %v", err)
	}
	if got.Name != "Essay" || got.DefaultDuration != 4 || got.GroupID != groupID {
		t.Errorf("unexpected object: %+v", got)
	}

	if err := s.RenameObject(id, "Thesis"); err != nil {
		t.Fatalf("RenameObject: %v", err)
	}
	got, _ = s.Object(id)
	if got.Name != "Thesis" {
		t.Errorf("rename did not stick: %+v", got)
	}

	if err := s.DeleteObject(id); err != nil {
		t.Fatalf("DeleteObject: %v", err)
	}
	if _, err := s.Object(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestAddFieldRejectsUnknownType(t *testing.T) {
	s := openTestStore(t)
	groupID, _ := s.AddGroup("G", 0, nil)
	objID, _ := s.AddObject(groupID, "O", 0, 0)

	if _, err := s.AddField(objID, model.FieldType("blob"), "x", "y"); err == nil {
		t.Fatal("expected error for unknown field type")
	}

	if _, err := s.AddField(objID, model.FieldText, "notes", "hello"); err != nil {
		t.Fatalf("AddField(text): %v", err)
	}
	fields, err := s.Fields(objID)
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	if len(fields) != 1 || fields[0].Type != model.FieldText {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}

func TestApplyOrdersBatch(t *testing.T) {
	s := openTestStore(t)
	groupID, _ := s.AddGroup("G", 0, nil)

	var ids []int64
	for i := 0; i < 3; i++ {
		id, _ := s.AddObject(groupID, "obj", i, 0)
		ids = append(ids, id)
	}

	// Reverse the order with full-value assignments.
	assignments := []order.Assignment{
		{ID: ids[0], Order: 2},
		{ID: ids[1], Order: 1},
		{ID: ids[2], Order: 0},
	}
	if err := s.ApplyObjectOrders(assignments); err != nil {
		t.Fatalf("ApplyObjectOrders: %v", err)
	}

	objects, _ := s.ObjectsInGroup(groupID)
	if objects[0].ID != ids[2] || objects[2].ID != ids[0] {
		t.Fatalf("unexpected order after batch: %+v", objects)
	}

	// Re-applying the same batch converges to the same state (idempotence).
	if err := s.ApplyObjectOrders(assignments); err != nil {
		t.Fatalf("ApplyObjectOrders (retry): %v", err)
	}
	again, _ := s.ObjectsInGroup(groupID)
	for i := range objects {
		if objects[i].ID != again[i].ID || objects[i].Order != again[i].Order {
			t.Fatalf("retry diverged: %+v vs %+v", objects, again)
		}
	}
}

func TestApplyObjectDropReparents(t *testing.T) {
	s := openTestStore(t)
	a, _ := s.AddGroup("A", 0, nil)
	b, _ := s.AddGroup("B", 1, nil)
	objID, _ := s.AddObject(a, "x", 0, 0)

	err := s.ApplyObjectDrop(objID, b, true, []order.Assignment{{ID: objID, Order: 0}})
	if err != nil {
		t.Fatalf("ApplyObjectDrop: %v", err)
	}

	got, _ := s.Object(objID)
	if got.GroupID != b {
		t.Errorf("expected object in group %d, got %d", b, got.GroupID)
	}
	inA, _ := s.ObjectsInGroup(a)
	if len(inA) != 0 {
		t.Errorf("group A should be empty, got %+v", inA)
	}
}

func TestScheduleItemsScopedByGroup(t *testing.T) {
	s := openTestStore(t)
	g1, _ := s.AddGroup("G1", 0, nil)
	g2, _ := s.AddGroup("G2", 1, nil)

	_, err := s.AddScheduleItem(model.ScheduleItem{
		GroupID: g1, ObjectID: 1, ObjectName: "Study", Day: model.Mon, Time: "09:00", Duration: 4,
	})
	if err != nil {
		t.Fatalf("AddScheduleItem: %v", err)
	}
	if _, err := s.AddScheduleItem(model.ScheduleItem{
		GroupID: g2, ObjectID: 2, ObjectName: "Gym", Day: model.Mon, Time: "09:00", Duration: 2,
	}); err != nil {
		t.Fatalf("AddScheduleItem: %v", err)
	}

	scope1, err := s.ScheduleItems(g1)
	if err != nil {
		t.Fatalf("ScheduleItems: %v", err)
	}
	if len(scope1) != 1 || scope1[0].ObjectName != "Study" {
		t.Fatalf("unexpected scope: %+v", scope1)
	}

	all, _ := s.AllScheduleItems()
	if len(all) != 2 {
		t.Fatalf("expected 2 items total, got %d", len(all))
	}
}

func TestTodoRoundTrip(t *testing.T) {
	s := openTestStore(t)

	id, err := s.AddTodo("buy milk", 0, 1700000000)
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}
	if err := s.SetTodoCompleted(id, true); err != nil {
		t.Fatalf("SetTodoCompleted: %v", err)
	}

	got, err := s.Todo(id)
	if err != nil {
		t.Fatalf("Todo: %v", err)
	}
	if !got.Completed || got.Text != "buy milk" || got.CreatedAt != 1700000000 {
		t.Errorf("unexpected todo: %+v", got)
	}
}

func TestAttachmentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	g, _ := s.AddGroup("G", 0, nil)
	objID, _ := s.AddObject(g, "O", 0, 0)

	data := []byte{0x89, 0x50, 0x4e, 0x47}
	id, err := s.AddAttachment(objID, "pic.png", "image/png", data)
	if err != nil {
		t.Fatalf("AddAttachment: %v", err)
	}

	listed, err := s.Attachments(objID)
	if err != nil {
		t.Fatalf("Attachments: %v", err)
	}
	if len(listed) != 1 || listed[0].Data != nil {
		t.Fatalf("listing should omit blob data: %+v", listed)
	}

	full, err := s.Attachment(id)
	if err != nil {
		t.Fatalf("Attachment: %v", err)
	}
	if string(full.Data) != string(data) || full.MimeType != "image/png" {
		t.Errorf("unexpected attachment: %+v", full)
	}
}
