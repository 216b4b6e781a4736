package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSnapshotFileNames(t *testing.T) {
	st := openTestStore(t)
	dir := t.TempDir()

	if _, err := st.AddGroup("Weekly Plan", 0, nil); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := st.AddGroup("Weekly Plan", 1, nil); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}

	written, err := Snapshot(st, dir)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	want := []string{"weekly-plan.yaml", "weekly-plan-2.yaml", "todos.yaml", "pages.yaml"}
	if len(written) != len(want) {
		t.Fatalf("written = %v, want %v", written, want)
	}
	for i := range want {
		if written[i] != want[i] {
			t.Errorf("written[%d] = %q, want %q", i, written[i], want[i])
		}
		if _, err := os.Stat(filepath.Join(dir, written[i])); err != nil {
			t.Errorf("missing file %s: %v", written[i], err)
		}
	}
}

func TestGroupRoundTrip(t *testing.T) {
	src := openTestStore(t)
	dir := t.TempDir()

	pageID, _ := src.AddPage("School", "book", 0)
	groupID, _ := src.AddGroup("Classes", 0, &pageID)
	objID, _ := src.AddObject(groupID, "Math", 0, 4)
	if _, err := src.AddField(objID, model.FieldText, "notes", "algebra"); err != nil {
		t.Fatalf("AddField: %v", err)
	}
	if _, err := src.AddAttachment(objID, "syllabus.pdf", "application/pdf", []byte("%PDF")); err != nil {
		t.Fatalf("AddAttachment: %v", err)
	}
	if _, err := src.AddScheduleItem(model.ScheduleItem{
		GroupID: groupID, ObjectID: objID, ObjectName: "Math",
		Day: model.Mon, Time: "09:00", Duration: 4,
	}); err != nil {
		t.Fatalf("AddScheduleItem: %v", err)
	}

	if _, err := Snapshot(src, dir); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	dst := openTestStore(t)
	res, err := Restore(dst, filepath.Join(dir, "classes.yaml"))
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if res.Kind != KindGroup || len(res.Warnings) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	pages, _ := dst.Pages()
	if len(pages) != 1 || pages[0].Name != "School" {
		t.Fatalf("page not recreated: %+v", pages)
	}
	groups, _ := dst.Groups(&pages[0].ID)
	if len(groups) != 1 || groups[0].Name != "Classes" {
		t.Fatalf("group not recreated: %+v", groups)
	}
	objects, _ := dst.ObjectsInGroup(groups[0].ID)
	if len(objects) != 1 || objects[0].Name != "Math" || objects[0].DefaultDuration != 4 {
		t.Fatalf("object not recreated: %+v", objects)
	}
	fields, _ := dst.Fields(objects[0].ID)
	if len(fields) != 1 || fields[0].Value != "algebra" {
		t.Errorf("field not recreated: %+v", fields)
	}
	atts, _ := dst.Attachments(objects[0].ID)
	if len(atts) != 1 {
		t.Fatalf("attachment not recreated: %+v", atts)
	}
	full, _ := dst.Attachment(atts[0].ID)
	if string(full.Data) != "%PDF" {
		t.Errorf("attachment data lost: %q", full.Data)
	}
	items, _ := dst.ScheduleItems(groups[0].ID)
	if len(items) != 1 || items[0].Time != "09:00" || items[0].Duration != 4 {
		t.Errorf("schedule not recreated: %+v", items)
	}
}

func TestRestoreSkipsConflictingPlacements(t *testing.T) {
	src := openTestStore(t)
	dir := t.TempDir()

	groupID, _ := src.AddGroup("G", 0, nil)
	aID, _ := src.AddObject(groupID, "a", 0, 4)
	bID, _ := src.AddObject(groupID, "b", 1, 4)
	// Overlapping raw rows can only come from an edited file; Restore must
	// keep the first and warn on the second.
	src.AddScheduleItem(model.ScheduleItem{GroupID: groupID, ObjectID: aID, ObjectName: "a", Day: model.Mon, Time: "09:00", Duration: 4})
	src.AddScheduleItem(model.ScheduleItem{GroupID: groupID, ObjectID: bID, ObjectName: "b", Day: model.Mon, Time: "09:30", Duration: 4})

	if _, err := Snapshot(src, dir); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	dst := openTestStore(t)
	res, err := Restore(dst, filepath.Join(dir, "g.yaml"))
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", res.Warnings)
	}
	groups, _ := dst.Groups(nil)
	items, _ := dst.ScheduleItems(groups[0].ID)
	if len(items) != 1 || items[0].ObjectName != "a" {
		t.Errorf("expected only the first placement, got %+v", items)
	}
}

func TestTodosRoundTrip(t *testing.T) {
	src := openTestStore(t)
	dir := t.TempDir()

	src.AddTodo("first", 0, 100)
	id, _ := src.AddTodo("second", 1, 200)
	src.SetTodoCompleted(id, true)

	if _, err := Snapshot(src, dir); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	dst := openTestStore(t)
	if _, err := Restore(dst, filepath.Join(dir, "todos.yaml")); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	todos, _ := dst.Todos()
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(todos))
	}
	if todos[0].Text != "first" || todos[0].Completed {
		t.Errorf("first todo wrong: %+v", todos[0])
	}
	if todos[1].Text != "second" || !todos[1].Completed || todos[1].CreatedAt != 200 {
		t.Errorf("second todo wrong: %+v", todos[1])
	}
}

func TestRestoreRejectsUnknownKind(t *testing.T) {
	dst := openTestStore(t)
	path := filepath.Join(t.TempDir(), "weird.yaml")
	if err := os.WriteFile(path, []byte("kind: mystery\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Restore(dst, path); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
