package store

import (
	"database/sql"
	"fmt"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/order"
)

// AddPage inserts a page and returns its ID.
func (s *Store) AddPage(name, icon string, ord int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO pages (name, icon, ord) VALUES (?, ?, ?)`, name, icon, ord)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeletePage removes a page record. Cascading its groups is the caller's job.
func (s *Store) DeletePage(id int64) error {
	_, err := s.db.Exec(`DELETE FROM pages WHERE id = ?`, id)
	return err
}

// AddGroup inserts a group and returns its ID.
func (s *Store) AddGroup(name string, ord int, pageID *int64) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO groups (name, ord, page_id) VALUES (?, ?, ?)`,
		name, ord, nullableID(pageID))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RenameGroup updates a group's name.
func (s *Store) RenameGroup(id int64, name string) error {
	_, err := s.db.Exec(`UPDATE groups SET name = ? WHERE id = ?`, name, id)
	return err
}

// DeleteGroup removes a group record. Cascading is the caller's job.
func (s *Store) DeleteGroup(id int64) error {
	_, err := s.db.Exec(`DELETE FROM groups WHERE id = ?`, id)
	return err
}

// AddObject inserts an object and returns its ID.
func (s *Store) AddObject(groupID int64, name string, ord, defaultDuration int) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO objects (group_id, name, ord, default_duration) VALUES (?, ?, ?, ?)
	`, groupID, name, ord, defaultDuration)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RenameObject updates an object's name, including the denormalized copy
// carried by its schedule items.
func (s *Store) RenameObject(id int64, name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE objects SET name = ? WHERE id = ?`, name, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE schedule_items SET object_name = ? WHERE object_id = ?`, name, id); err != nil {
		return err
	}
	return tx.Commit()
}

// SetDefaultDuration updates an object's preferred schedule length.
func (s *Store) SetDefaultDuration(id int64, blocks int) error {
	_, err := s.db.Exec(`UPDATE objects SET default_duration = ? WHERE id = ?`, blocks, id)
	return err
}

// DeleteObject removes an object record. Cascading is the caller's job.
func (s *Store) DeleteObject(id int64) error {
	_, err := s.db.Exec(`DELETE FROM objects WHERE id = ?`, id)
	return err
}

// AddField inserts a field, rejecting unknown field types at the boundary.
func (s *Store) AddField(objectID int64, fieldType model.FieldType, label, value string) (int64, error) {
	if !fieldType.Valid() {
		return 0, fmt.Errorf("unknown field type %q", fieldType)
	}
	res, err := s.db.Exec(`
		INSERT INTO object_fields (object_id, type, label, value) VALUES (?, ?, ?, ?)
	`, objectID, string(fieldType), label, value)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateFieldValue updates a field's value.
func (s *Store) UpdateFieldValue(id int64, value string) error {
	_, err := s.db.Exec(`UPDATE object_fields SET value = ? WHERE id = ?`, value, id)
	return err
}

// DeleteField removes a field.
func (s *Store) DeleteField(id int64) error {
	_, err := s.db.Exec(`DELETE FROM object_fields WHERE id = ?`, id)
	return err
}

// DeleteFieldsByObject bulk-deletes an object's fields (cascade step).
func (s *Store) DeleteFieldsByObject(objectID int64) error {
	_, err := s.db.Exec(`DELETE FROM object_fields WHERE object_id = ?`, objectID)
	return err
}

// AddAttachment inserts an attachment and returns its ID.
func (s *Store) AddAttachment(objectID int64, name, mimeType string, data []byte) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO attachments (object_id, name, mime_type, data) VALUES (?, ?, ?, ?)
	`, objectID, name, mimeType, data)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteAttachment removes an attachment.
func (s *Store) DeleteAttachment(id int64) error {
	_, err := s.db.Exec(`DELETE FROM attachments WHERE id = ?`, id)
	return err
}

// DeleteAttachmentsByObject bulk-deletes an object's attachments (cascade step).
func (s *Store) DeleteAttachmentsByObject(objectID int64) error {
	_, err := s.db.Exec(`DELETE FROM attachments WHERE object_id = ?`, objectID)
	return err
}

// AddScheduleItem inserts a placed block and returns its ID.
func (s *Store) AddScheduleItem(item model.ScheduleItem) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO schedule_items (group_id, object_id, object_name, day, time, duration)
		VALUES (?, ?, ?, ?, ?, ?)
	`, item.GroupID, item.ObjectID, item.ObjectName, string(item.Day), item.Time, item.Duration)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateScheduleItemSlot relocates a placed block to (day, time).
func (s *Store) UpdateScheduleItemSlot(id int64, day model.Day, time string) error {
	_, err := s.db.Exec(`UPDATE schedule_items SET day = ?, time = ? WHERE id = ?`,
		string(day), time, id)
	return err
}

// UpdateScheduleItemDuration resizes a placed block.
func (s *Store) UpdateScheduleItemDuration(id int64, duration int) error {
	_, err := s.db.Exec(`UPDATE schedule_items SET duration = ? WHERE id = ?`, duration, id)
	return err
}

// DeleteScheduleItem removes a placed block.
func (s *Store) DeleteScheduleItem(id int64) error {
	_, err := s.db.Exec(`DELETE FROM schedule_items WHERE id = ?`, id)
	return err
}

// DeleteScheduleItemsByObject bulk-deletes an object's placed blocks (cascade step).
func (s *Store) DeleteScheduleItemsByObject(objectID int64) error {
	_, err := s.db.Exec(`DELETE FROM schedule_items WHERE object_id = ?`, objectID)
	return err
}

// DeleteScheduleItemsByGroup bulk-deletes a group's schedule scope (cascade step).
func (s *Store) DeleteScheduleItemsByGroup(groupID int64) error {
	_, err := s.db.Exec(`DELETE FROM schedule_items WHERE group_id = ?`, groupID)
	return err
}

// AddTodo inserts a todo and returns its ID.
func (s *Store) AddTodo(text string, ord int, createdAt int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO todos (text, completed, ord, created_at) VALUES (?, 0, ?, ?)
	`, text, ord, createdAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SetTodoCompleted toggles a todo's completion flag.
func (s *Store) SetTodoCompleted(id int64, completed bool) error {
	val := 0
	if completed {
		val = 1
	}
	_, err := s.db.Exec(`UPDATE todos SET completed = ? WHERE id = ?`, val, id)
	return err
}

// DeleteTodo removes a todo.
func (s *Store) DeleteTodo(id int64) error {
	_, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	return err
}

// ApplyGroupOrders persists a reindexed group sibling set in one transaction.
func (s *Store) ApplyGroupOrders(assignments []order.Assignment) error {
	return s.applyOrders("groups", assignments)
}

// ApplyObjectOrders persists a reindexed object sibling set in one transaction.
func (s *Store) ApplyObjectOrders(assignments []order.Assignment) error {
	return s.applyOrders("objects", assignments)
}

// ApplyTodoOrders persists the reindexed todo list in one transaction.
func (s *Store) ApplyTodoOrders(assignments []order.Assignment) error {
	return s.applyOrders("todos", assignments)
}

// ApplyPageOrders persists the reindexed page list in one transaction.
func (s *Store) ApplyPageOrders(assignments []order.Assignment) error {
	return s.applyOrders("pages", assignments)
}

// ApplyObjectDrop persists one drag outcome as a single batch: the
// optional re-parent plus the full order values of every affected sibling.
// Each write is self-describing, so the batch is idempotent and safe to
// retry even where transactions are unavailable.
func (s *Store) ApplyObjectDrop(objectID, groupID int64, reparent bool, assignments []order.Assignment) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if reparent {
		if _, err := tx.Exec(`UPDATE objects SET group_id = ? WHERE id = ?`, groupID, objectID); err != nil {
			return err
		}
	}
	if err := applyOrdersTx(tx, "objects", assignments); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) applyOrders(table string, assignments []order.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := applyOrdersTx(tx, table, assignments); err != nil {
		return err
	}

	return tx.Commit()
}

func applyOrdersTx(tx *sql.Tx, table string, assignments []order.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`UPDATE ` + table + ` SET ord = ? WHERE id = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range assignments {
		if _, err := stmt.Exec(a.Order, a.ID); err != nil {
			return err
		}
	}
	return nil
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}
