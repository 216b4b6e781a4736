package store

import (
	"database/sql"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/sqlutil"
)

// Pages returns all pages sorted by order.
func (s *Store) Pages() ([]model.Page, error) {
	rows, err := s.db.Query(`SELECT id, name, icon, ord FROM pages ORDER BY ord ASC`)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanPage)
}

// Page returns one page, or ErrNotFound.
func (s *Store) Page(id int64) (*model.Page, error) {
	var p model.Page
	err := s.db.QueryRow(`SELECT id, name, icon, ord FROM pages WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Icon, &p.Order)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Groups returns the sibling set of groups on one page (nil = main page),
// sorted by order.
func (s *Store) Groups(pageID *int64) ([]model.Group, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if pageID == nil {
		rows, err = s.db.Query(`SELECT id, name, ord, page_id FROM groups WHERE page_id IS NULL ORDER BY ord ASC`)
	} else {
		rows, err = s.db.Query(`SELECT id, name, ord, page_id FROM groups WHERE page_id = ? ORDER BY ord ASC`, *pageID)
	}
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanGroup)
}

// AllGroups returns every group regardless of page, sorted by page then order.
func (s *Store) AllGroups() ([]model.Group, error) {
	rows, err := s.db.Query(`SELECT id, name, ord, page_id FROM groups ORDER BY page_id NULLS FIRST, ord ASC`)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanGroup)
}

// Group returns one group, or ErrNotFound.
func (s *Store) Group(id int64) (*model.Group, error) {
	var g model.Group
	var pageID sql.NullInt64
	err := s.db.QueryRow(`SELECT id, name, ord, page_id FROM groups WHERE id = ?`, id).
		Scan(&g.ID, &g.Name, &g.Order, &pageID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if pageID.Valid {
		g.PageID = &pageID.Int64
	}
	return &g, nil
}

// ObjectsInGroup returns a group's objects sorted by order.
func (s *Store) ObjectsInGroup(groupID int64) ([]model.Object, error) {
	rows, err := s.db.Query(`
		SELECT id, group_id, name, ord, default_duration
		FROM objects WHERE group_id = ? ORDER BY ord ASC
	`, groupID)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanObject)
}

// AllObjects returns every object, sorted by group then order.
func (s *Store) AllObjects() ([]model.Object, error) {
	rows, err := s.db.Query(`
		SELECT id, group_id, name, ord, default_duration
		FROM objects ORDER BY group_id ASC, ord ASC
	`)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanObject)
}

// Object returns one object, or ErrNotFound.
func (s *Store) Object(id int64) (*model.Object, error) {
	var o model.Object
	err := s.db.QueryRow(`
		SELECT id, group_id, name, ord, default_duration FROM objects WHERE id = ?
	`, id).Scan(&o.ID, &o.GroupID, &o.Name, &o.Order, &o.DefaultDuration)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Fields returns an object's fields in insertion order.
func (s *Store) Fields(objectID int64) ([]model.Field, error) {
	rows, err := s.db.Query(`
		SELECT id, object_id, type, label, value FROM object_fields
		WHERE object_id = ? ORDER BY id ASC
	`, objectID)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanField)
}

// FieldsForObjects returns the fields of several objects at once (export).
func (s *Store) FieldsForObjects(objectIDs []int64) ([]model.Field, error) {
	placeholders, args := sqlutil.InClauseArgs(objectIDs)
	rows, err := s.db.Query(`
		SELECT id, object_id, type, label, value FROM object_fields
		WHERE object_id IN (`+placeholders+`) ORDER BY object_id ASC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanField)
}

// Field returns one field, or ErrNotFound.
func (s *Store) Field(id int64) (*model.Field, error) {
	var f model.Field
	err := s.db.QueryRow(`
		SELECT id, object_id, type, label, value FROM object_fields WHERE id = ?
	`, id).Scan(&f.ID, &f.ObjectID, &f.Type, &f.Label, &f.Value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Attachments returns an object's attachments without their blob data.
func (s *Store) Attachments(objectID int64) ([]model.Attachment, error) {
	rows, err := s.db.Query(`
		SELECT id, object_id, name, mime_type FROM attachments
		WHERE object_id = ? ORDER BY id ASC
	`, objectID)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (model.Attachment, error) {
		var a model.Attachment
		err := rows.Scan(&a.ID, &a.ObjectID, &a.Name, &a.MimeType)
		return a, err
	})
}

// Attachment returns one attachment including its data, or ErrNotFound.
func (s *Store) Attachment(id int64) (*model.Attachment, error) {
	var a model.Attachment
	err := s.db.QueryRow(`
		SELECT id, object_id, name, mime_type, data FROM attachments WHERE id = ?
	`, id).Scan(&a.ID, &a.ObjectID, &a.Name, &a.MimeType, &a.Data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ScheduleItems returns one group's schedule scope.
func (s *Store) ScheduleItems(groupID int64) ([]model.ScheduleItem, error) {
	rows, err := s.db.Query(`
		SELECT id, group_id, object_id, object_name, day, time, duration
		FROM schedule_items WHERE group_id = ? ORDER BY day ASC, time ASC
	`, groupID)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanScheduleItem)
}

// AllScheduleItems returns every placed block (export, whole-week views).
func (s *Store) AllScheduleItems() ([]model.ScheduleItem, error) {
	rows, err := s.db.Query(`
		SELECT id, group_id, object_id, object_name, day, time, duration
		FROM schedule_items ORDER BY group_id ASC, day ASC, time ASC
	`)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanScheduleItem)
}

// ScheduleItem returns one placed block, or ErrNotFound.
func (s *Store) ScheduleItem(id int64) (*model.ScheduleItem, error) {
	var item model.ScheduleItem
	err := s.db.QueryRow(`
		SELECT id, group_id, object_id, object_name, day, time, duration
		FROM schedule_items WHERE id = ?
	`, id).Scan(&item.ID, &item.GroupID, &item.ObjectID, &item.ObjectName, &item.Day, &item.Time, &item.Duration)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Todos returns the flat todo list sorted by order.
func (s *Store) Todos() ([]model.Todo, error) {
	rows, err := s.db.Query(`
		SELECT id, text, completed, ord, created_at FROM todos ORDER BY ord ASC
	`)
	if err != nil {
		return nil, err
	}
	return sqlutil.ScanRows(rows, scanTodo)
}

// Todo returns one todo, or ErrNotFound.
func (s *Store) Todo(id int64) (*model.Todo, error) {
	var t model.Todo
	var completed int
	err := s.db.QueryRow(`
		SELECT id, text, completed, ord, created_at FROM todos WHERE id = ?
	`, id).Scan(&t.ID, &t.Text, &completed, &t.Order, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Completed = completed != 0
	return &t, nil
}

func scanPage(rows *sql.Rows) (model.Page, error) {
	var p model.Page
	err := rows.Scan(&p.ID, &p.Name, &p.Icon, &p.Order)
	return p, err
}

func scanGroup(rows *sql.Rows) (model.Group, error) {
	var g model.Group
	var pageID sql.NullInt64
	if err := rows.Scan(&g.ID, &g.Name, &g.Order, &pageID); err != nil {
		return g, err
	}
	if pageID.Valid {
		g.PageID = &pageID.Int64
	}
	return g, nil
}

func scanObject(rows *sql.Rows) (model.Object, error) {
	var o model.Object
	err := rows.Scan(&o.ID, &o.GroupID, &o.Name, &o.Order, &o.DefaultDuration)
	return o, err
}

func scanField(rows *sql.Rows) (model.Field, error) {
	var f model.Field
	err := rows.Scan(&f.ID, &f.ObjectID, &f.Type, &f.Label, &f.Value)
	return f, err
}

func scanScheduleItem(rows *sql.Rows) (model.ScheduleItem, error) {
	var item model.ScheduleItem
	err := rows.Scan(&item.ID, &item.GroupID, &item.ObjectID, &item.ObjectName, &item.Day, &item.Time, &item.Duration)
	return item, err
}

func scanTodo(rows *sql.Rows) (model.Todo, error) {
	var t model.Todo
	var completed int
	if err := rows.Scan(&t.ID, &t.Text, &completed, &t.Order, &t.CreatedAt); err != nil {
		return t, err
	}
	t.Completed = completed != 0
	return t, nil
}
