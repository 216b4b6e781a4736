// Package model defines the planner's persistent entities.
package model

// Day is a weekday column of the schedule grid.
type Day string

// Weekday values, Monday first (the schedule week starts on Monday).
const (
	Mon Day = "Mon"
	Tue Day = "Tue"
	Wed Day = "Wed"
	Thu Day = "Thu"
	Fri Day = "Fri"
	Sat Day = "Sat"
	Sun Day = "Sun"
)

// Days lists the week's days in display order.
var Days = []Day{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// Valid reports whether d is one of the seven weekday values.
func (d Day) Valid() bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// FieldType is the closed set of field kinds an object can hold.
type FieldType string

const (
	// FieldText holds free-form text (rendered as markdown in the CLI).
	FieldText FieldType = "text"
	// FieldLink holds the ID of another object, in decimal.
	FieldLink FieldType = "link"
	// FieldFile holds a reference to an attachment.
	FieldFile FieldType = "file"
)

// Valid reports whether t is a known field type.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldLink, FieldFile:
		return true
	}
	return false
}

// Group is a named container of objects.
// Siblings are the groups sharing the same PageID (nil = the main page);
// their Order values are always a contiguous 0..n-1 permutation.
type Group struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Order  int    `json:"order" yaml:"order"`
	PageID *int64 `json:"page_id,omitempty" yaml:"page_id,omitempty"`
}

// Object is an entry in a group. Siblings share a GroupID.
type Object struct {
	ID      int64  `json:"id" yaml:"id"`
	GroupID int64  `json:"group_id" yaml:"group_id"`
	Name    string `json:"name" yaml:"name"`
	Order   int    `json:"order" yaml:"order"`

	// DefaultDuration is the object's preferred schedule length in
	// 15-minute blocks (0..96). Zero means not set.
	DefaultDuration int `json:"default_duration,omitempty" yaml:"default_duration,omitempty"`
}

// Field is a typed label/value pair owned by an object.
// It is deleted together with its object.
type Field struct {
	ID       int64     `json:"id" yaml:"id"`
	ObjectID int64     `json:"object_id" yaml:"object_id"`
	Type     FieldType `json:"type" yaml:"type"`
	Label    string    `json:"label" yaml:"label"`
	Value    string    `json:"value" yaml:"value"`
}

// Attachment is binary content owned by an object.
type Attachment struct {
	ID       int64  `json:"id" yaml:"id"`
	ObjectID int64  `json:"object_id" yaml:"object_id"`
	Name     string `json:"name" yaml:"name"`
	MimeType string `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
	Data     []byte `json:"-" yaml:"-"`
}

// ScheduleItem is a placed block on the weekly grid. It occupies
// Duration consecutive 15-minute slots starting at Time on Day.
// Non-overlap is enforced per group.
type ScheduleItem struct {
	ID         int64  `json:"id" yaml:"id"`
	GroupID    int64  `json:"group_id" yaml:"group_id"`
	ObjectID   int64  `json:"object_id" yaml:"object_id"`
	ObjectName string `json:"object_name" yaml:"object_name"`
	Day        Day    `json:"day" yaml:"day"`
	Time       string `json:"time" yaml:"time"` // "HH:MM", 15-minute aligned
	Duration   int    `json:"duration" yaml:"duration"`
}

// Todo is an entry in the flat todo list. The whole list is one sibling set.
type Todo struct {
	ID        int64  `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	Order     int    `json:"order" yaml:"order"`
	CreatedAt int64  `json:"created_at" yaml:"created_at"` // Unix seconds
}

// Page is a user-defined page that scopes its own set of groups.
type Page struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Order int    `json:"order" yaml:"order"`
}
