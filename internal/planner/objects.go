package planner

import (
	"errors"
	"fmt"

	"github.com/umi-app/umi/internal/hierarchy"
	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/order"
	"github.com/umi-app/umi/internal/schedule"
	"github.com/umi-app/umi/internal/store"
)

// ObjectsInGroup lists a group's objects in display order.
func (p *Planner) ObjectsInGroup(groupID int64) ([]model.Object, error) {
	return p.st.ObjectsInGroup(groupID)
}

// Object loads a single object. Returns store.ErrNotFound when absent.
func (p *Planner) Object(id int64) (*model.Object, error) {
	return p.st.Object(id)
}

// AddObject appends an object to the end of a group's sequence. A missing
// group is a no-op.
func (p *Planner) AddObject(groupID int64, name string) (*model.Object, error) {
	if _, err := p.st.Group(groupID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	siblings, err := p.st.ObjectsInGroup(groupID)
	if err != nil {
		return nil, err
	}
	id, err := p.st.AddObject(groupID, name, order.Next(len(siblings)), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to add object: %w", err)
	}
	return p.st.Object(id)
}

// RenameObject updates an object's name and propagates it to the denormalized
// name carried by its schedule items. A missing ID is a no-op.
func (p *Planner) RenameObject(id int64, name string) error {
	if _, err := p.st.Object(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return p.st.RenameObject(id, name)
}

// SetDefaultDuration records how many 15-minute blocks a placement of this
// object spans. Zero means "not set"; negative values are rejected.
func (p *Planner) SetDefaultDuration(id int64, blocks int) error {
	if blocks < 0 {
		return fmt.Errorf("%w: %d blocks", schedule.ErrInvalidDuration, blocks)
	}
	if _, err := p.st.Object(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return p.st.SetDefaultDuration(id, blocks)
}

// DeleteObject removes an object together with its fields, attachments and
// schedule items, then reindexes and returns the remaining siblings. A
// missing ID returns (nil, nil).
func (p *Planner) DeleteObject(id int64) ([]model.Object, error) {
	o, err := p.st.Object(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := p.deleteObjectCascade(id); err != nil {
		return nil, err
	}

	siblings, err := p.st.ObjectsInGroup(o.GroupID)
	if err != nil {
		return nil, err
	}
	if err := p.st.ApplyObjectOrders(order.Reindex(siblings, objectID)); err != nil {
		return nil, err
	}
	return p.st.ObjectsInGroup(o.GroupID)
}

func (p *Planner) deleteObjectCascade(id int64) error {
	if err := p.st.DeleteFieldsByObject(id); err != nil {
		return err
	}
	if err := p.st.DeleteAttachmentsByObject(id); err != nil {
		return err
	}
	if err := p.st.DeleteScheduleItemsByObject(id); err != nil {
		return err
	}
	return p.st.DeleteObject(id)
}

// MoveObject applies a drop gesture: onto another object (reorder, possibly
// across groups) or into a group container (append). Stale and self drops
// change nothing. The destination group's object set after the move is
// returned; nil means no writes happened.
func (p *Planner) MoveObject(sourceID int64, target hierarchy.Target) ([]model.Object, error) {
	plan := hierarchy.PlanObjectDrop(view{p.st}, sourceID, target)
	if plan == nil {
		return nil, nil
	}

	assignments := append(plan.SourceOrders, plan.TargetOrders...)
	if err := p.st.ApplyObjectDrop(plan.ObjectID, plan.GroupID, plan.Reparented, assignments); err != nil {
		return nil, err
	}
	return p.st.ObjectsInGroup(plan.GroupID)
}

// Fields lists an object's fields.
func (p *Planner) Fields(objectID int64) ([]model.Field, error) {
	return p.st.Fields(objectID)
}

// AddField attaches a typed field to an object. A missing object is a no-op.
func (p *Planner) AddField(objectID int64, fieldType model.FieldType, label, value string) (*model.Field, error) {
	if _, err := p.st.Object(objectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	id, err := p.st.AddField(objectID, fieldType, label, value)
	if err != nil {
		return nil, err
	}
	return p.st.Field(id)
}

// UpdateField replaces a field's value. A missing ID is a no-op.
func (p *Planner) UpdateField(id int64, value string) error {
	if _, err := p.st.Field(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return p.st.UpdateFieldValue(id, value)
}

// DeleteField removes a field. A missing ID is a no-op.
func (p *Planner) DeleteField(id int64) error {
	return p.st.DeleteField(id)
}

// Attachments lists an object's attachments without their blob contents.
func (p *Planner) Attachments(objectID int64) ([]model.Attachment, error) {
	return p.st.Attachments(objectID)
}

// Attachment loads one attachment including its contents.
func (p *Planner) Attachment(id int64) (*model.Attachment, error) {
	return p.st.Attachment(id)
}

// AttachFile stores a file's contents against an object. A missing object
// is a no-op.
func (p *Planner) AttachFile(objectID int64, name, mimeType string, data []byte) (*model.Attachment, error) {
	if _, err := p.st.Object(objectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	id, err := p.st.AddAttachment(objectID, name, mimeType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}
	att, err := p.st.Attachment(id)
	if err != nil {
		return nil, err
	}
	att.Data = nil
	return att, nil
}

// DeleteAttachment removes an attachment. A missing ID is a no-op.
func (p *Planner) DeleteAttachment(id int64) error {
	return p.st.DeleteAttachment(id)
}

func objectID(o model.Object) int64 { return o.ID }
