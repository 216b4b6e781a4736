// Package hierarchy turns drag-and-drop gestures over groups and objects
// into persistence plans.
//
// A gesture is reduced to a (source ID, drop target) pair before it gets
// here; nothing in this package depends on an input-event model. Plans are
// computed from the currently loaded, order-sorted sibling slices, never
// from transient drag state, so stale intermediate positions during a
// gesture cannot corrupt persisted order.
package hierarchy

import (
	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/order"
)

// TargetKind says what kind of entity a drag ended on.
type TargetKind string

const (
	// TargetNone marks a cancelled gesture (no drop target).
	TargetNone TargetKind = "none"
	// TargetGroup is a drop on a group container.
	TargetGroup TargetKind = "group"
	// TargetObject is a drop on a specific object.
	TargetObject TargetKind = "object"
)

// Target identifies the drop destination of a gesture.
type Target struct {
	Kind TargetKind
	ID   int64
}

// View is the read-only snapshot the engine plans against. Slices must be
// sorted by order.
type View interface {
	Object(id int64) (model.Object, bool)
	Group(id int64) (model.Group, bool)
	ObjectsInGroup(groupID int64) []model.Object
	GroupsOnPage(pageID *int64) []model.Group
}

// ObjectPlan is the persistence batch for one object drop. Every write it
// describes is a full (id, order) or (id, group) value, safe to retry in
// any partial-completion state.
type ObjectPlan struct {
	ObjectID int64

	// GroupID is the group the object belongs to after the move.
	GroupID int64

	// Reparented is set when the object changed groups.
	Reparented bool

	// SourceOrders reindexes the group the object left. Empty for
	// same-group moves.
	SourceOrders []order.Assignment

	// TargetOrders reindexes the group the object lands in.
	TargetOrders []order.Assignment
}

// PlanObjectDrop interprets dropping the object sourceID onto target.
//
// It returns nil for every cancelled or stale gesture: no target, source
// dropped on itself, source or target no longer present, or a drop on the
// object's own group container. A nil plan means zero writes.
func PlanObjectDrop(v View, sourceID int64, target Target) *ObjectPlan {
	if target.Kind == TargetNone {
		return nil
	}

	source, ok := v.Object(sourceID)
	if !ok {
		return nil
	}

	switch target.Kind {
	case TargetObject:
		if target.ID == sourceID {
			return nil
		}
		dest, ok := v.Object(target.ID)
		if !ok {
			return nil
		}
		if dest.GroupID == source.GroupID {
			return planSameGroupMove(v, source, dest)
		}
		return planCrossGroupMove(v, source, dest)

	case TargetGroup:
		dest, ok := v.Group(target.ID)
		if !ok {
			return nil
		}
		if dest.ID == source.GroupID {
			// Dropping on the group it is already in changes nothing.
			return nil
		}
		return planCrossGroupAppend(v, source, dest)
	}

	return nil
}

func planSameGroupMove(v View, source, dest model.Object) *ObjectPlan {
	siblings := v.ObjectsInGroup(source.GroupID)
	from := order.IndexOf(siblings, objectID, source.ID)
	to := order.IndexOf(siblings, objectID, dest.ID)
	if from < 0 || to < 0 || from == to {
		return nil
	}

	moved := order.Move(siblings, from, to)
	return &ObjectPlan{
		ObjectID:     source.ID,
		GroupID:      source.GroupID,
		TargetOrders: order.Reindex(moved, objectID),
	}
}

func planCrossGroupMove(v View, source, dest model.Object) *ObjectPlan {
	sourceSiblings := v.ObjectsInGroup(source.GroupID)
	destSiblings := v.ObjectsInGroup(dest.GroupID)

	from := order.IndexOf(sourceSiblings, objectID, source.ID)
	at := order.IndexOf(destSiblings, objectID, dest.ID)
	if from < 0 || at < 0 {
		return nil
	}

	sourceSiblings = order.Remove(sourceSiblings, from)

	source.GroupID = dest.GroupID
	destSiblings = order.InsertAt(destSiblings, at, source)

	return &ObjectPlan{
		ObjectID:     source.ID,
		GroupID:      dest.GroupID,
		Reparented:   true,
		SourceOrders: order.Reindex(sourceSiblings, objectID),
		TargetOrders: order.Reindex(destSiblings, objectID),
	}
}

func planCrossGroupAppend(v View, source model.Object, dest model.Group) *ObjectPlan {
	sourceSiblings := v.ObjectsInGroup(source.GroupID)
	destSiblings := v.ObjectsInGroup(dest.ID)

	from := order.IndexOf(sourceSiblings, objectID, source.ID)
	if from < 0 {
		return nil
	}

	sourceSiblings = order.Remove(sourceSiblings, from)

	source.GroupID = dest.ID
	destSiblings = append(destSiblings, source)

	return &ObjectPlan{
		ObjectID:     source.ID,
		GroupID:      dest.ID,
		Reparented:   true,
		SourceOrders: order.Reindex(sourceSiblings, objectID),
		TargetOrders: order.Reindex(destSiblings, objectID),
	}
}

// PlanGroupDrop interprets dropping the group sourceID onto the group
// targetID: a reorder within the page's sibling set. Nil means no writes
// (self-drop, stale IDs, or groups on different pages).
func PlanGroupDrop(v View, sourceID, targetID int64) []order.Assignment {
	if sourceID == targetID {
		return nil
	}

	source, ok := v.Group(sourceID)
	if !ok {
		return nil
	}
	dest, ok := v.Group(targetID)
	if !ok {
		return nil
	}
	if !samePage(source.PageID, dest.PageID) {
		return nil
	}

	siblings := v.GroupsOnPage(source.PageID)
	from := order.IndexOf(siblings, groupID, sourceID)
	to := order.IndexOf(siblings, groupID, targetID)
	if from < 0 || to < 0 || from == to {
		return nil
	}

	moved := order.Move(siblings, from, to)
	return order.Reindex(moved, groupID)
}

func objectID(o model.Object) int64 { return o.ID }

func groupID(g model.Group) int64 { return g.ID }

func samePage(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
