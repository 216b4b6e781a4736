package planner

import (
	"errors"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/schedule"
	"github.com/umi-app/umi/internal/store"
)

// ScheduleWeek returns a group's placed items ordered by day then time.
func (p *Planner) ScheduleWeek(groupID int64) ([]model.ScheduleItem, error) {
	return p.st.ScheduleItems(groupID)
}

// PlaceScheduleItem puts an object on the weekly grid at the given slot,
// spanning the object's default duration. The placement is rejected when it
// would overlap an existing item in the same group, run past the end of the
// day, or when the object has no duration set. A missing object is a no-op
// returning (nil, nil).
func (p *Planner) PlaceScheduleItem(objectID int64, day model.Day, time string) (*model.ScheduleItem, error) {
	obj, err := p.st.Object(objectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	item := model.ScheduleItem{
		GroupID:    obj.GroupID,
		ObjectID:   obj.ID,
		ObjectName: obj.Name,
		Day:        day,
		Time:       time,
		Duration:   obj.DefaultDuration,
	}

	items, err := p.st.ScheduleItems(obj.GroupID)
	if err != nil {
		return nil, err
	}
	if err := schedule.CheckPlacement(items, item); err != nil {
		return nil, err
	}

	id, err := p.st.AddScheduleItem(item)
	if err != nil {
		return nil, err
	}
	return p.st.ScheduleItem(id)
}

// MoveScheduleItem relocates an item to a new day and time, keeping its
// duration. The item's own slots do not count as a conflict. A missing ID
// is a no-op.
func (p *Planner) MoveScheduleItem(id int64, day model.Day, time string) error {
	item, err := p.st.ScheduleItem(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	items, err := p.st.ScheduleItems(item.GroupID)
	if err != nil {
		return err
	}
	if err := schedule.CheckMove(items, item.ID, day, time, item.Duration); err != nil {
		return err
	}
	return p.st.UpdateScheduleItemSlot(id, day, time)
}

// ResizeScheduleItem changes an item's duration in place. Growing into an
// occupied or out-of-day range is rejected; shrinking always succeeds. A
// missing ID is a no-op.
func (p *Planner) ResizeScheduleItem(id int64, blocks int) error {
	item, err := p.st.ScheduleItem(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	items, err := p.st.ScheduleItems(item.GroupID)
	if err != nil {
		return err
	}
	if err := schedule.CheckResize(items, *item, blocks); err != nil {
		return err
	}
	return p.st.UpdateScheduleItemDuration(id, blocks)
}

// RemoveScheduleItem takes an item off the grid. A missing ID is a no-op.
func (p *Planner) RemoveScheduleItem(id int64) error {
	return p.st.DeleteScheduleItem(id)
}
