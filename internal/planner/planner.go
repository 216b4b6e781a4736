// Package planner is the mutation facade over the durable store. Every
// operation reloads and returns the order-sorted sets it touched, and
// references to IDs that no longer exist are treated as cancelled gestures
// rather than errors.
package planner

import (
	"errors"
	"fmt"

	"github.com/umi-app/umi/internal/hierarchy"
	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/order"
	"github.com/umi-app/umi/internal/store"
)

// Planner coordinates ordering, hierarchy and schedule rules on top of a
// single store.
type Planner struct {
	st *store.Store
}

// New wraps an open store.
func New(st *store.Store) *Planner {
	return &Planner{st: st}
}

// Store exposes the underlying store for read-only callers.
func (p *Planner) Store() *store.Store {
	return p.st
}

// view adapts the store to the read snapshot the hierarchy engine plans
// against. Load errors collapse to "not present", which the engine treats
// as a cancelled gesture.
type view struct {
	st *store.Store
}

func (v view) Object(id int64) (model.Object, bool) {
	o, err := v.st.Object(id)
	if err != nil {
		return model.Object{}, false
	}
	return *o, true
}

func (v view) Group(id int64) (model.Group, bool) {
	g, err := v.st.Group(id)
	if err != nil {
		return model.Group{}, false
	}
	return *g, true
}

func (v view) ObjectsInGroup(groupID int64) []model.Object {
	objects, err := v.st.ObjectsInGroup(groupID)
	if err != nil {
		return nil
	}
	return objects
}

func (v view) GroupsOnPage(pageID *int64) []model.Group {
	groups, err := v.st.Groups(pageID)
	if err != nil {
		return nil
	}
	return groups
}

// Groups lists the groups on a page in display order. A nil pageID means
// the main page.
func (p *Planner) Groups(pageID *int64) ([]model.Group, error) {
	return p.st.Groups(pageID)
}

// Group loads a single group. Returns store.ErrNotFound when absent.
func (p *Planner) Group(id int64) (*model.Group, error) {
	return p.st.Group(id)
}

// AddGroup appends a group to the end of the page's sequence.
func (p *Planner) AddGroup(name string, pageID *int64) (*model.Group, error) {
	siblings, err := p.st.Groups(pageID)
	if err != nil {
		return nil, err
	}
	id, err := p.st.AddGroup(name, order.Next(len(siblings)), pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to add group: %w", err)
	}
	return p.st.Group(id)
}

// RenameGroup updates a group's name. A missing ID is a no-op.
func (p *Planner) RenameGroup(id int64, name string) error {
	if _, err := p.st.Group(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return p.st.RenameGroup(id, name)
}

// DeleteGroup removes a group and everything under it: its objects with
// their fields and attachments, and every schedule item placed in the
// group. Remaining siblings are reindexed to a contiguous sequence. The
// reindexed sibling set is returned; a missing ID returns (nil, nil).
func (p *Planner) DeleteGroup(id int64) ([]model.Group, error) {
	g, err := p.st.Group(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := p.deleteGroupCascade(g); err != nil {
		return nil, err
	}

	siblings, err := p.st.Groups(g.PageID)
	if err != nil {
		return nil, err
	}
	if err := p.st.ApplyGroupOrders(order.Reindex(siblings, groupID)); err != nil {
		return nil, err
	}
	return p.st.Groups(g.PageID)
}

// deleteGroupCascade deletes the group row and its dependents without
// touching sibling order.
func (p *Planner) deleteGroupCascade(g *model.Group) error {
	objects, err := p.st.ObjectsInGroup(g.ID)
	if err != nil {
		return err
	}
	for _, o := range objects {
		if err := p.deleteObjectCascade(o.ID); err != nil {
			return err
		}
	}
	if err := p.st.DeleteScheduleItemsByGroup(g.ID); err != nil {
		return err
	}
	return p.st.DeleteGroup(g.ID)
}

// MoveGroup reorders a group within its page by dropping it onto another
// group. Stale or cross-page drops change nothing; the page's current
// sibling set is returned either way.
func (p *Planner) MoveGroup(sourceID, targetID int64) ([]model.Group, error) {
	source, err := p.st.Group(sourceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	assignments := hierarchy.PlanGroupDrop(view{p.st}, sourceID, targetID)
	if len(assignments) > 0 {
		if err := p.st.ApplyGroupOrders(assignments); err != nil {
			return nil, err
		}
	}
	return p.st.Groups(source.PageID)
}

// Pages lists custom pages in display order.
func (p *Planner) Pages() ([]model.Page, error) {
	return p.st.Pages()
}

// AddPage appends a custom page.
func (p *Planner) AddPage(name, icon string) (*model.Page, error) {
	pages, err := p.st.Pages()
	if err != nil {
		return nil, err
	}
	id, err := p.st.AddPage(name, icon, order.Next(len(pages)))
	if err != nil {
		return nil, fmt.Errorf("failed to add page: %w", err)
	}
	return p.st.Page(id)
}

// DeletePage removes a page and cascades through its groups, the same way
// deleting each group individually would. Remaining pages are reindexed
// and returned. A missing ID is a no-op.
func (p *Planner) DeletePage(id int64) ([]model.Page, error) {
	if _, err := p.st.Page(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	groups, err := p.st.Groups(&id)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if err := p.deleteGroupCascade(&groups[i]); err != nil {
			return nil, err
		}
	}
	if err := p.st.DeletePage(id); err != nil {
		return nil, err
	}

	pages, err := p.st.Pages()
	if err != nil {
		return nil, err
	}
	if err := p.st.ApplyPageOrders(order.Reindex(pages, pageID)); err != nil {
		return nil, err
	}
	return p.st.Pages()
}

func groupID(g model.Group) int64 { return g.ID }

func pageID(pg model.Page) int64 { return pg.ID }
