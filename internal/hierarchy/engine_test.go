package hierarchy

import (
	"sort"
	"testing"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/order"
)

// fakeView is an in-memory View over plain slices.
type fakeView struct {
	groups  []model.Group
	objects []model.Object
}

func (f *fakeView) Object(id int64) (model.Object, bool) {
	for _, o := range f.objects {
		if o.ID == id {
			return o, true
		}
	}
	return model.Object{}, false
}

func (f *fakeView) Group(id int64) (model.Group, bool) {
	for _, g := range f.groups {
		if g.ID == id {
			return g, true
		}
	}
	return model.Group{}, false
}

func (f *fakeView) ObjectsInGroup(groupID int64) []model.Object {
	var out []model.Object
	for _, o := range f.objects {
		if o.GroupID == groupID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (f *fakeView) GroupsOnPage(pageID *int64) []model.Group {
	var out []model.Group
	for _, g := range f.groups {
		if samePage(g.PageID, pageID) {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func orderOf(t *testing.T, assignments []order.Assignment, id int64) int {
	t.Helper()
	for _, a := range assignments {
		if a.ID == id {
			return a.Order
		}
	}
	t.Fatalf("no assignment for id %d in %+v", id, assignments)
	return -1
}

func TestPlanGroupDropReorder(t *testing.T) {
	// Scenario: [G1(0), G2(1), G3(2)]; drop G3 on G1 -> [G3(0), G1(1), G2(2)].
	v := &fakeView{groups: []model.Group{
		{ID: 1, Name: "G1", Order: 0},
		{ID: 2, Name: "G2", Order: 1},
		{ID: 3, Name: "G3", Order: 2},
	}}

	got := PlanGroupDrop(v, 3, 1)
	if got == nil {
		t.Fatal("expected a plan")
	}
	if orderOf(t, got, 3) != 0 || orderOf(t, got, 1) != 1 || orderOf(t, got, 2) != 2 {
		t.Errorf("unexpected assignments: %+v", got)
	}
}

func TestPlanGroupDropNoOps(t *testing.T) {
	pageID := int64(9)
	v := &fakeView{groups: []model.Group{
		{ID: 1, Order: 0},
		{ID: 2, Order: 1},
		{ID: 3, Order: 0, PageID: &pageID},
	}}

	tests := []struct {
		name   string
		source int64
		target int64
	}{
		{name: "self drop", source: 1, target: 1},
		{name: "missing source", source: 99, target: 1},
		{name: "missing target", source: 1, target: 99},
		{name: "different pages", source: 1, target: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlanGroupDrop(v, tt.source, tt.target); got != nil {
				t.Errorf("expected nil plan, got %+v", got)
			}
		})
	}
}

func TestPlanObjectDropSameGroup(t *testing.T) {
	v := &fakeView{
		groups: []model.Group{{ID: 1, Order: 0}},
		objects: []model.Object{
			{ID: 10, GroupID: 1, Order: 0},
			{ID: 11, GroupID: 1, Order: 1},
			{ID: 12, GroupID: 1, Order: 2},
		},
	}

	plan := PlanObjectDrop(v, 12, Target{Kind: TargetObject, ID: 10})
	if plan == nil {
		t.Fatal("expected a plan")
	}
	if plan.Reparented {
		t.Error("same-group move must not reparent")
	}
	if len(plan.SourceOrders) != 0 {
		t.Errorf("same-group move must not touch a second sibling set: %+v", plan.SourceOrders)
	}
	if orderOf(t, plan.TargetOrders, 12) != 0 || orderOf(t, plan.TargetOrders, 10) != 1 || orderOf(t, plan.TargetOrders, 11) != 2 {
		t.Errorf("unexpected target orders: %+v", plan.TargetOrders)
	}
}

func TestPlanObjectDropCrossGroup(t *testing.T) {
	// Scenario: A=[a(0), b(1)], B=[c(0)]; drag a onto c.
	// A becomes [b(0)], B becomes [a(0), c(1)].
	v := &fakeView{
		groups: []model.Group{{ID: 1, Order: 0}, {ID: 2, Order: 1}},
		objects: []model.Object{
			{ID: 10, GroupID: 1, Name: "a", Order: 0},
			{ID: 11, GroupID: 1, Name: "b", Order: 1},
			{ID: 20, GroupID: 2, Name: "c", Order: 0},
		},
	}

	plan := PlanObjectDrop(v, 10, Target{Kind: TargetObject, ID: 20})
	if plan == nil {
		t.Fatal("expected a plan")
	}
	if !plan.Reparented || plan.GroupID != 2 {
		t.Fatalf("expected reparent into group 2, got %+v", plan)
	}
	if len(plan.SourceOrders) != 1 || orderOf(t, plan.SourceOrders, 11) != 0 {
		t.Errorf("unexpected source orders: %+v", plan.SourceOrders)
	}
	if orderOf(t, plan.TargetOrders, 10) != 0 || orderOf(t, plan.TargetOrders, 20) != 1 {
		t.Errorf("unexpected target orders: %+v", plan.TargetOrders)
	}
}

func TestPlanObjectDropOnGroupContainer(t *testing.T) {
	v := &fakeView{
		groups: []model.Group{{ID: 1, Order: 0}, {ID: 2, Order: 1}},
		objects: []model.Object{
			{ID: 10, GroupID: 1, Order: 0},
			{ID: 20, GroupID: 2, Order: 0},
			{ID: 21, GroupID: 2, Order: 1},
		},
	}

	plan := PlanObjectDrop(v, 10, Target{Kind: TargetGroup, ID: 2})
	if plan == nil {
		t.Fatal("expected a plan")
	}
	if !plan.Reparented || plan.GroupID != 2 {
		t.Fatalf("expected reparent into group 2, got %+v", plan)
	}
	// Appended at the end of group 2.
	if orderOf(t, plan.TargetOrders, 10) != 2 {
		t.Errorf("expected appended order 2, got %+v", plan.TargetOrders)
	}
	if len(plan.SourceOrders) != 0 {
		t.Errorf("source group had one object; after removal the reindex is empty, got %+v", plan.SourceOrders)
	}

	t.Run("own group is a no-op", func(t *testing.T) {
		if got := PlanObjectDrop(v, 10, Target{Kind: TargetGroup, ID: 1}); got != nil {
			t.Errorf("expected nil plan, got %+v", got)
		}
	})
}

func TestPlanObjectDropStaleAndCancelled(t *testing.T) {
	v := &fakeView{
		groups:  []model.Group{{ID: 1, Order: 0}},
		objects: []model.Object{{ID: 10, GroupID: 1, Order: 0}},
	}

	tests := []struct {
		name   string
		source int64
		target Target
	}{
		{name: "no target", source: 10, target: Target{Kind: TargetNone}},
		{name: "self target", source: 10, target: Target{Kind: TargetObject, ID: 10}},
		{name: "missing source", source: 99, target: Target{Kind: TargetObject, ID: 10}},
		{name: "missing target object", source: 10, target: Target{Kind: TargetObject, ID: 99}},
		{name: "missing target group", source: 10, target: Target{Kind: TargetGroup, ID: 99}},
		{name: "unknown kind", source: 10, target: Target{Kind: TargetKind("todo"), ID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlanObjectDrop(v, tt.source, tt.target); got != nil {
				t.Errorf("expected nil plan, got %+v", got)
			}
		})
	}
}
