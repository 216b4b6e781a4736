package planner

import (
	"errors"
	"time"

	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/order"
	"github.com/umi-app/umi/internal/store"
)

// Todos lists todos in display order.
func (p *Planner) Todos() ([]model.Todo, error) {
	return p.st.Todos()
}

// AddTodo appends a todo to the end of the list.
func (p *Planner) AddTodo(text string) (*model.Todo, error) {
	todos, err := p.st.Todos()
	if err != nil {
		return nil, err
	}
	id, err := p.st.AddTodo(text, order.Next(len(todos)), time.Now().Unix())
	if err != nil {
		return nil, err
	}
	return p.st.Todo(id)
}

// ToggleTodo flips a todo's completion state. A missing ID is a no-op.
func (p *Planner) ToggleTodo(id int64) (*model.Todo, error) {
	t, err := p.st.Todo(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := p.st.SetTodoCompleted(id, !t.Completed); err != nil {
		return nil, err
	}
	return p.st.Todo(id)
}

// DeleteTodo removes a todo and reindexes the rest, returning the
// remaining list. A missing ID returns (nil, nil).
func (p *Planner) DeleteTodo(id int64) ([]model.Todo, error) {
	if _, err := p.st.Todo(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := p.st.DeleteTodo(id); err != nil {
		return nil, err
	}

	todos, err := p.st.Todos()
	if err != nil {
		return nil, err
	}
	if err := p.st.ApplyTodoOrders(order.Reindex(todos, todoID)); err != nil {
		return nil, err
	}
	return p.st.Todos()
}

// MoveTodo drops one todo onto another, taking its position in the list.
// Self drops and stale IDs change nothing; the current list is returned.
func (p *Planner) MoveTodo(sourceID, targetID int64) ([]model.Todo, error) {
	todos, err := p.st.Todos()
	if err != nil {
		return nil, err
	}

	from := order.IndexOf(todos, todoID, sourceID)
	to := order.IndexOf(todos, todoID, targetID)
	if from < 0 || to < 0 || from == to {
		return todos, nil
	}

	moved := order.Move(todos, from, to)
	if err := p.st.ApplyTodoOrders(order.Reindex(moved, todoID)); err != nil {
		return nil, err
	}
	return p.st.Todos()
}

func todoID(t model.Todo) int64 { return t.ID }
