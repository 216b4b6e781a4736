// Package export writes the planner to plain YAML files and reads them
// back. Each group becomes one file named after its slugified name and
// carrying its whole subtree; todos and pages each get a file of their own.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/umi-app/umi/internal/atomicfile"
	"github.com/umi-app/umi/internal/model"
	"github.com/umi-app/umi/internal/order"
	"github.com/umi-app/umi/internal/schedule"
	"github.com/umi-app/umi/internal/slugs"
	"github.com/umi-app/umi/internal/store"
)

// File kinds, written into every exported file so import can dispatch
// without relying on file names.
const (
	KindGroup = "group"
	KindTodos = "todos"
	KindPages = "pages"
)

type header struct {
	Kind string `yaml:"kind"`
}

// GroupFile is one group's exported subtree.
type GroupFile struct {
	Kind    string           `yaml:"kind"`
	Name    string           `yaml:"name"`
	Page    string           `yaml:"page,omitempty"`
	Objects []ObjectSnapshot `yaml:"objects"`
}

// ObjectSnapshot carries an object with its fields, attachments and
// schedule placements. Order is positional within the parent list.
type ObjectSnapshot struct {
	Name            string               `yaml:"name"`
	DefaultDuration int                  `yaml:"default_duration,omitempty"`
	Fields          []FieldSnapshot      `yaml:"fields,omitempty"`
	Attachments     []AttachmentSnapshot `yaml:"attachments,omitempty"`
	Schedule        []PlacementSnapshot  `yaml:"schedule,omitempty"`
}

type FieldSnapshot struct {
	Type  model.FieldType `yaml:"type"`
	Label string          `yaml:"label"`
	Value string          `yaml:"value"`
}

type AttachmentSnapshot struct {
	Name     string `yaml:"name"`
	MimeType string `yaml:"mime_type"`
	Data     []byte `yaml:"data"`
}

type PlacementSnapshot struct {
	Day      model.Day `yaml:"day"`
	Time     string    `yaml:"time"`
	Duration int       `yaml:"duration"`
}

// TodosFile is the flat todo list.
type TodosFile struct {
	Kind  string         `yaml:"kind"`
	Todos []TodoSnapshot `yaml:"todos"`
}

type TodoSnapshot struct {
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed,omitempty"`
	CreatedAt int64  `yaml:"created_at,omitempty"`
}

// PagesFile lists custom pages in display order.
type PagesFile struct {
	Kind  string         `yaml:"kind"`
	Pages []PageSnapshot `yaml:"pages"`
}

type PageSnapshot struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon,omitempty"`
}

// Snapshot writes every group, the todo list and the page list under dir,
// creating it if needed. Returns the paths written, relative to dir.
func Snapshot(st *store.Store, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	pages, err := st.Pages()
	if err != nil {
		return nil, err
	}
	pageNames := make(map[int64]string, len(pages))
	for _, pg := range pages {
		pageNames[pg.ID] = pg.Name
	}

	groups, err := st.AllGroups()
	if err != nil {
		return nil, err
	}

	var written []string
	seen := make(map[string]int)
	for _, g := range groups {
		gf, err := groupFile(st, g, pageNames)
		if err != nil {
			return nil, err
		}
		name := uniqueName(seen, slugs.FileSlug(g.Name))
		if err := writeYAML(filepath.Join(dir, name), gf); err != nil {
			return nil, err
		}
		written = append(written, name)
	}

	todos, err := st.Todos()
	if err != nil {
		return nil, err
	}
	tf := TodosFile{Kind: KindTodos}
	for _, t := range todos {
		tf.Todos = append(tf.Todos, TodoSnapshot{Text: t.Text, Completed: t.Completed, CreatedAt: t.CreatedAt})
	}
	if err := writeYAML(filepath.Join(dir, "todos.yaml"), tf); err != nil {
		return nil, err
	}
	written = append(written, "todos.yaml")

	pf := PagesFile{Kind: KindPages}
	for _, pg := range pages {
		pf.Pages = append(pf.Pages, PageSnapshot{Name: pg.Name, Icon: pg.Icon})
	}
	if err := writeYAML(filepath.Join(dir, "pages.yaml"), pf); err != nil {
		return nil, err
	}
	written = append(written, "pages.yaml")

	return written, nil
}

func groupFile(st *store.Store, g model.Group, pageNames map[int64]string) (*GroupFile, error) {
	gf := &GroupFile{Kind: KindGroup, Name: g.Name}
	if g.PageID != nil {
		gf.Page = pageNames[*g.PageID]
	}

	objects, err := st.ObjectsInGroup(g.ID)
	if err != nil {
		return nil, err
	}
	items, err := st.ScheduleItems(g.ID)
	if err != nil {
		return nil, err
	}

	for _, o := range objects {
		snap := ObjectSnapshot{Name: o.Name, DefaultDuration: o.DefaultDuration}

		fields, err := st.Fields(o.ID)
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			snap.Fields = append(snap.Fields, FieldSnapshot{Type: f.Type, Label: f.Label, Value: f.Value})
		}

		atts, err := st.Attachments(o.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range atts {
			full, err := st.Attachment(a.ID)
			if err != nil {
				return nil, err
			}
			snap.Attachments = append(snap.Attachments, AttachmentSnapshot{
				Name: full.Name, MimeType: full.MimeType, Data: full.Data,
			})
		}

		for _, it := range items {
			if it.ObjectID == o.ID {
				snap.Schedule = append(snap.Schedule, PlacementSnapshot{
					Day: it.Day, Time: it.Time, Duration: it.Duration,
				})
			}
		}

		gf.Objects = append(gf.Objects, snap)
	}
	return gf, nil
}

func uniqueName(seen map[string]int, base string) string {
	if base == "" {
		base = "group"
	}
	seen[base]++
	if seen[base] == 1 {
		return base + ".yaml"
	}
	return fmt.Sprintf("%s-%d.yaml", base, seen[base])
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Result reports what a Restore run did.
type Result struct {
	Kind     string
	Warnings []string
}

// Restore reads one exported file and merges it into the store. Group files
// append a new group (creating the named page if it does not exist yet);
// todo and page files append entries. Schedule placements that no longer
// fit become warnings, not errors.
func Restore(st *store.Store, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var h header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	switch h.Kind {
	case KindGroup:
		var gf GroupFile
		if err := yaml.Unmarshal(data, &gf); err != nil {
			return nil, fmt.Errorf("failed to parse group file: %w", err)
		}
		return restoreGroup(st, &gf)
	case KindTodos:
		var tf TodosFile
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("failed to parse todos file: %w", err)
		}
		return restoreTodos(st, &tf)
	case KindPages:
		var pf PagesFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, fmt.Errorf("failed to parse pages file: %w", err)
		}
		return restorePages(st, &pf)
	default:
		return nil, fmt.Errorf("unknown export kind %q in %s", h.Kind, path)
	}
}

func restoreGroup(st *store.Store, gf *GroupFile) (*Result, error) {
	res := &Result{Kind: KindGroup}

	var pageID *int64
	if gf.Page != "" {
		id, err := findOrCreatePage(st, gf.Page, "")
		if err != nil {
			return nil, err
		}
		pageID = &id
	}

	siblings, err := st.Groups(pageID)
	if err != nil {
		return nil, err
	}
	groupID, err := st.AddGroup(gf.Name, order.Next(len(siblings)), pageID)
	if err != nil {
		return nil, err
	}

	for i, snap := range gf.Objects {
		objID, err := st.AddObject(groupID, snap.Name, i, snap.DefaultDuration)
		if err != nil {
			return nil, err
		}
		for _, f := range snap.Fields {
			if !f.Type.Valid() {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("skipped field %q on %q: unknown type %q", f.Label, snap.Name, f.Type))
				continue
			}
			if _, err := st.AddField(objID, f.Type, f.Label, f.Value); err != nil {
				return nil, err
			}
		}
		for _, a := range snap.Attachments {
			if _, err := st.AddAttachment(objID, a.Name, a.MimeType, a.Data); err != nil {
				return nil, err
			}
		}
		for _, pl := range snap.Schedule {
			item := model.ScheduleItem{
				GroupID:    groupID,
				ObjectID:   objID,
				ObjectName: snap.Name,
				Day:        pl.Day,
				Time:       pl.Time,
				Duration:   pl.Duration,
			}
			existing, err := st.ScheduleItems(groupID)
			if err != nil {
				return nil, err
			}
			if err := schedule.CheckPlacement(existing, item); err != nil {
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("skipped placement of %q at %s %s: %v", snap.Name, pl.Day, pl.Time, err))
				continue
			}
			if _, err := st.AddScheduleItem(item); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

func restoreTodos(st *store.Store, tf *TodosFile) (*Result, error) {
	existing, err := st.Todos()
	if err != nil {
		return nil, err
	}
	next := order.Next(len(existing))
	for i, t := range tf.Todos {
		id, err := st.AddTodo(t.Text, next+i, t.CreatedAt)
		if err != nil {
			return nil, err
		}
		if t.Completed {
			if err := st.SetTodoCompleted(id, true); err != nil {
				return nil, err
			}
		}
	}
	return &Result{Kind: KindTodos}, nil
}

func restorePages(st *store.Store, pf *PagesFile) (*Result, error) {
	res := &Result{Kind: KindPages}
	for _, pg := range pf.Pages {
		if _, err := findOrCreatePage(st, pg.Name, pg.Icon); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func findOrCreatePage(st *store.Store, name, icon string) (int64, error) {
	pages, err := st.Pages()
	if err != nil {
		return 0, err
	}
	for _, pg := range pages {
		if pg.Name == name {
			return pg.ID, nil
		}
	}
	return st.AddPage(name, icon, order.Next(len(pages)))
}
