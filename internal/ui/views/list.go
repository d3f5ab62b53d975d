package views

import (
	"fmt"

	"github.com/Akashdeep-Patra/playbooks/internal/filter"
	"github.com/Akashdeep-Patra/playbooks/internal/picker"
	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/Akashdeep-Patra/playbooks/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// recordList is the state shared by the files and playbook views: a
// selection manager plus the query last applied to it.
type recordList[T filter.Record] struct {
	mgr   *picker.Manager[T]
	all   []T
	query filter.Filter
}

func newRecordList[T filter.Record]() recordList[T] {
	return recordList[T]{mgr: picker.New[T](nil)}
}

// set replaces the records and re-applies the current query.
func (l *recordList[T]) set(items []T) {
	l.all = items
	l.mgr = picker.New(items)
	l.mgr.ApplyFilter(filter.Func[T](l.query))
}

func (l *recordList[T]) setFilter(f filter.Filter) {
	l.query = f
	l.mgr.ApplyFilter(filter.Func[T](f))
}

func (l *recordList[T]) current() (T, bool) { return l.mgr.Current() }

// navigate moves the selection for navigation keys and mouse wheel events.
// It reports whether msg was consumed.
func (l *recordList[T]) navigate(keys ListKeys, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Down):
			l.mgr.SelectDown()
			return true
		case key.Matches(msg, keys.Up):
			l.mgr.SelectUp()
			return true
		}
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			l.mgr.SelectDown()
			return true
		case tea.MouseButtonWheelUp:
			l.mgr.SelectUp()
			return true
		}
	}
	return false
}

// noMatch returns the empty-list text for a query that matched nothing,
// suggesting the closest name when the user searched by name.
func (l *recordList[T]) noMatch() string {
	if l.query.Mode == filter.ModeName {
		if name, ok := filter.Closest(l.query.Text, l.all); ok {
			return fmt.Sprintf("No matches. Did you mean %s?", name)
		}
	}
	return "No matches"
}

func (l *recordList[T]) render(styles ui.Styles, empty string, width, height int) string {
	return components.RenderList(styles, components.ListData[T]{
		Rows:     l.mgr.All(),
		Selected: l.mgr.Position(),
		Count:    l.mgr.Count(),
		Query:    l.query,
		Empty:    empty,
	}, width, height)
}
