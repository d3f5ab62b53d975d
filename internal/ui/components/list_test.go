package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Akashdeep-Patra/playbooks/internal/filter"
	"github.com/Akashdeep-Patra/playbooks/internal/picker"
	"github.com/Akashdeep-Patra/playbooks/internal/ui"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

type item struct {
	id   int
	name string
}

func (i item) ID() int      { return i.id }
func (i item) Name() string { return i.name }

func items(n int) []item {
	out := make([]item, n)
	for i := range out {
		out[i] = item{i + 1, fmt.Sprintf("line-%02d", i+1)}
	}
	return out
}

func render(m *picker.Manager[item], q filter.Filter, width, height int) string {
	out := RenderList(ui.DefaultStyles(), ListData[item]{
		Rows:     m.All(),
		Selected: m.Position(),
		Count:    m.Count(),
		Query:    q,
		Empty:    "nothing here",
	}, width, height)
	return ansi.Strip(out)
}

func TestFormatRow(t *testing.T) {
	assert.Equal(t, "7. deploy.txt", FormatRow(item{7, "deploy.txt"}, 40))
	assert.Equal(t, "7. dep...", FormatRow(item{7, "deploy.txt"}, 9))
}

func TestRenderList_ShortList(t *testing.T) {
	m := picker.New(items(3))
	out := render(m, filter.New(filter.ModeName, "li"), 40, 10)

	assert.Contains(t, out, "Search (by Name): li_")
	assert.Contains(t, out, "▸ 1. line-01")
	assert.Contains(t, out, "3. line-03")
	assert.Contains(t, out, "All: 3")
	assert.NotContains(t, out, "more")
	assert.Len(t, strings.Split(out, "\n"), 10)
}

func TestRenderList_ScrolledShowsCounters(t *testing.T) {
	m := picker.New(items(20))
	for i := 0; i < 9; i++ {
		m.SelectDown()
	}
	// 10 rows total: 7 record rows, so the window is 3..9.
	out := render(m, filter.New(filter.ModeID, ""), 40, 10)

	assert.Contains(t, out, "Search (by ID): _")
	assert.Contains(t, out, "+ 3 more")
	assert.Contains(t, out, "+ 10 more")
	assert.Contains(t, out, "▸ 10. line-10")
	assert.NotContains(t, out, "3. line-03")
	assert.Contains(t, out, "4. line-04")
	assert.NotContains(t, out, "11. line-11")
	assert.Contains(t, out, "All: 20")
}

func TestRenderList_Empty(t *testing.T) {
	m := picker.New[item](nil)
	out := render(m, filter.New(filter.ModeName, "zzz"), 40, 6)

	assert.Contains(t, out, "nothing here")
	assert.Contains(t, out, "All: 0")
	assert.NotContains(t, out, "more")
}

func TestRenderList_TinyHeight(t *testing.T) {
	m := picker.New(items(5))
	m.SelectDown()
	out := render(m, filter.Filter{}, 30, 1)
	assert.Contains(t, out, "▸ 2. line-02")
}
