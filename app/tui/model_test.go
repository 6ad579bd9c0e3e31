package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytheresa/product-categories/models"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	c := models.SampleCatalog()
	products, err := models.Join(c.Products, c.Categories, c.Users)
	require.NoError(t, err)

	return NewModel(products, c.Users, c.Categories)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()

	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyReset    = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func visibleNames(m Model) []string {
	names := []string{}
	for _, p := range m.Visible() {
		names = append(names, p.Name)
	}
	return names
}

func TestModelDefaults(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, FocusUsers, m.Focused())
	assert.Equal(t, models.ViewState{}, m.State())
	assert.Len(t, m.Visible(), 9)
}

func TestModelFocusCycles(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyTab)
	assert.Equal(t, FocusSearch, m.Focused())
	m = press(t, m, keyTab)
	assert.Equal(t, FocusCategories, m.Focused())
	m = press(t, m, keyTab)
	assert.Equal(t, FocusUsers, m.Focused())
	m = press(t, m, keyShiftTab)
	assert.Equal(t, FocusCategories, m.Focused())
}

func TestModelSelectUser(t *testing.T) {
	m := newTestModel(t)

	// Cursor 1 is Roma.
	m = press(t, m, keyRight, keyEnter)
	assert.Equal(t, "Roma", m.State().Owner)
	assert.Equal(t, []string{"Milk", "Beer"}, visibleNames(m))

	// Back to All.
	m = press(t, m, keyLeft, keyLeft, keyEnter)
	assert.Empty(t, m.State().Owner)
	assert.Len(t, m.Visible(), 9)
}

func TestModelCursorIsClamped(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyRight, keyRight, keyRight, keyRight, keyRight, keyRight, keyEnter)
	assert.Equal(t, "John", m.State().Owner)
	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), NoMatchesMessage)
}

func TestModelSearch(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyTab, runes("A"), runes("N"))
	assert.Equal(t, "AN", m.State().Search)
	assert.Equal(t, []string{"Banana"}, visibleNames(m))

	// q is text while searching.
	m = press(t, m, runes("q"))
	assert.Equal(t, "ANq", m.State().Search)

	m = press(t, m, keyEsc)
	assert.Empty(t, m.State().Search)
	assert.Len(t, m.Visible(), 9)
}

func TestModelToggleCategories(t *testing.T) {
	m := newTestModel(t)

	// Grocery is cursor 1, Drinks cursor 2.
	m = press(t, m, keyShiftTab, keyRight, keyEnter, keyRight, keyEnter)
	assert.Equal(t, []string{"Grocery", "Drinks"}, m.State().Categories)
	assert.Equal(t, []string{"Milk", "Bread", "Eggs", "Sugar", "Beer"}, visibleNames(m))

	m = press(t, m, keyEnter)
	assert.Equal(t, []string{"Grocery"}, m.State().Categories)

	// All clears the selection.
	m = press(t, m, keyLeft, keyLeft, keyEnter)
	assert.Empty(t, m.State().Categories)
}

func TestModelCombinedFiltersAndReset(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyRight, keyEnter, keyTab, runes("e"))
	assert.Equal(t, []string{"Beer"}, visibleNames(m))
	assert.Contains(t, m.View(), "Beer")
	assert.Contains(t, m.View(), "🍺 - Drinks")

	m = press(t, m, keyReset)
	assert.Equal(t, models.ViewState{}, m.State())
	assert.Len(t, m.Visible(), 9)

	// The search field is cleared too, so the next key starts fresh.
	m = press(t, m, runes("x"))
	assert.Equal(t, "x", m.State().Search)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderTable(t *testing.T) {
	m := newTestModel(t)

	out := RenderTable(m.Visible())
	for _, want := range []string{"ID", "Product", "Category", "User", "Jacket", "👚 - Clothes", "Max"} {
		assert.Contains(t, out, want)
	}

	assert.Equal(t, mutedStyle.Render(NoMatchesMessage), RenderTable(nil))
}
