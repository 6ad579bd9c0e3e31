package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mytheresa/product-categories/models"
)

// Focus identifies the control receiving key presses.
type Focus int

const (
	FocusUsers Focus = iota
	FocusSearch
	FocusCategories
	focusCount
)

// Model is the Bubbletea model of the catalog screen. The view state is the
// only thing that changes; products, users and categories are fixed.
type Model struct {
	products   []models.EnrichedProduct
	users      []models.User
	categories []models.Category

	state  models.ViewState
	focus  Focus
	search textinput.Model

	// Cursor 0 is the "All" entry of each row.
	userCursor     int
	categoryCursor int
}

// NewModel creates the catalog screen with every filter at its default.
func NewModel(products []models.EnrichedProduct, users []models.User, categories []models.Category) Model {
	ti := textinput.New()
	ti.Placeholder = "Search"
	ti.Prompt = "🔍 "

	return Model{
		products:   products,
		users:      users,
		categories: categories,
		search:     ti,
	}
}

// State returns the current view state.
func (m Model) State() models.ViewState {
	return m.state
}

// Focused returns the control receiving key presses.
func (m Model) Focused() Focus {
	return m.focus
}

// Visible returns the products passing the current filters.
func (m Model) Visible() []models.EnrichedProduct {
	return models.FilterProducts(m.products, m.state.Filters())
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses. Each key maps onto one view state action.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+r":
		m.state = m.state.Reset()
		m.search.SetValue("")
		return m, nil
	}

	if m.focus == FocusSearch {
		if key.String() == "esc" {
			m.state = m.state.ClearSearch()
			m.search.SetValue("")
			return m, nil
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.state.Search {
			m.state = m.state.SetSearch(m.search.Value())
		}
		return m, cmd
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "enter", " ":
		m.activate()
	}

	return m, nil
}

func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == FocusSearch {
		cmd := m.search.Focus()
		return m, cmd
	}
	m.search.Blur()
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case FocusUsers:
		m.userCursor = clamp(m.userCursor+delta, 0, len(m.users))
	case FocusCategories:
		m.categoryCursor = clamp(m.categoryCursor+delta, 0, len(m.categories))
	}
}

func (m *Model) activate() {
	switch m.focus {
	case FocusUsers:
		if m.userCursor == 0 {
			m.state = m.state.SelectAllUsers()
			return
		}
		m.state = m.state.SelectUser(m.users[m.userCursor-1].Name)
	case FocusCategories:
		if m.categoryCursor == 0 {
			m.state = m.state.SelectAllCategories()
			return
		}
		m.state = m.state.ToggleCategory(m.categories[m.categoryCursor-1].Title)
	}
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Product Categories"))
	b.WriteString("\n")
	b.WriteString(m.section(FocusUsers, m.userTabs()))
	b.WriteString("\n")
	b.WriteString(m.section(FocusSearch, m.search.View()))
	b.WriteString("\n")
	b.WriteString(m.section(FocusCategories, m.categoryToggles()))
	b.WriteString("\n")
	b.WriteString(RenderTable(m.Visible()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(strings.Join([]string{
		FormatKey("tab", "focus"),
		FormatKey("←/→", "move"),
		FormatKey("enter", "select"),
		FormatKey("esc", "clear search"),
		FormatKey("ctrl+r", "reset all filters"),
		FormatKey("q", "quit"),
	}, " • ")))

	return b.String()
}

func (m Model) section(f Focus, content string) string {
	if m.focus == f {
		return focusedSectionStyle.Render(content)
	}
	return sectionStyle.Render(content)
}

func (m Model) userTabs() string {
	tabs := make([]string, 0, len(m.users)+1)
	tabs = m.withCursor(tabs, FocusUsers, 0, tabStyle(m.state.Owner == "").Render("All"))
	for i, u := range m.users {
		tabs = m.withCursor(tabs, FocusUsers, i+1, tabStyle(m.state.Owner == u.Name).Render(u.Name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) categoryToggles() string {
	all := allToggleStyle
	if len(m.state.Categories) > 0 {
		all = outlinedToggleStyle
	}

	toggles := make([]string, 0, len(m.categories)+1)
	toggles = m.withCursor(toggles, FocusCategories, 0, all.Render("All"))
	for i, c := range m.categories {
		style := inactiveTabStyle
		if m.state.IsCategorySelected(c.Title) {
			style = selectedToggleStyle
		}
		toggles = m.withCursor(toggles, FocusCategories, i+1, style.Render(c.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, toggles...)
}

func (m Model) withCursor(items []string, f Focus, index int, rendered string) []string {
	cursor := m.userCursor
	if f == FocusCategories {
		cursor = m.categoryCursor
	}
	if m.focus == f && cursor == index {
		rendered = cursorStyle.Render(rendered)
	}
	return append(items, rendered, " ")
}

func tabStyle(active bool) lipgloss.Style {
	if active {
		return activeTabStyle
	}
	return inactiveTabStyle
}

func clamp(v, low, high int) int {
	return min(max(v, low), high)
}

// Run starts the terminal program and blocks until the user quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
