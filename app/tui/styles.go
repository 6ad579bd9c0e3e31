package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mytheresa/product-categories/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#7C3AED")
	colorLink    = lipgloss.Color("#3B82F6")
	colorDanger  = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
	colorText    = lipgloss.Color("#F3F4F6")
	colorBorder  = lipgloss.Color("#4B5563")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	focusedSectionStyle = sectionStyle.
				BorderForeground(colorPrimary)

	// Tabs and toggles
	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPrimary).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	selectedToggleStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorLink).
				Padding(0, 1)

	allToggleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSuccess).
			Padding(0, 1)

	outlinedToggleStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Underline(true)

	// Table
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	maleStyle   = cellStyle.Foreground(colorLink)
	femaleStyle = cellStyle.Foreground(colorDanger)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)
)

// NoMatchesMessage is shown instead of the table when nothing is visible.
const NoMatchesMessage = "No products matching selected criteria"

const ownerColumn = 3

// FormatKey formats a help key
func FormatKey(key, description string) string {
	return helpKeyStyle.Render(key) + " " + mutedStyle.Render(description)
}

// RenderTable draws the product table. Header sort markers are decorative.
func RenderTable(products []models.EnrichedProduct) string {
	if len(products) == 0 {
		return mutedStyle.Render(NoMatchesMessage)
	}

	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Category.Icon + " - " + p.Category.Title,
			p.User.Name,
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("ID ⇅", "Product ⇣", "Category ⇡", "User ⇅").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == ownerColumn && row >= 0 && row < len(products) {
				return ownerStyle(products[row].User)
			}
			return cellStyle
		}).
		String()
}

func ownerStyle(u *models.User) lipgloss.Style {
	switch u.Sex {
	case models.SexMale:
		return maleStyle
	case models.SexFemale:
		return femaleStyle
	default:
		return cellStyle
	}
}
