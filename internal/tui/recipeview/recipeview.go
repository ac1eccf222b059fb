// ABOUTME: Recipe detail screen as a bubbletea model
// ABOUTME: Renders a recipe with save/delete toggle and alternative regeneration

package recipeview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pratiksef/pratiksef/internal/recipe"
	"github.com/pratiksef/pratiksef/internal/tui/styles"
)

// SaveMsg asks to persist the displayed recipe.
type SaveMsg struct{}

// DeleteMsg asks to delete the displayed (saved) recipe.
type DeleteMsg struct{}

// AlternativeMsg asks for an alternative recipe from the same ingredients.
type AlternativeMsg struct{}

// BackMsg leaves the detail screen.
type BackMsg struct{}

// Model displays one recipe.
type Model struct {
	recipe    *recipe.Recipe
	imagePath string
	banner    string
	busy      bool
	width     int
}

// New creates a detail view for the given recipe.
func New(r *recipe.Recipe) *Model {
	return &Model{recipe: r}
}

// Recipe returns the displayed recipe.
func (m *Model) Recipe() *recipe.Recipe {
	return m.recipe
}

// SetImagePath records the locally cached image file for display.
func (m *Model) SetImagePath(path string) {
	m.imagePath = path
}

// SetBusy disables the action keys while an exchange is in flight.
func (m *Model) SetBusy(busy bool) {
	m.busy = busy
	if busy {
		m.banner = ""
	}
}

// SetError shows an error banner and re-enables the actions.
func (m *Model) SetError(msg string) {
	m.banner = msg
	m.busy = false
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		m.banner = ""
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }
		case "s":
			if m.recipe.Saved() {
				return m, func() tea.Msg { return DeleteMsg{} }
			}
			return m, func() tea.Msg { return SaveMsg{} }
		case "a":
			return m, func() tea.Msg { return AlternativeMsg{} }
		}
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	r := m.recipe
	var b strings.Builder

	if m.banner != "" {
		b.WriteString(styles.Banner.Render("⚠ " + m.banner))
		b.WriteString("\n")
	}

	b.WriteString(styles.Title.Render(r.Title))
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(styles.Subtitle.Render(r.Description))
		b.WriteString("\n")
	}

	b.WriteString(styles.Section.Render("Malzemeler"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "  • %s\n", ing)
	}

	b.WriteString(styles.Section.Render("Adımlar"))
	b.WriteString("\n")
	for i, step := range r.Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	if m.imagePath != "" {
		b.WriteString(styles.Subtitle.Render("Görsel: " + m.imagePath))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString(styles.Help.Render("İşleniyor…"))
	} else {
		saveLabel := "s: kaydet"
		if r.Saved() {
			saveLabel = "s: sil"
		}
		b.WriteString(styles.Help.Render(saveLabel + " · a: alternatif · esc: geri"))
	}

	return b.String()
}
