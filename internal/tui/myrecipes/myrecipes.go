// ABOUTME: Saved recipes list screen as a bubbletea model
// ABOUTME: Paginated card list with open, delete, and load-more actions

package myrecipes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pratiksef/pratiksef/internal/client"
	"github.com/pratiksef/pratiksef/internal/recipe"
	"github.com/pratiksef/pratiksef/internal/tui/styles"
)

// OpenMsg asks to open a saved recipe by id.
type OpenMsg struct {
	ID string
}

// DeleteMsg asks to delete a saved recipe by id.
type DeleteMsg struct {
	ID string
}

// LoadMoreMsg asks for the next listing page.
type LoadMoreMsg struct{}

// BackMsg leaves the listing screen.
type BackMsg struct{}

// Model displays the paginated saved recipe listing.
type Model struct {
	items   []recipe.Summary
	cursor  int
	hasMore bool
	loading bool
	banner  string
	width   int
	height  int
}

// New creates an empty listing; the first page loads on entry.
func New() *Model {
	return &Model{hasMore: true}
}

// Items returns the accumulated listing.
func (m *Model) Items() []recipe.Summary {
	return m.items
}

// SetPage merges a loaded page into the listing.
func (m *Model) SetPage(page []recipe.Summary, hasMore bool) {
	m.items = client.MergeSummaries(m.items, page)
	m.hasMore = hasMore
	m.loading = false
	if m.cursor >= len(m.items) && len(m.items) > 0 {
		m.cursor = len(m.items) - 1
	}
}

// Reset clears the listing so the next load starts over.
func (m *Model) Reset() {
	m.items = nil
	m.cursor = 0
	m.hasMore = true
	m.loading = false
	m.banner = ""
}

// Remove drops a deleted recipe from the listing.
func (m *Model) Remove(id string) {
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	if m.cursor >= len(m.items) && m.cursor > 0 {
		m.cursor--
	}
}

// SetLoading marks a page request as in flight.
func (m *Model) SetLoading() {
	m.loading = true
	m.banner = ""
}

// Loading reports whether a page request is outstanding.
func (m *Model) Loading() bool {
	return m.loading
}

// SetError shows an error banner and clears the loading state.
func (m *Model) SetError(msg string) {
	m.banner = msg
	m.loading = false
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
		m.height = msg.Height

	case tea.KeyMsg:
		m.banner = ""
		switch msg.String() {
		case "esc", "tab":
			return m, func() tea.Msg { return BackMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				return m, m.maybeLoadMore()
			}
			// At the end of the list: ask for the next page.
			return m, m.maybeLoadMore()
		case "enter":
			if m.cursor < len(m.items) {
				id := m.items[m.cursor].ID
				return m, func() tea.Msg { return OpenMsg{ID: id} }
			}
		case "d":
			if m.cursor < len(m.items) {
				id := m.items[m.cursor].ID
				return m, func() tea.Msg { return DeleteMsg{ID: id} }
			}
		}
	}

	return m, nil
}

// maybeLoadMore requests the next page near the end of the loaded items.
// The in-flight guard lives here: a new request is dropped while one is
// outstanding.
func (m *Model) maybeLoadMore() tea.Cmd {
	if m.loading || !m.hasMore {
		return nil
	}
	if len(m.items)-m.cursor > 2 {
		return nil
	}
	return func() tea.Msg { return LoadMoreMsg{} }
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Tariflerim"))
	b.WriteString("\n")

	if m.banner != "" {
		b.WriteString(styles.Banner.Render("⚠ " + m.banner))
		b.WriteString("\n")
	}

	if len(m.items) == 0 && !m.loading {
		b.WriteString(styles.Subtitle.Render("Henüz kayıtlı tarif yok."))
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render("İlk tarifini üretmek için Sihirbaz'a git!"))
		b.WriteString("\n")
		b.WriteString(styles.Help.Render("tab: sihirbaz · ctrl+c: çıkış"))
		return b.String()
	}

	for i, item := range m.items {
		date := ""
		if !item.CreatedAt.IsZero() {
			date = item.CreatedAt.Format("02.01.2006")
		}
		line := fmt.Sprintf("%s  %s", item.Title, styles.Subtitle.Render(date))
		if i == m.cursor {
			b.WriteString(styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		if desc := item.Description; desc != "" {
			b.WriteString("    " + styles.Subtitle.Render(truncate(desc, 70)))
			b.WriteString("\n")
		}
	}

	if m.loading {
		b.WriteString(styles.Subtitle.Render("Yükleniyor…"))
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render("enter: aç · d: sil · tab: sihirbaz · ctrl+c: çıkış"))
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
