// ABOUTME: Ingredient wizard as a bubbletea model
// ABOUTME: huh form collecting ingredients and a meal type for generation

package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pratiksef/pratiksef/internal/recipe"
	"github.com/pratiksef/pratiksef/internal/tui/styles"
)

// SubmittedMsg is sent when the user asks for a recipe.
type SubmittedMsg struct {
	Ingredients string
	MealTypeID  string
}

// Wizard collects the generation request input.
type Wizard struct {
	ingredients string
	mealTypeID  string
	form        *huh.Form
	banner      string
	width       int
}

// New creates the wizard with the catalog's first meal type preselected.
func New() *Wizard {
	w := &Wizard{mealTypeID: recipe.MealTypes[0].ID}
	w.form = w.createForm()
	return w
}

func (w *Wizard) createForm() *huh.Form {
	var options []huh.Option[string]
	for _, m := range recipe.MealTypes {
		options = append(options, huh.NewOption(m.Title, m.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Malzemeler").
				Description("Elinizdeki malzemeleri yazın, size özel tarif önerelim.").
				Placeholder("Örn: tavuk, domates, soğan, sarımsak...").
				Value(&w.ingredients),
			huh.NewSelect[string]().
				Title("Öğün Türü").
				Options(options...).
				Value(&w.mealTypeID),
		),
	).WithTheme(huh.ThemeBase())
}

// Reset rearms the form for another request, keeping the previous input as
// a starting point.
func (w *Wizard) Reset() tea.Cmd {
	w.banner = ""
	w.form = w.createForm()
	return w.form.Init()
}

// SetError shows an error banner and rearms the form.
func (w *Wizard) SetError(msg string) tea.Cmd {
	cmd := w.Reset()
	w.banner = msg
	return cmd
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = size.Width
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		ingredients := strings.TrimSpace(w.ingredients)
		mealTypeID := w.mealTypeID
		cmd = tea.Batch(cmd, func() tea.Msg {
			return SubmittedMsg{Ingredients: ingredients, MealTypeID: mealTypeID}
		})
		return w, cmd
	}

	return w, cmd
}

// View implements tea.Model
func (w *Wizard) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Pratik Şef"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Elinizdeki malzemeleri yazın, size özel tarif önerelim."))
	b.WriteString("\n")

	if w.banner != "" {
		b.WriteString(styles.Banner.Render("⚠ " + w.banner))
		b.WriteString("\n")
	}

	b.WriteString(w.form.View())
	b.WriteString(styles.Help.Render("ctrl+t: tariflerim · ctrl+c: çıkış"))

	return b.String()
}
