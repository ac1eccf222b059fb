// ABOUTME: Login screen as a bubbletea model
// ABOUTME: Two huh forms: request a code by email, then verify the code

package login

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pratiksef/pratiksef/internal/tui/styles"
)

// Step is the login flow position.
type Step int

const (
	StepEmail Step = iota
	StepCode
)

// EmailSubmittedMsg is sent when the user submits their email address.
type EmailSubmittedMsg struct {
	Email string
}

// CodeSubmittedMsg is sent when the user submits the one-time code.
type CodeSubmittedMsg struct {
	Email string
	Code  string
}

// Login manages the passwordless login flow.
type Login struct {
	step   Step
	email  string
	code   string
	form   *huh.Form
	banner string
	busy   bool
	width  int
}

// New creates the login screen at the email step.
func New() *Login {
	l := &Login{}
	l.form = l.emailForm()
	return l
}

func (l *Login) emailForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("E-posta adresiniz").
				Placeholder("ornek@eposta.com").
				Value(&l.email),
		),
	).WithTheme(huh.ThemeBase())
}

func (l *Login) codeForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Doğrulama kodu").
				Placeholder("123456").
				CharLimit(6).
				Value(&l.code),
		),
	).WithTheme(huh.ThemeBase())
}

// Position returns the current flow position.
func (l *Login) Position() Step {
	return l.step
}

// StartCodeEntry switches to the verify step after a code was issued.
func (l *Login) StartCodeEntry() tea.Cmd {
	l.step = StepCode
	l.busy = false
	l.banner = ""
	l.code = ""
	l.form = l.codeForm()
	return l.form.Init()
}

// BackToEmail returns to the email step, keeping the typed address.
func (l *Login) BackToEmail() tea.Cmd {
	l.step = StepEmail
	l.busy = false
	l.banner = ""
	l.form = l.emailForm()
	return l.form.Init()
}

// SetError shows an error banner and re-enables the form.
func (l *Login) SetError(msg string) tea.Cmd {
	l.banner = msg
	l.busy = false
	if l.step == StepEmail {
		l.form = l.emailForm()
	} else {
		l.form = l.codeForm()
	}
	return l.form.Init()
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		// Typing dismisses the previous error.
		l.banner = ""
		if msg.String() == "esc" && l.step == StepCode {
			return l, l.BackToEmail()
		}
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted && !l.busy {
		l.busy = true
		if l.step == StepEmail {
			email := strings.TrimSpace(l.email)
			return l, func() tea.Msg { return EmailSubmittedMsg{Email: email} }
		}
		email := strings.TrimSpace(l.email)
		code := strings.TrimSpace(l.code)
		return l, func() tea.Msg { return CodeSubmittedMsg{Email: email, Code: code} }
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Pratik Şef"))
	b.WriteString("\n")
	if l.step == StepEmail {
		b.WriteString(styles.Subtitle.Render("E-posta ile giriş yap"))
	} else {
		b.WriteString(styles.Subtitle.Render("Doğrulama kodunu gir"))
	}
	b.WriteString("\n")

	if l.banner != "" {
		b.WriteString(styles.Banner.Render("⚠ " + l.banner))
		b.WriteString("\n")
	}

	if l.busy {
		b.WriteString(styles.Subtitle.Render("Gönderiliyor…"))
		b.WriteString("\n")
	} else {
		b.WriteString(l.form.View())
	}

	if l.step == StepCode {
		b.WriteString(styles.Help.Render("esc: e-postayı değiştir"))
	}

	return b.String()
}
