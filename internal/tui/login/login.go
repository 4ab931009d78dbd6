// ABOUTME: Login screen as a bubbletea model wrapping a huh credential form
// ABOUTME: Validates fields locally before emitting a submit message

package login

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/icons"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/styles"
	"github.com/juliomonteiiro/agenus-admin/internal/validate"
)

// SubmittedMsg is sent when the form passes local validation
type SubmittedMsg struct {
	Email    string
	Password string
}

// CancelledMsg is sent when the user backs out of the login screen
type CancelledMsg struct{}

// Login manages the credential form flow
type Login struct {
	form     *huh.Form
	email    string
	password string
	errMsg   string
	busy     bool
	width    int
}

// New creates a login screen
func New() *Login {
	l := &Login{}
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@example.com").
				CharLimit(120).
				Value(&l.email).
				Validate(func(s string) error {
					errs := validate.Login(validate.Credentials{Email: s, Password: "placeholder"})
					for _, e := range errs {
						if e.Field == "email" {
							return e
						}
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				CharLimit(120).
				Value(&l.password).
				Validate(func(s string) error {
					errs := validate.Login(validate.Credentials{Email: "x@example.com", Password: s})
					for _, e := range errs {
						if e.Field == "password" {
							return e
						}
					}
					return nil
				}),
		).Title("Sign In").
			Description("Authenticate against the catalog API"),
	).WithTheme(styles.FormTheme())
}

// SetError shows a login failure and re-arms the form for another attempt
func (l *Login) SetError(msg string) tea.Cmd {
	l.errMsg = msg
	l.busy = false
	l.password = ""
	l.form = l.createForm()
	return l.form.Init()
}

// SetBusy marks the form as waiting for the server
func (l *Login) SetBusy() {
	l.busy = true
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
		form, cmd := l.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			l.form = f
		}
		return l, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return l, func() tea.Msg { return CancelledMsg{} }
		}
		// Typing after a failure clears the banner
		l.errMsg = ""
	}

	if l.busy {
		return l, nil
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	if l.form.State == huh.StateCompleted {
		l.busy = true
		email, password := l.email, l.password
		return l, func() tea.Msg {
			return SubmittedMsg{Email: email, Password: password}
		}
	}

	return l, cmd
}

// View implements tea.Model
func (l *Login) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Login.String() + " Agenus Admin"))
	sb.WriteString("\n")

	if l.errMsg != "" {
		sb.WriteString(styles.ErrorBanner.Render(l.errMsg))
		sb.WriteString("\n\n")
	}

	if l.busy {
		sb.WriteString(styles.Subtitle.Render("Signing in..."))
		sb.WriteString("\n")
	}

	sb.WriteString(l.form.View())

	return sb.String()
}
