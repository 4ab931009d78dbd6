// ABOUTME: Create/edit product form as a bubbletea model wrapping huh
// ABOUTME: Validates title and description locally before emitting a submit message

package productform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/icons"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/styles"
	"github.com/juliomonteiiro/agenus-admin/internal/validate"
)

// SubmittedMsg is sent when the form passes local validation.
// ID is empty for create; ThumbnailPath is empty when no image was chosen.
type SubmittedMsg struct {
	ID            string
	Title         string
	Description   string
	Status        bool
	ThumbnailPath string
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

// Form manages the create/edit product flow
type Form struct {
	form   *huh.Form
	id     string
	title  string
	desc   string
	status string
	thumb  string
	errMsg string
	busy   bool
	edit   bool
}

// NewCreate builds an empty form for a new product
func NewCreate() *Form {
	f := &Form{status: "active"}
	f.form = f.createForm()
	return f
}

// NewEdit builds a form pre-filled from an existing product
func NewEdit(p *client.Product) *Form {
	f := &Form{edit: true}
	if p != nil {
		f.id = p.ID
		f.title = p.Title
		f.desc = p.Description
		if p.Status {
			f.status = "active"
		} else {
			f.status = "inactive"
		}
	}
	f.form = f.createForm()
	return f
}

func (f *Form) createForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("Red Shirt").
			CharLimit(100).
			Value(&f.title).
			Validate(func(s string) error {
				return fieldError("title", validate.Product(validate.ProductFields{
					Title:       s,
					Description: strings.Repeat("x", 10),
				}))
			}),
		huh.NewText().
			Title("Description").
			CharLimit(1000).
			Value(&f.desc).
			Validate(func(s string) error {
				return fieldError("description", validate.Product(validate.ProductFields{
					Title:       "valid title",
					Description: s,
				}))
			}),
	}

	if f.edit {
		fields = append(fields, huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Active", "active"),
				huh.NewOption("Inactive", "inactive"),
			).
			Value(&f.status))
	} else {
		fields = append(fields, huh.NewInput().
			Title("Thumbnail path (optional)").
			Placeholder("/path/to/image.png").
			CharLimit(256).
			Value(&f.thumb).
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				return validate.Thumbnail(s)
			}))
	}

	groupTitle := "New Product"
	if f.edit {
		groupTitle = "Edit Product"
	}

	return huh.NewForm(
		huh.NewGroup(fields...).
			Title(groupTitle).
			Description("Tab between fields, Enter to submit"),
	).WithTheme(styles.FormTheme())
}

// fieldError surfaces the validation error belonging to one field
func fieldError(field string, errs []validate.FieldError) error {
	for _, e := range errs {
		if e.Field == field {
			return e
		}
	}
	return nil
}

// SetError shows a server-side failure and re-arms the form
func (f *Form) SetError(msg string) tea.Cmd {
	f.errMsg = msg
	f.busy = false
	f.form = f.createForm()
	return f.form.Init()
}

// Init implements tea.Model
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			return f, func() tea.Msg { return CancelledMsg{} }
		}
		f.errMsg = ""
	}

	if f.busy {
		return f, nil
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		f.busy = true
		out := SubmittedMsg{
			ID:            f.id,
			Title:         f.title,
			Description:   f.desc,
			Status:        f.status == "active",
			ThumbnailPath: f.thumb,
		}
		return f, func() tea.Msg { return out }
	}

	return f, cmd
}

// View implements tea.Model
func (f *Form) View() string {
	var sb strings.Builder

	icon := icons.Add
	if f.edit {
		icon = icons.Edit
	}
	sb.WriteString(styles.Title.Render(icon.String() + " Product"))
	sb.WriteString("\n")

	if f.errMsg != "" {
		sb.WriteString(styles.ErrorBanner.Render(f.errMsg))
		sb.WriteString("\n\n")
	}

	if f.busy {
		sb.WriteString(styles.Subtitle.Render("Saving..."))
		sb.WriteString("\n")
	}

	sb.WriteString(f.form.View())

	return sb.String()
}
