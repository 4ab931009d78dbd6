// ABOUTME: Image picker TUI component for selecting product thumbnails
// ABOUTME: Shows recently used images plus a free-form path input

package filepicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/icons"
	"github.com/juliomonteiiro/agenus-admin/internal/tui/styles"
	"github.com/juliomonteiiro/agenus-admin/internal/validate"
)

type state int

const (
	stateList state = iota
	stateInput
)

// FileSelectedMsg is sent when an image passes validation
type FileSelectedMsg struct {
	Path string
}

// CancelledMsg is sent when the user cancels
type CancelledMsg struct{}

// FilePicker is the thumbnail selection component
type FilePicker struct {
	recentImages []string
	cursor       int
	state        state
	textInput    textinput.Model
	err          string
	width        int
	height       int
}

// New creates a picker seeded with recently used image paths
func New(recentImages []string) *FilePicker {
	ti := textinput.New()
	ti.Placeholder = "/path/to/image.png"
	ti.CharLimit = 256
	ti.Width = 60

	return &FilePicker{
		recentImages: recentImages,
		state:        stateList,
		textInput:    ti,
	}
}

// SetError displays a validation error
func (fp *FilePicker) SetError(msg string) {
	fp.err = msg
}

// Init implements tea.Model
func (fp *FilePicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (fp *FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fp.width = msg.Width
		fp.height = msg.Height
		return fp, nil

	case tea.KeyMsg:
		// Clear error on any key press
		fp.err = ""

		if fp.state == stateInput {
			return fp.updateInput(msg)
		}
		return fp.updateList(msg)
	}

	return fp, nil
}

func (fp *FilePicker) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxItems := len(fp.recentImages) + 1 // +1 for "Enter path..."

	switch msg.String() {
	case "up", "k":
		if fp.cursor > 0 {
			fp.cursor--
		}
	case "down", "j":
		if fp.cursor < maxItems-1 {
			fp.cursor++
		}
	case "enter":
		if fp.cursor < len(fp.recentImages) {
			return fp.selectPath(fp.recentImages[fp.cursor])
		}
		fp.state = stateInput
		fp.textInput.Focus()
		return fp, textinput.Blink
	case "esc", "b":
		return fp, func() tea.Msg { return CancelledMsg{} }
	}

	return fp, nil
}

func (fp *FilePicker) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fp.state = stateList
		fp.textInput.SetValue("")
		return fp, nil
	case "enter":
		path := fp.textInput.Value()
		if path == "" {
			fp.err = "Please enter an image path"
			return fp, nil
		}
		return fp.selectPath(path)
	}

	var cmd tea.Cmd
	fp.textInput, cmd = fp.textInput.Update(msg)
	return fp, cmd
}

func (fp *FilePicker) selectPath(path string) (tea.Model, tea.Cmd) {
	if err := validate.Thumbnail(path); err != nil {
		fp.err = err.Error()
		return fp, nil
	}
	return fp, func() tea.Msg { return FileSelectedMsg{Path: path} }
}

// View implements tea.Model
func (fp *FilePicker) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(icons.Thumbnail.String() + " Choose Thumbnail"))
	sb.WriteString("\n")

	if fp.err != "" {
		sb.WriteString(styles.ErrorBanner.Render(fp.err))
		sb.WriteString("\n\n")
	}

	if fp.state == stateInput {
		sb.WriteString("Image path:\n")
		sb.WriteString(fp.textInput.View())
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("Enter to select, Esc to go back"))
		return sb.String()
	}

	selected := lipgloss.NewStyle().Foreground(styles.Current.Accent)
	normal := lipgloss.NewStyle().Foreground(styles.Current.Text)

	if len(fp.recentImages) > 0 {
		sb.WriteString(styles.Subtitle.Render("Recent images"))
		sb.WriteString("\n")
		for i, path := range fp.recentImages {
			line := "  " + path
			if i == fp.cursor {
				line = "> " + path
				sb.WriteString(selected.Render(line))
			} else {
				sb.WriteString(normal.Render(line))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	enterLine := "  Enter path..."
	if fp.cursor == len(fp.recentImages) {
		enterLine = "> Enter path..."
		sb.WriteString(selected.Render(enterLine))
	} else {
		sb.WriteString(normal.Render(enterLine))
	}
	sb.WriteString("\n")

	sb.WriteString(styles.Help.Render("↑↓ navigate, Enter select, Esc cancel"))

	return sb.String()
}
