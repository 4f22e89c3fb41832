package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/applyx/internal/models"
)

// form is a vertical stack of labelled text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...[2]string) form {
	f := form{focus: -1}
	for _, field := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = field[1]
		in.CharLimit = 512
		in.Width = 48
		f.labels = append(f.labels, field[0])
		f.inputs = append(f.inputs, in)
	}
	return f
}

func newProfileForm() form {
	return newForm(
		[2]string{"Name", "Jane Doe"},
		[2]string{"Email", "jane@example.com"},
		[2]string{"Phone", "+1 555 0100"},
		[2]string{"Location", "Berlin"},
		[2]string{"Resume", "/path/to/resume.pdf"},
		[2]string{"Skills", "Go, Kubernetes, PostgreSQL"},
		[2]string{"Experience", "5 years backend development"},
	)
}

func newSearchForm() form {
	return newForm(
		[2]string{"Query", "job title (empty for AI suggestions)"},
		[2]string{"Location", "city or remote"},
	)
}

// editing reports whether a field has focus.
func (f *form) editing() bool {
	return f.focus >= 0
}

// focusAt focuses field i and blurs the others.
func (f *form) focusAt(i int) tea.Cmd {
	f.blur()
	if i < 0 || i >= len(f.inputs) {
		return nil
	}
	f.focus = i
	return f.inputs[i].Focus()
}

func (f *form) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = -1
}

// move shifts focus by delta, wrapping around.
func (f *form) move(delta int) tea.Cmd {
	n := len(f.inputs)
	return f.focusAt(((f.focus+delta)%n + n) % n)
}

// last reports whether the final field has focus.
func (f *form) last() bool {
	return f.focus == len(f.inputs)-1
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	if !f.editing() {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) view() string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := styles.label.Render(f.labels[i])
		if i == f.focus {
			label = styles.ok.Width(12).Render(f.labels[i])
		}
		b.WriteString(label + " " + in.View() + "\n")
	}
	return b.String()
}

// Profile field order in newProfileForm.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldLocation
	fieldResume
	fieldSkills
	fieldExperience
)

// Search field order in newSearchForm.
const (
	fieldQuery = iota
	fieldSearchLocation
)

func (f *form) profile() models.Profile {
	return models.Profile{
		Name:        f.value(fieldName),
		Email:       f.value(fieldEmail),
		PhoneNumber: f.value(fieldPhone),
		Location:    f.value(fieldLocation),
		ResumePath:  f.value(fieldResume),
		Skills:      f.value(fieldSkills),
		Experience:  f.value(fieldExperience),
	}
}

func (f *form) fill(u models.User) {
	f.set(fieldName, u.Name)
	f.set(fieldEmail, u.Email)
	f.set(fieldPhone, u.PhoneNumber)
	f.set(fieldLocation, u.Location)
	f.set(fieldResume, u.ResumePath)
	f.set(fieldSkills, u.Skills)
	f.set(fieldExperience, u.Experience)
}
