package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/applyx/internal/models"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF5F5F", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title  lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	help   lipgloss.Style
	muted  lipgloss.Style
	tab    lipgloss.Style
	active lipgloss.Style
	toast  lipgloss.Style
	label  lipgloss.Style
	button lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title:  NewBold(t).MarginBottom(1),
		ok:     NewBold(s),
		err:    NewBold(e),
		warn:   NewBold(w),
		help:   NewEm(h),
		muted:  NewStyle(h),
		tab:    NewStyle(h).Padding(0, 2),
		active: NewBold("#FFFFFF").Background(lipgloss.Color(t)).Padding(0, 2),
		toast:  NewBold("#FFFFFF").Background(lipgloss.Color(t)).Padding(0, 1),
		label:  NewStyle(h).Width(12),
		button: NewBold(t).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t)).Padding(0, 2),
	}
}

// Status returns the badge style for class.
func (p *Palette) Status(class models.StatusClass) lipgloss.Style {
	switch class {
	case models.StatusSent:
		return p.ok
	case models.StatusManual:
		return p.warn
	case models.StatusFailedClass:
		return p.err
	default:
		return p.muted.Bold(true)
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
