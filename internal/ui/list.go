package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/applyx/internal/flows"
)

var (
	_ list.Item = jobItem{}
	_ list.Item = applicationItem{}
)

// jobItem wraps [flows.JobCard] to implement [list.Item].
type jobItem struct {
	card flows.JobCard
}

func (i jobItem) FilterValue() string { return i.card.Title }
func (i jobItem) Title() string       { return fmt.Sprintf("%s • %s", i.card.Title, i.card.Company) }
func (i jobItem) Description() string {
	desc := i.card.Description
	if i.card.Location != "" {
		desc = fmt.Sprintf("%s • %s", i.card.Location, desc)
	}
	return fmt.Sprintf("[%s] %s", i.card.ActionLabel(), desc)
}

// applicationItem wraps [flows.ApplicationRow] to implement [list.Item].
type applicationItem struct {
	row flows.ApplicationRow
}

func (i applicationItem) FilterValue() string { return i.row.Title }
func (i applicationItem) Title() string       { return i.row.Title }
func (i applicationItem) Description() string {
	desc := styles.Status(i.row.Class).Render(i.row.Label)
	if i.row.Company != "" {
		desc = fmt.Sprintf("%s • %s", i.row.Company, desc)
	}
	if i.row.ApplyURL != "" {
		desc += " • Apply Now ↗"
	}
	return desc
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	return l
}

func jobItems(cards []flows.JobCard) []list.Item {
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = jobItem{card: c}
	}
	return items
}

func applicationItems(rows []flows.ApplicationRow) []list.Item {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = applicationItem{row: r}
	}
	return items
}
