package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
//
// While a text input has focus only next, prev, up, down, enter, back, submit and forceQuit are handled;
// every other key is typed into the input.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	next      key.Binding
	prev      key.Binding
	profile   key.Binding
	search    key.Binding
	applied   key.Binding
	edit      key.Binding
	open      key.Binding
	refresh   key.Binding
	submit    key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		profile:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "profile")),
		search:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "find jobs")),
		applied:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "applications")),
		edit:      key.NewBinding(key.WithKeys("i", "/"), key.WithHelp("i", "edit")),
		open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open link")),
		refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.profile, k.search, k.applied, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.edit, k.back, k.submit},
		{k.next, k.prev, k.profile, k.search, k.applied},
		{k.open, k.refresh, k.quit},
	}
}
