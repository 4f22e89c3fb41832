// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI shows one section at a time, mirroring the [router.Router]:
//  1. Profile : the profile form, submitted with ctrl+s or enter on the last field
//  2. Find Jobs : query and location inputs over a list of job cards; enter applies (Easy Apply) or opens the job link
//  3. Applications : the application history with status badges; enter shows the generated email
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Flows from [flows.Controller] run inside tea.Cmds; their [Renderer] calls, toasts and section changes flow back
// through a channel drained by the model, so the flow layer never blocks on the event loop.
//
// Keys 1/2/3 and tab switch sections, i focuses the active form and esc leaves it. Contextual help is displayed via
// charmbracelet/bubbles/help.
package ui
