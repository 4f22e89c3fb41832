package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/applyx/internal/flows"
	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/router"
	"github.com/desertthunder/applyx/internal/toast"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSubmitting MsgKind = iota
	MsgLoading
	MsgJobsCleared
	MsgJobsRendered
	MsgNoJobs
	MsgApplicationsRendered
	MsgNoApplications
	MsgSearchQueryCleared
	MsgProfileFilled
	MsgSearchLocation
	MsgToast
	MsgSection
	MsgStarted
)

func submittingMsg(submitting bool) Msg { return Msg{kind: MsgSubmitting, data: submitting} }

func loadingMsg(loading bool) Msg { return Msg{kind: MsgLoading, data: loading} }

func jobsRenderedMsg(cards []flows.JobCard) Msg { return Msg{kind: MsgJobsRendered, data: cards} }

func applicationsRenderedMsg(rows []flows.ApplicationRow) Msg {
	return Msg{kind: MsgApplicationsRendered, data: rows}
}

func profileFilledMsg(user models.User) Msg { return Msg{kind: MsgProfileFilled, data: user} }

func searchLocationMsg(location string) Msg { return Msg{kind: MsgSearchLocation, data: location} }

func toastMsg(t toast.Toast) Msg { return Msg{kind: MsgToast, data: t} }

func sectionMsg(id router.SectionID) Msg { return Msg{kind: MsgSection, data: id} }

// startedMsg is the constructor for [MsgStarted]; err is a failure to restore the stored user.
func startedMsg(err error) Msg { return Msg{kind: MsgStarted, data: err} }
