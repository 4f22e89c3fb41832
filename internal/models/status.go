package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status tags observed from the backend. The set is open-ended.
const (
	StatusEmailSent           = "email_sent"
	StatusManualApplyRequired = "manual_apply_required"
	StatusFailed              = "failed"
)

// StatusClass is one of the four visual classes of a status badge.
type StatusClass int

const (
	StatusPending StatusClass = iota
	StatusSent
	StatusManual
	StatusFailedClass
)

func (c StatusClass) String() string {
	switch c {
	case StatusSent:
		return "status-sent"
	case StatusManual:
		return "status-manual"
	case StatusFailedClass:
		return "status-failed"
	default:
		return "status-pending"
	}
}

// StatusClassOf maps a status tag to its badge class. Unknown tags render as pending.
func StatusClassOf(status string) StatusClass {
	switch status {
	case StatusEmailSent:
		return StatusSent
	case StatusManualApplyRequired:
		return StatusManual
	case StatusFailed:
		return StatusFailedClass
	default:
		return StatusPending
	}
}

// StatusLabel returns the badge text: underscores become spaces and the result is upper-cased.
// A missing status is labelled "UNKNOWN".
func StatusLabel(status *string) string {
	if status == nil || *status == "" {
		return "UNKNOWN"
	}
	return cases.Upper(language.Und).String(strings.ReplaceAll(*status, "_", " "))
}
