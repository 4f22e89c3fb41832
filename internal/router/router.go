// Package router tracks which named view section is visible.
//
// Exactly one registered section is active at a time, and the nav controls whose target matches it are marked active.
// Navigation is a direct jump; there is no history stack.
package router

import (
	"fmt"
	"sync"

	"github.com/desertthunder/applyx/internal/shared"
)

// SectionID names a view section.
type SectionID string

const (
	ProfileSection SectionID = "user-section"
	SearchSection  SectionID = "search-section"
	AppliedSection SectionID = "applied-section"
)

// Section is a registered section and its visibility.
type Section struct {
	ID     SectionID
	Active bool
}

// NavControl is a navigation control targeting a section.
type NavControl struct {
	Label  string
	Target SectionID
	Active bool
}

// Router owns the view state.
type Router struct {
	mu        sync.RWMutex
	sections  []Section
	nav       []NavControl
	listeners []func(SectionID)
}

// New registers sections and nav controls and activates the first section.
func New(sections []SectionID, nav []NavControl) *Router {
	r := &Router{}
	for _, id := range sections {
		r.sections = append(r.sections, Section{ID: id})
	}
	r.nav = append(r.nav, nav...)
	if len(sections) > 0 {
		r.apply(sections[0])
	}
	return r
}

// NewDefault creates the profile/search/applications router with the profile section active.
func NewDefault() *Router {
	return New(
		[]SectionID{ProfileSection, SearchSection, AppliedSection},
		[]NavControl{
			{Label: "Profile", Target: ProfileSection},
			{Label: "Find Jobs", Target: SearchSection},
			{Label: "Applications", Target: AppliedSection},
		},
	)
}

// OnChange registers fn to be called with the section activated by each successful [Router.Activate].
func (r *Router) OnChange(fn func(SectionID)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Activate shows id and hides every other section.
//
// An unregistered id returns [shared.ErrSectionNotFound] and leaves the view unchanged.
func (r *Router) Activate(id SectionID) error {
	r.mu.Lock()
	if !r.has(id) {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", shared.ErrSectionNotFound, id)
	}
	r.apply(id)
	listeners := append([]func(SectionID){}, r.listeners...)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(id)
	}
	return nil
}

// Active returns the visible section.
func (r *Router) Active() SectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sections {
		if s.Active {
			return s.ID
		}
	}
	return ""
}

// IsActive reports whether id is the visible section.
func (r *Router) IsActive(id SectionID) bool {
	return r.Active() == id
}

// Sections returns a snapshot of all registered sections.
func (r *Router) Sections() []Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Section{}, r.sections...)
}

// NavControls returns a snapshot of the nav controls.
func (r *Router) NavControls() []NavControl {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]NavControl{}, r.nav...)
}

func (r *Router) has(id SectionID) bool {
	for _, s := range r.sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (r *Router) apply(id SectionID) {
	for i := range r.sections {
		r.sections[i].Active = r.sections[i].ID == id
	}
	for i := range r.nav {
		r.nav[i].Active = r.nav[i].Target == id
	}
}
