// internal/sections/editor.go

// Package sections implements the admin section editor: an in-memory
// ordered list of content sections with explicit save-all persistence.
// Edits accumulate locally (idle -> dirty) and hit storage only on an
// explicit Save (dirty -> saving -> idle, or back to dirty on failure
// with the edits preserved for retry). There is no autosave.
//
// Concurrent saves of the same company are last-write-wins at the
// granularity of the full list. Acceptable under the one-admin-per-tenant
// assumption; documented here rather than fixed.
package sections

import (
	"context"
	"errors"

	"careers-builder/internal/models"

	"github.com/google/uuid"
)

// State is the editor lifecycle state.
type State string

const (
	StateIdle   State = "idle"
	StateDirty  State = "dirty"
	StateSaving State = "saving"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrUnsavedChanges  = errors.New("unsaved changes would be discarded")
	ErrSaveInProgress  = errors.New("save already in progress")
)

// Saver persists the full section list for a company.
type Saver interface {
	SaveSections(ctx context.Context, companyID string, sections []models.Section) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(ctx context.Context, companyID string, sections []models.Section) error

func (f SaverFunc) SaveSections(ctx context.Context, companyID string, sections []models.Section) error {
	return f(ctx, companyID, sections)
}

// Editor holds one company's section list under edit. Not safe for
// concurrent use; each editing session owns its editor.
type Editor struct {
	companyID string
	saver     Saver

	sections []models.Section
	saved    []models.Section
	state    State
}

// NewEditor starts an editing session over the company's current
// sections.
func NewEditor(companyID string, current []models.Section, saver Saver) *Editor {
	return &Editor{
		companyID: companyID,
		saver:     saver,
		sections:  cloneSections(current),
		saved:     cloneSections(current),
		state:     StateIdle,
	}
}

// State returns the current lifecycle state.
func (e *Editor) State() State {
	return e.state
}

// Sections returns a copy of the local list in its current edit order.
func (e *Editor) Sections() []models.Section {
	return cloneSections(e.sections)
}

// Add appends a section to the local list and returns its stable ID.
// A missing ID is assigned; order defaults to the end of the list.
func (e *Editor) Add(section models.Section) string {
	if section.ID == "" {
		section.ID = uuid.New().String()
	}
	if section.Order == 0 {
		section.Order = len(e.sections)
	}
	e.sections = append(e.sections, section)
	e.markDirty()
	return section.ID
}

// Update replaces the identified section's editable fields.
func (e *Editor) Update(id string, updated models.Section) error {
	for i := range e.sections {
		if e.sections[i].ID == id {
			updated.ID = id
			e.sections[i] = updated
			e.markDirty()
			return nil
		}
	}
	return ErrSectionNotFound
}

// Delete removes the identified section from the local list.
func (e *Editor) Delete(id string) error {
	for i := range e.sections {
		if e.sections[i].ID == id {
			e.sections = append(e.sections[:i], e.sections[i+1:]...)
			e.markDirty()
			return nil
		}
	}
	return ErrSectionNotFound
}

// Toggle flips the identified section's visibility flag.
func (e *Editor) Toggle(id string) error {
	for i := range e.sections {
		if e.sections[i].ID == id {
			e.sections[i].IsActive = !e.sections[i].IsActive
			e.markDirty()
			return nil
		}
	}
	return ErrSectionNotFound
}

// Save persists the entire local list. A no-op while idle. On failure
// the editor returns to dirty with all edits preserved for retry.
func (e *Editor) Save(ctx context.Context) error {
	switch e.state {
	case StateIdle:
		return nil
	case StateSaving:
		return ErrSaveInProgress
	}

	e.state = StateSaving
	if err := e.saver.SaveSections(ctx, e.companyID, cloneSections(e.sections)); err != nil {
		e.state = StateDirty
		return err
	}
	e.saved = cloneSections(e.sections)
	e.state = StateIdle
	return nil
}

// Discard drops local edits and restores the last saved list. While
// dirty it refuses unless force is set, so callers must warn before
// discarding unsaved edits.
func (e *Editor) Discard(force bool) error {
	if e.state == StateSaving {
		return ErrSaveInProgress
	}
	if e.state == StateDirty && !force {
		return ErrUnsavedChanges
	}
	e.sections = cloneSections(e.saved)
	e.state = StateIdle
	return nil
}

func (e *Editor) markDirty() {
	if e.state == StateIdle {
		e.state = StateDirty
	}
}

func cloneSections(sections []models.Section) []models.Section {
	out := make([]models.Section, len(sections))
	copy(out, sections)
	return out
}
