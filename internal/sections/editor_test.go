package sections

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careers-builder/internal/models"
)

type recordingSaver struct {
	calls int
	last  []models.Section
	err   error
}

func (r *recordingSaver) SaveSections(_ context.Context, _ string, sections []models.Section) error {
	r.calls++
	r.last = sections
	return r.err
}

func seedSections() []models.Section {
	return []models.Section{
		{ID: "s1", Type: "about", Title: "About", Order: 1, IsActive: true},
		{ID: "s2", Type: "benefits", Title: "Benefits", Order: 2, IsActive: true},
	}
}

func TestEditor_StartsIdle(t *testing.T) {
	editor := NewEditor("c1", seedSections(), &recordingSaver{})
	assert.Equal(t, StateIdle, editor.State())
	assert.Len(t, editor.Sections(), 2)
}

func TestEditor_EditsMarkDirty(t *testing.T) {
	tests := []struct {
		name string
		edit func(e *Editor) error
	}{
		{"add", func(e *Editor) error { e.Add(models.Section{Type: "values", Title: "Values"}); return nil }},
		{"update", func(e *Editor) error {
			return e.Update("s1", models.Section{Type: "about", Title: "Changed"})
		}},
		{"delete", func(e *Editor) error { return e.Delete("s2") }},
		{"toggle", func(e *Editor) error { return e.Toggle("s1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor := NewEditor("c1", seedSections(), &recordingSaver{})
			require.NoError(t, tt.edit(editor))
			assert.Equal(t, StateDirty, editor.State())
		})
	}
}

func TestEditor_UnknownIDs(t *testing.T) {
	editor := NewEditor("c1", seedSections(), &recordingSaver{})

	assert.ErrorIs(t, editor.Update("nope", models.Section{Title: "X"}), ErrSectionNotFound)
	assert.ErrorIs(t, editor.Delete("nope"), ErrSectionNotFound)
	assert.ErrorIs(t, editor.Toggle("nope"), ErrSectionNotFound)
	assert.Equal(t, StateIdle, editor.State())
}

func TestEditor_AddAssignsIDAndOrder(t *testing.T) {
	editor := NewEditor("c1", seedSections(), &recordingSaver{})

	id := editor.Add(models.Section{Type: "values", Title: "Values"})
	require.NotEmpty(t, id)

	list := editor.Sections()
	require.Len(t, list, 3)
	assert.Equal(t, id, list[2].ID)
	assert.Equal(t, 2, list[2].Order)
}

func TestEditor_NoEditsMeansNoSave(t *testing.T) {
	saver := &recordingSaver{}
	editor := NewEditor("c1", seedSections(), saver)

	require.NoError(t, editor.Save(context.Background()))
	assert.Zero(t, saver.calls)
	assert.Equal(t, StateIdle, editor.State())
}

func TestEditor_SavePersistsEverything(t *testing.T) {
	saver := &recordingSaver{}
	editor := NewEditor("c1", seedSections(), saver)

	require.NoError(t, editor.Toggle("s2"))
	editor.Add(models.Section{Type: "values", Title: "Values"})
	require.NoError(t, editor.Save(context.Background()))

	assert.Equal(t, 1, saver.calls)
	require.Len(t, saver.last, 3)
	assert.False(t, saver.last[1].IsActive)
	assert.Equal(t, StateIdle, editor.State())

	// Idle again: a second save is a no-op.
	require.NoError(t, editor.Save(context.Background()))
	assert.Equal(t, 1, saver.calls)
}

func TestEditor_FailedSavePreservesEdits(t *testing.T) {
	saver := &recordingSaver{err: errors.New("connection reset")}
	editor := NewEditor("c1", seedSections(), saver)

	require.NoError(t, editor.Update("s1", models.Section{Type: "about", Title: "Changed"}))
	err := editor.Save(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateDirty, editor.State())
	assert.Equal(t, "Changed", editor.Sections()[0].Title)

	// Retry succeeds once the saver recovers.
	saver.err = nil
	require.NoError(t, editor.Save(context.Background()))
	assert.Equal(t, StateIdle, editor.State())
	assert.Equal(t, "Changed", saver.last[0].Title)
}

func TestEditor_DiscardRequiresForceWhileDirty(t *testing.T) {
	editor := NewEditor("c1", seedSections(), &recordingSaver{})

	require.NoError(t, editor.Delete("s1"))
	assert.ErrorIs(t, editor.Discard(false), ErrUnsavedChanges)
	assert.Len(t, editor.Sections(), 1)

	require.NoError(t, editor.Discard(true))
	assert.Equal(t, StateIdle, editor.State())
	assert.Len(t, editor.Sections(), 2)
	assert.Equal(t, "s1", editor.Sections()[0].ID)
}

func TestEditor_DiscardRestoresLastSavedNotOriginal(t *testing.T) {
	saver := &recordingSaver{}
	editor := NewEditor("c1", seedSections(), saver)

	require.NoError(t, editor.Update("s1", models.Section{Type: "about", Title: "Saved Title"}))
	require.NoError(t, editor.Save(context.Background()))

	require.NoError(t, editor.Update("s1", models.Section{Type: "about", Title: "Abandoned"}))
	require.NoError(t, editor.Discard(true))

	assert.Equal(t, "Saved Title", editor.Sections()[0].Title)
}

func TestEditor_SectionsReturnsCopy(t *testing.T) {
	editor := NewEditor("c1", seedSections(), &recordingSaver{})

	list := editor.Sections()
	list[0].Title = "Mutated"

	assert.Equal(t, "About", editor.Sections()[0].Title)
	assert.Equal(t, StateIdle, editor.State())
}
