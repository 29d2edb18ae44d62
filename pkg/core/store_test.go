package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rufty/pkg/core"
)

func titles(s *core.Store) []string {
	var out []string
	for _, n := range s.Notes() {
		out = append(out, n.Title)
	}
	return out
}

func TestStore_Create(t *testing.T) {
	s := core.NewStore()

	n, err := s.Create("Buy milk", "2 liters")
	require.NoError(t, err)
	assert.Equal(t, core.Note{Title: "Buy milk", Body: "2 liters"}, n)
	assert.Equal(t, 1, s.Count())

	_, err = s.Create("Second", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk", "Second"}, titles(s))
}

func TestStore_CreateRejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		s := core.NewStore(core.Note{Title: "keep"})
		_, err := s.Create(title, "body")
		require.ErrorIs(t, err, core.ErrValidation, "title %q", title)
		assert.Equal(t, 1, s.Count())
	}
}

func TestStore_Update(t *testing.T) {
	s := core.NewStore(core.Note{Title: "A", Body: "a", Completed: true})

	require.NoError(t, s.Update(0, "A2", "a2"))
	n, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, core.Note{Title: "A2", Body: "a2", Completed: true}, n)

	assert.ErrorIs(t, s.Update(1, "X", ""), core.ErrIndex)
	assert.ErrorIs(t, s.Update(-1, "X", ""), core.ErrIndex)
	assert.ErrorIs(t, s.Update(0, " ", "ignored"), core.ErrValidation)

	n, _ = s.At(0)
	assert.Equal(t, "A2", n.Title, "failed update must not change the note")
}

func TestStore_UpdateChecksIndexBeforeTitle(t *testing.T) {
	s := core.NewStore()
	assert.ErrorIs(t, s.Update(0, "", ""), core.ErrIndex)
}

func TestStore_DeleteShiftsLaterNotes(t *testing.T) {
	s := core.NewStore(core.Note{Title: "A"}, core.Note{Title: "B"}, core.Note{Title: "C"})

	require.NoError(t, s.Delete(0))
	assert.Equal(t, []string{"B", "C"}, titles(s))

	require.NoError(t, s.Delete(1))
	assert.Equal(t, []string{"B"}, titles(s))

	assert.ErrorIs(t, s.Delete(1), core.ErrIndex)
	assert.Equal(t, 1, s.Count())
}

func TestStore_ToggleCompletedPairs(t *testing.T) {
	original := core.Note{Title: "T", Body: "b"}
	s := core.NewStore(original)

	require.NoError(t, s.ToggleCompleted(0))
	n, _ := s.At(0)
	assert.True(t, n.Completed)
	assert.Equal(t, "T", n.Title)
	assert.Equal(t, "b", n.Body)

	require.NoError(t, s.ToggleCompleted(0))
	n, _ = s.At(0)
	assert.Equal(t, original, n)

	assert.ErrorIs(t, s.ToggleCompleted(3), core.ErrIndex)
}

func TestStore_Search(t *testing.T) {
	s := core.NewStore(
		core.Note{Title: "Buy milk"},
		core.Note{Title: "buy Bread"},
		core.Note{Title: "Clean", Body: "buy soap"},
	)

	tests := []struct {
		name      string
		term      string
		wantIndex int
		wantFound bool
	}{
		{name: "first match wins", term: "buy", wantIndex: 0, wantFound: true},
		{name: "case insensitive", term: "BREAD", wantIndex: 1, wantFound: true},
		{name: "term is trimmed", term: "  clean ", wantIndex: 2, wantFound: true},
		{name: "bodies are not searched", term: "soap", wantIndex: -1, wantFound: false},
		{name: "no match", term: "xyz", wantIndex: -1, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.Notes()
			idx, found, err := s.Search(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, idx)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, before, s.Notes(), "search must not mutate the store")
		})
	}
}

func TestStore_SearchSimpleCaseMapping(t *testing.T) {
	s := core.NewStore(
		core.Note{Title: "İstanbul trip"},
		core.Note{Title: "\u212A units"},
		core.Note{Title: "Éclair recipe"},
	)

	_, found, err := s.Search("ist")
	require.NoError(t, err)
	assert.False(t, found, "dotted capital I does not fold onto i")

	_, found, err = s.Search("k")
	require.NoError(t, err)
	assert.False(t, found, "the Kelvin sign does not fold onto k")

	idx, found, err := s.Search("\u212A")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, idx)

	idx, found, err = s.Search("éCLAIR")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, idx)
}

func TestStore_SearchRejectsBlankTerm(t *testing.T) {
	s := core.NewStore(core.Note{Title: "A"})
	_, _, err := s.Search("   ")
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestStore_NotesReturnsCopy(t *testing.T) {
	s := core.NewStore(core.Note{Title: "A"})
	notes := s.Notes()
	notes[0].Title = "mutated"

	n, _ := s.At(0)
	assert.Equal(t, "A", n.Title)
}

func TestStore_State(t *testing.T) {
	s := core.NewStore(core.Note{Title: "A", Completed: true}, core.Note{Title: "B"})
	assert.Equal(t, core.StoreState{Count: 2, Completed: 1}, s.State())
	assert.Equal(t, "store", s.ComponentType())
}
