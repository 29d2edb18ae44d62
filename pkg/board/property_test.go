package board

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/aretw0/rufty/pkg/core"
)

var fixedNow = time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)

// TestService_IndexCorrespondence drives random operation sequences and checks
// that rows, store positions and the selected note never drift apart. Each
// note carries a unique body so it can be followed across re-indexing.
func TestService_IndexCorrespondence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New(core.NewStore(), nil)
		var ids []string
		selected := ""
		next := 0
		newID := func() string {
			next++
			return fmt.Sprintf("id-%d", next)
		}
		title := rapid.StringMatching(`[A-Za-z ]{0,6}[a-z]`)
		pick := func(t *rapid.T) int {
			if len(ids) == 0 {
				t.Skip("empty board")
			}
			return rapid.IntRange(0, len(ids)-1).Draw(t, "index")
		}

		t.Repeat(map[string]func(*rapid.T){
			"create": func(t *rapid.T) {
				id := newID()
				_, err := s.Create(title.Draw(t, "title"), id)
				if err != nil {
					t.Fatalf("create: %v", err)
				}
				ids = append(ids, id)
			},
			"update": func(t *rapid.T) {
				i := pick(t)
				if err := s.Update(i, title.Draw(t, "title"), ids[i]); err != nil {
					t.Fatalf("update: %v", err)
				}
			},
			"toggle": func(t *rapid.T) {
				if err := s.Toggle(pick(t)); err != nil {
					t.Fatalf("toggle: %v", err)
				}
			},
			"delete": func(t *rapid.T) {
				i := pick(t)
				if err := s.Delete(i); err != nil {
					t.Fatalf("delete: %v", err)
				}
				if ids[i] == selected {
					selected = ""
				}
				ids = append(ids[:i], ids[i+1:]...)
			},
			"select": func(t *rapid.T) {
				i := pick(t)
				if err := s.Select(i); err != nil {
					t.Fatalf("select: %v", err)
				}
				selected = ids[i]
			},
			"clear": func(t *rapid.T) {
				s.ClearSelection()
				selected = ""
			},
			"append": func(t *rapid.T) {
				k := rapid.IntRange(1, 3).Draw(t, "k")
				var in []core.Note
				for j := 0; j < k; j++ {
					id := newID()
					in = append(in, core.Note{Title: title.Draw(t, "title"), Body: id})
					ids = append(ids, id)
				}
				if _, err := s.Import(in, core.MergeAppend); err != nil {
					t.Fatalf("append: %v", err)
				}
			},
			"replace": func(t *rapid.T) {
				k := rapid.IntRange(1, 3).Draw(t, "k")
				var in []core.Note
				ids = ids[:0:0]
				for j := 0; j < k; j++ {
					id := newID()
					in = append(in, core.Note{Title: title.Draw(t, "title"), Body: id})
					ids = append(ids, id)
				}
				if _, err := s.Import(in, core.MergeReplace); err != nil {
					t.Fatalf("replace: %v", err)
				}
				selected = ""
			},
			"drain": func(t *rapid.T) {
				c := s.Drain()
				for _, row := range c.Stale {
					if row < 0 || row >= s.Count() {
						t.Fatalf("stale row %d outside [0, %d)", row, s.Count())
					}
				}
			},
			"": func(t *rapid.T) {
				if s.binding.Rows() != s.Count() {
					t.Fatalf("rows %d != count %d", s.binding.Rows(), s.Count())
				}
				notes := s.Notes()
				if len(notes) != len(ids) {
					t.Fatalf("count %d, model %d", len(notes), len(ids))
				}
				for i, n := range notes {
					if n.Body != ids[i] {
						t.Fatalf("row %d shows %s, want %s", i, n.Body, ids[i])
					}
				}
				sel, ok := s.Selected()
				if ok != (selected != "") {
					t.Fatalf("selection present=%v, model %q", ok, selected)
				}
				if ok && notes[sel].Body != selected {
					t.Fatalf("selected row %d shows %s, want %s", sel, notes[sel].Body, selected)
				}
			},
		})
	})
}
