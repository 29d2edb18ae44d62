package core

// ChangeKind represents the type of mutation applied to a Store.
type ChangeKind string

const (
	ChangeCreate  ChangeKind = "CREATE"
	ChangeUpdate  ChangeKind = "UPDATE"
	ChangeDelete  ChangeKind = "DELETE"
	ChangeToggle  ChangeKind = "TOGGLE"
	ChangeReplace ChangeKind = "REPLACE"
	ChangeAppend  ChangeKind = "APPEND"
)

// Change describes one completed Store mutation.
// Index is the affected position for single-note changes.
// Count is the number of notes involved for bulk changes.
type Change struct {
	Kind  ChangeKind
	Index int
	Count int
}

// String implements fmt.Stringer.
func (c Change) String() string {
	return string(c.Kind)
}
