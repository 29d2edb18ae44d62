package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Add       key.Binding
	Save      key.Binding
	Delete    key.Binding
	Search    key.Binding
	Export    key.Binding
	Import    key.Binding
	Copy      key.Binding
	Toggle    key.Binding
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Search:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		Export:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export")),
		Import:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "import")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "done")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// commands maps the names accepted in settings to bindings.
func (k *keyMap) commands() map[string]*key.Binding {
	return map[string]*key.Binding{
		"add":    &k.Add,
		"save":   &k.Save,
		"delete": &k.Delete,
		"search": &k.Search,
		"export": &k.Export,
		"import": &k.Import,
		"copy":   &k.Copy,
		"toggle": &k.Toggle,
		"up":     &k.Up,
		"down":   &k.Down,
		"edit":   &k.Edit,
		"quit":   &k.Quit,
	}
}

// withOverrides returns the default map with the given command keys replaced.
// Unknown commands are reported back so they can be surfaced.
func withOverrides(overrides map[string][]string) (keyMap, []string) {
	km := defaultKeyMap()
	var unknown []string
	cmds := km.commands()
	for name, keys := range overrides {
		b, ok := cmds[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		desc := b.Help().Desc
		b.SetKeys(keys...)
		b.SetHelp(strings.Join(keys, "/"), desc)
	}
	return km, unknown
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Save, k.Delete, k.Toggle, k.Search, k.Export, k.Import, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit},
		{k.Add, k.Save, k.Delete, k.Copy},
		{k.Search, k.Export, k.Import},
		{k.Next, k.Prev, k.Back, k.Help, k.Quit},
	}
}
