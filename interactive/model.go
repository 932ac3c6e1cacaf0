package interactive

import (
	"fmt"

	"github.com/appdraft/appdraft/canvas"
	"github.com/appdraft/appdraft/project"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// row is one visible line of the flattened component tree.
type row struct {
	node  *canvas.Node
	depth int
}

// Model is the bubbletea state of the screen editor.
type Model struct {
	session *Session
	styles  *Styles

	width  int
	height int

	rows     []row
	cursor   int
	palette  bool
	pick     int
	kinds    []string
	command  textinput.Model
	typing   bool
	status   string
	trouble  bool
	quitting bool
}

func NewModel(session *Session) *Model {
	input := textinput.New()
	input.Prompt = ":"
	input.Placeholder = "add Text | set text=Hi | del | move 2 | page /profile | save | quit"
	input.CharLimit = 200
	model := &Model{
		session: session,
		styles:  NewStyles(),
		command: input,
		kinds:   session.reg.Kinds(),
		status:  "ready",
	}
	model.rebuildRows()
	return model
}

func (it *Model) Init() tea.Cmd {
	return nil
}

func (it *Model) page() *project.Page {
	return it.session.CurrentPage()
}

func (it *Model) rebuildRows() {
	it.rows = it.rows[:0]
	canvas.Walk(it.page().Roots, func(node *canvas.Node, depth int) {
		it.rows = append(it.rows, row{node: node, depth: depth})
	})
	if it.cursor >= len(it.rows) {
		it.cursor = len(it.rows) - 1
	}
	if it.cursor < 0 {
		it.cursor = 0
	}
}

func (it *Model) selected() (*canvas.Node, bool) {
	if it.cursor < 0 || it.cursor >= len(it.rows) {
		return nil, false
	}
	return it.rows[it.cursor].node, true
}

func (it *Model) note(form string, details ...interface{}) {
	it.status = fmt.Sprintf(form, details...)
	it.trouble = false
}

func (it *Model) complain(err error) {
	it.status = err.Error()
	it.trouble = true
}

func (it *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		it.width = msg.Width
		it.height = msg.Height
		return it, nil
	case logLine:
		it.note("%s", string(msg))
		return it, nil
	case tea.KeyMsg:
		if it.typing {
			return it.updateCommandBar(msg)
		}
		return it.updateKeys(msg)
	}
	return it, nil
}

func (it *Model) updateCommandBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		it.typing = false
		it.command.Blur()
		it.command.SetValue("")
		return it, nil
	case tea.KeyEnter:
		line := it.command.Value()
		it.typing = false
		it.command.Blur()
		it.command.SetValue("")
		it.execute(line)
		if it.quitting {
			return it, tea.Quit
		}
		return it, nil
	}
	var cmd tea.Cmd
	it.command, cmd = it.command.Update(msg)
	return it, cmd
}

func (it *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		it.quitting = true
		return it, tea.Quit
	case ":":
		it.typing = true
		it.command.Focus()
		return it, textinput.Blink
	case "up", "k":
		if it.palette {
			if it.pick > 0 {
				it.pick -= 1
			}
		} else if it.cursor > 0 {
			it.cursor -= 1
		}
	case "down", "j":
		if it.palette {
			if it.pick < len(it.kinds)-1 {
				it.pick += 1
			}
		} else if it.cursor < len(it.rows)-1 {
			it.cursor += 1
		}
	case "left", "h":
		it.switchPage(-1)
	case "right", "l":
		it.switchPage(+1)
	case "a":
		it.palette = !it.palette
	case "enter":
		if it.palette {
			it.addFromPalette()
		}
	case "d", "delete":
		it.deleteSelected()
	case "s", "ctrl+s":
		it.saveNow()
	}
	return it, nil
}

func (it *Model) switchPage(step int) {
	count := len(it.session.proj.Pages)
	it.session.pageAt = ((it.session.pageAt+step)%count + count) % count
	it.cursor = 0
	it.rebuildRows()
	it.note("page %s", it.page().Route)
}

func (it *Model) addFromPalette() {
	parent, ok := it.selected()
	if !ok {
		it.note("nothing selected")
		return
	}
	kind := it.kinds[it.pick]
	if err := it.session.AddChild(parent.ID, kind); err != nil {
		it.complain(err)
		return
	}
	it.rebuildRows()
	it.note("added %s under %s", kind, parent.Kind)
}

func (it *Model) deleteSelected() {
	node, ok := it.selected()
	if !ok {
		return
	}
	if it.cursor == 0 && len(it.page().Roots) == 1 {
		it.note("keeping the last root node")
		return
	}
	it.session.DeleteNode(node.ID)
	it.rebuildRows()
	it.note("deleted %s", node.Kind)
}

func (it *Model) saveNow() {
	if err := it.session.Save(); err != nil {
		it.complain(err)
		return
	}
	it.note("saved %q", it.session.name)
}

func (it *Model) shortHelp() []string {
	if it.typing {
		return []string{"enter run", "esc cancel"}
	}
	if it.palette {
		return []string{"↑↓ pick", "enter place", "a close", ": command", "q quit"}
	}
	return []string{"↑↓ select", "←→ page", "a palette", "d delete", "s save", ": command", "q quit"}
}
