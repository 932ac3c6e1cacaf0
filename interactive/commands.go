package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/appdraft/appdraft/set"
)

// execute runs one command bar line against the current selection.
func (it *Model) execute(line string) {
	words, err := shlex.Split(strings.TrimSpace(line))
	if err != nil {
		it.complain(err)
		return
	}
	if len(words) == 0 {
		return
	}
	verb, rest := words[0], words[1:]
	switch verb {
	case "add":
		it.commandAdd(rest)
	case "set":
		it.commandSet(rest)
	case "del", "delete":
		it.deleteSelected()
	case "move":
		it.commandMove(rest)
	case "page":
		it.commandPage(rest)
	case "save", "w":
		it.saveNow()
	case "quit", "q":
		it.quitting = true
	default:
		it.note("unknown command %q", verb)
	}
}

func (it *Model) commandAdd(words []string) {
	if len(words) != 1 {
		it.note("usage: add <Kind>")
		return
	}
	parent, ok := it.selected()
	if !ok {
		it.note("nothing selected")
		return
	}
	if err := it.session.AddChild(parent.ID, words[0]); err != nil {
		it.complain(err)
		return
	}
	it.rebuildRows()
	it.note("added %s under %s", words[0], parent.Kind)
}

func (it *Model) commandSet(words []string) {
	node, ok := it.selected()
	if !ok {
		it.note("nothing selected")
		return
	}
	if len(words) == 0 {
		it.note("usage: set name=value ...")
		return
	}
	for _, word := range words {
		name, value, found := strings.Cut(word, "=")
		if !found {
			it.note("expected name=value, got %q", word)
			return
		}
		if err := it.session.SetProp(node.ID, name, value); err != nil {
			it.complain(err)
			return
		}
	}
	it.rebuildRows()
	it.note("updated %s", node.Kind)
}

// commandMove reparents the selection under the row at the given index,
// counting rows as shown in the tree pane.
func (it *Model) commandMove(words []string) {
	node, ok := it.selected()
	if !ok {
		it.note("nothing selected")
		return
	}
	if len(words) != 1 {
		it.note("usage: move <row>")
		return
	}
	at, err := strconv.Atoi(words[0])
	if err != nil || at < 0 || at >= len(it.rows) {
		it.note("no row %q", words[0])
		return
	}
	target := it.rows[at].node
	if target.ID == node.ID {
		it.note("cannot move a node under itself")
		return
	}
	if err := it.session.MoveNode(node.ID, target.ID); err != nil {
		it.complain(err)
		return
	}
	it.rebuildRows()
	it.note("moved %s under %s", node.Kind, target.Kind)
}

func (it *Model) commandPage(words []string) {
	if len(words) != 1 {
		it.note("usage: page <route>")
		return
	}
	if err := it.session.SelectRoute(words[0]); err != nil {
		it.complain(err)
		return
	}
	it.cursor = 0
	it.rebuildRows()
	it.note("page %s", it.page().Route)
}

func summarize(props map[string]interface{}) string {
	if len(props) == 0 {
		return ""
	}
	parts := []string{}
	for _, key := range set.Keys(props) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, props[key]))
	}
	return strings.Join(parts, " ")
}
