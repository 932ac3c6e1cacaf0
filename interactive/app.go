package interactive

import (
	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/storage"
	tea "github.com/charmbracelet/bubbletea"
)

// logLine is a log message rerouted onto the status bar.
type logLine string

// Run opens the full screen editor on a stored project and saves any
// unsaved edits when the user leaves.
func Run(store *storage.Store, reg *catalog.Registry, name string) error {
	session, err := NewSession(store, reg, name)
	if err != nil {
		return err
	}
	program := tea.NewProgram(NewModel(session), tea.WithAltScreen())
	// While the editor owns the terminal, log lines land on the status bar
	// instead of tearing the screen.
	common.SetLogInterceptor(func(message string) bool {
		program.Send(logLine(message))
		return true
	})
	defer common.ClearLogInterceptor()
	if _, err := program.Run(); err != nil {
		return err
	}
	if session.Dirty() {
		return session.Save()
	}
	return nil
}
