package pretty

import (
	"fmt"
	"os"

	"github.com/appdraft/appdraft/common"
	"golang.org/x/term"
)

// Exit panics with an ExitCode; the matching ExitProtection in the main
// entrypoint converts it into a process exit after logs are flushed.
func Exit(code int, format string, rest ...interface{}) error {
	var message string
	if len(rest) > 0 {
		message = fmt.Sprintf(format, rest...)
	} else {
		message = format
	}
	panic(common.ExitCode{Code: code, Message: message})
}

// Guard is a guarded exit: when the condition does not hold, leave with
// the given exit code and message.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

func Ok() error {
	return Exit(0, "%s%sOK.%s", Sparkles, Green, Reset)
}

func Warning(format string, rest ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(format, rest...), Reset)
}

func Note(format string, rest ...interface{}) {
	common.Log("%s%sNote: %s%s", Bold, Cyan, fmt.Sprintf(format, rest...), Reset)
}

func Highlight(format string, rest ...interface{}) {
	common.Stdout("%s%s%s\n", Cyan, fmt.Sprintf(format, rest...), Reset)
}

func Regular(format string, rest ...interface{}) {
	common.Stdout("%s\n", fmt.Sprintf(format, rest...))
}

// Width reports the terminal width, or a conservative default when the
// output is not a terminal.
func Width() int {
	columns, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || columns < 20 {
		return 78
	}
	return columns
}

type ProgressIndicator interface {
	Start()
	Update(current int64, note string)
	Stop(success bool)
}

type progressBar struct {
	label   string
	total   int64
	last    int
	visible bool
}

func NewProgressBar(label string, total int64) ProgressIndicator {
	return &progressBar{label: label, total: total}
}

func (it *progressBar) Start() {
	it.visible = Interactive && it.total > 0
}

func (it *progressBar) Update(current int64, note string) {
	if !it.visible {
		return
	}
	percent := int(float64(current) / float64(it.total) * 100.0)
	if percent == it.last {
		return
	}
	it.last = percent
	common.Stdout("\r%s%s %3d%%%s ", Faint, it.label, percent, Reset)
}

func (it *progressBar) Stop(success bool) {
	if !it.visible {
		return
	}
	if success {
		common.Stdout("\r%s%s done.%s\n", Green, it.label, Reset)
	} else {
		common.Stdout("\r%s%s failed.%s\n", Red, it.label, Reset)
	}
}
