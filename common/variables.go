package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	AppdraftHomeVariable     = `APPDRAFT_HOME`
	AppdraftEndpointVariable = `APPDRAFT_ENDPOINT`
	defaultHomeLocation      = "~/.appdraft"
)

var (
	Version        = `v0.9.1`
	When           int64
	Clock          *stopwatch
	LogLinenumbers bool
	LogHides       []string

	debugFlag  bool
	traceFlag  bool
	silentFlag bool
	forcedHome string
)

func init() {
	Clock = &stopwatch{"Clock", time.Now()}
	When = Clock.started.Unix()
}

func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = debug
	traceFlag = trace
}

// DefineLogFilter shapes the log stream: numbered lines, and suppression
// of lines containing any of the comma separated fragments.
func DefineLogFilter(linenumbers bool, hides string) {
	LogLinenumbers = linenumbers
	LogHides = nil
	for _, fragment := range strings.Split(hides, ",") {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) > 0 {
			LogHides = append(LogHides, fragment)
		}
	}
}

func DebugFlag() bool {
	return debugFlag || traceFlag
}

func TraceFlag() bool {
	return traceFlag
}

func Silent() bool {
	return silentFlag
}

func ForceHome(value string) {
	forcedHome = value
}

// Home is where appdraft keeps its settings, journal, and project store.
// Resolution order: --home flag, APPDRAFT_HOME variable, ~/.appdraft.
func Home() string {
	if len(forcedHome) > 0 {
		return ExpandPath(forcedHome)
	}
	if home := os.Getenv(AppdraftHomeVariable); len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func SettingsFile() string {
	return filepath.Join(Home(), "appdraft.json")
}

func JournalFile() string {
	return filepath.Join(Home(), "journal.jsonl")
}

func StoreFile() string {
	return filepath.Join(Home(), "projects.db")
}

func ExpandPath(entry string) string {
	if len(entry) > 0 && entry[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			entry = filepath.Join(home, entry[1:])
		}
	}
	result, err := filepath.Abs(entry)
	if err != nil {
		return entry
	}
	return result
}

func UserAgent() string {
	return fmt.Sprintf("appdraft/%s", Version)
}
