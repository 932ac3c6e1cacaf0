// Package journal appends one JSON record per mutating editor action to a
// line-oriented file under the appdraft home, so a session's edit history
// can be inspected afterwards.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pathlib"
)

var (
	spacePattern = regexp.MustCompile(`\s+`)
	writeLock    sync.Mutex
)

type Entry struct {
	When    int64  `json:"when"`
	Project string `json:"project"`
	Event   string `json:"event"`
	Detail  string `json:"detail"`
}

// Unify collapses runs of whitespace so details stay one line.
func Unify(value string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(value, " "))
}

// Post appends one record. Journal trouble is never fatal to the edit
// itself; the error is for logging only.
func Post(projectName, event, form string, details ...interface{}) error {
	entry := Entry{
		When:    time.Now().Unix(),
		Project: projectName,
		Event:   event,
		Detail:  Unify(fmt.Sprintf(form, details...)),
	}
	blob, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	writeLock.Lock()
	defer writeLock.Unlock()
	if _, err := pathlib.EnsureParentDirectory(common.JournalFile()); err != nil {
		return err
	}
	handle, err := os.OpenFile(common.JournalFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}
	defer handle.Close()
	_, err = handle.Write(append(blob, '\n'))
	return err
}

// Events reads the whole journal back, oldest first. Unreadable lines are
// skipped, not fatal; the journal is advisory.
func Events() ([]Entry, error) {
	handle, err := os.Open(common.JournalFile())
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer handle.Close()
	result := []Entry{}
	scanner := bufio.NewScanner(handle)
	for scanner.Scan() {
		entry := Entry{}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			common.Debug("Skipping damaged journal line: %v", err)
			continue
		}
		result = append(result, entry)
	}
	return result, scanner.Err()
}
