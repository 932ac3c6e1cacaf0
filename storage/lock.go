package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pathlib"
	"github.com/mitchellh/go-ps"
)

// claimLock writes a pid lockfile next to the store. A lockfile whose
// holder is no longer running is stale and gets reclaimed; a live holder
// produces a friendly refusal instead of a bbolt timeout.
func claimLock() (func(), error) {
	lockfile := filepath.Join(common.Home(), "editor.lock")
	if holder, held := lockHolder(lockfile); held {
		return nil, fmt.Errorf("another appdraft instance (pid %d) is using %q", holder, common.Home())
	}
	err := pathlib.WriteFile(lockfile, []byte(strconv.Itoa(os.Getpid())), 0o640)
	if err != nil {
		return nil, err
	}
	common.Trace("Claimed editor lock %q", lockfile)
	return func() {
		common.Error("lock.release", os.Remove(lockfile))
	}, nil
}

func lockHolder(lockfile string) (int, bool) {
	blob, err := os.ReadFile(lockfile)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(blob)))
	if err != nil || pid == os.Getpid() {
		return 0, false
	}
	process, err := ps.FindProcess(pid)
	if err != nil || process == nil {
		common.Debug("Reclaiming stale editor lock from pid %d.", pid)
		return 0, false
	}
	return pid, true
}
