package journal_test

import (
	"testing"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/hamlet"
	"github.com/appdraft/appdraft/journal"
)

func TestJournalRecordsEdits(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	common.ForceHome(t.TempDir())
	t.Cleanup(func() { common.ForceHome("") })

	must.Equal("foo bar", journal.Unify("  foo  \t  \r\n   bar  "))

	must.Nil(journal.Post("demo", "page-add", "added page %q at %q", "Profile", "/profile"))
	events, err := journal.Events()
	must.Nil(err)
	wont.Nil(events)
	must.Equal(1, len(events))
	must.Equal("demo", events[0].Project)
	must.Equal("page-add", events[0].Event)
	must.Equal(`added page "Profile" at "/profile"`, events[0].Detail)

	must.Nil(journal.Post("demo", "component-add", "Text under Scaffold"))
	second, err := journal.Events()
	must.Nil(err)
	must.True(len(second) > len(events))
}

func TestEmptyJournalIsNotAnError(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	common.ForceHome(t.TempDir())
	t.Cleanup(func() { common.ForceHome("") })

	events, err := journal.Events()
	must.Nil(err)
	must.Equal(0, len(events))
}
