package bot

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Question creation walks through these steps in order. There is no
// branching: a bad reply keeps the pointer where it is.
const (
	StepQuestion = iota
	StepOptions
	StepCorrectAnswer
	StepSelectGroup
)

// Draft is an in-progress question owned by a single user.
type Draft struct {
	Step          int
	Text          string
	Options       []string
	CorrectOption int
}

// Drafts expire on their own; an abandoned conversation needs no cleanup.
var drafts = cache.New(30*time.Minute, 5*time.Minute)

// SetDraftTTL replaces the draft cache with one using the given lifetime.
// Called once at startup, before any updates are handled.
func SetDraftTTL(ttl time.Duration) {
	drafts = cache.New(ttl, ttl)
}

func startDraft(userID int64) *Draft {
	d := &Draft{Step: StepQuestion}
	drafts.SetDefault(draftKey(userID), d)
	return d
}

func getDraft(userID int64) (*Draft, bool) {
	val, ok := drafts.Get(draftKey(userID))
	if !ok {
		return nil, false
	}
	d, ok := val.(*Draft)
	return d, ok
}

// saveDraft re-stores the draft, which also refreshes its lifetime.
func saveDraft(userID int64, d *Draft) {
	drafts.SetDefault(draftKey(userID), d)
}

func dropDraft(userID int64) {
	drafts.Delete(draftKey(userID))
}

func draftKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
