package demo

import (
	"time"

	"github.com/laststance/plume/internal/uistate"
)

// StateChangedMsg wakes the program after an out-of-band store change, such
// as a toast auto-dismiss timer firing. The model reads the store directly,
// so the message only needs to trigger a re-render.
type StateChangedMsg struct {
	State uistate.UIState
}

// Post is one timeline entry. The feed is seeded in-memory; persistence is
// out of scope for the demo.
type Post struct {
	ID       string
	Author   string
	Handle   string
	Body     string
	Likes    int
	Liked    bool
	PostedAt time.Time
}

// navItems is the sidebar content; the demo only implements the timeline but
// renders the full navigation to exercise the collapsed state.
const (
	navHome = iota
	navMentions
	navBookmarks
	navSettings
)
