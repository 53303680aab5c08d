// Package uistate holds the cross-cutting UI state of a plume application:
// the active modal, the toast queue, the sidebar collapse flag and the theme
// mode. State changes only through the Store's action methods; readers get
// immutable snapshots. One Store exists per running app and is handed to the
// components that need it, never reached through package globals.
package uistate

import (
	"sync"
	"time"
)

// ModalKind names the dialog a modal hosts. The set is closed; presentation
// switches on it to pick a dialog body.
type ModalKind string

const (
	ModalNone          ModalKind = ""
	ModalCompose       ModalKind = "compose"
	ModalConfirmDelete ModalKind = "confirm-delete"
	ModalProfile       ModalKind = "profile"
	ModalHelp          ModalKind = "help"
)

// ModalState describes the at-most-one active overlay. Kind and SubjectID are
// meaningful only while Open is true; Close clears both so nothing stale
// survives a close/reopen cycle.
type ModalState struct {
	Open      bool
	Kind      ModalKind
	SubjectID string
}

// ThemeMode selects the active theme.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// UIState is the aggregate snapshot handed to readers.
type UIState struct {
	Modal            ModalState
	Toasts           []Toast
	SidebarCollapsed bool
	ThemeMode        ThemeMode
}

// Listener is notified with a fresh snapshot after every state change.
type Listener func(UIState)

// Store owns the UI state. Construct one with New, share the pointer, and
// mutate only through the action methods. Every action replaces the whole
// snapshot under the lock, so readers never observe a partial update.
type Store struct {
	mu        sync.Mutex
	state     UIState
	timers    map[string]*time.Timer
	listeners []Listener
}

// New creates a store with the startup defaults: modal closed, no toasts,
// sidebar expanded, light theme.
func New() *Store {
	return &Store{
		state:  UIState{ThemeMode: ThemeLight},
		timers: make(map[string]*time.Timer),
	}
}

// Subscribe registers a listener invoked after every state change. Listeners
// run outside the store lock and may call actions.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// State returns the current snapshot. The toast slice is copied, so callers
// can hold it across later actions.
func (s *Store) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Modal returns the current modal state.
func (s *Store) Modal() ModalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Modal
}

// Toasts returns the queue in display order.
func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyToasts(s.state.Toasts)
}

// SidebarCollapsed reports the sidebar flag.
func (s *Store) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SidebarCollapsed
}

// ThemeMode returns the active theme mode.
func (s *Store) ThemeMode() ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ThemeMode
}

// OpenModal opens a modal of the given kind, replacing any modal already
// open. subjectID ties the dialog to the record it acts on and may be empty.
func (s *Store) OpenModal(kind ModalKind, subjectID string) {
	s.mu.Lock()
	s.state.Modal = ModalState{Open: true, Kind: kind, SubjectID: subjectID}
	s.notifyLocked()
}

// CloseModal closes the modal and clears its kind and subject. Closing an
// already-closed modal leaves the state unchanged.
func (s *Store) CloseModal() {
	s.mu.Lock()
	if s.state.Modal == (ModalState{}) {
		s.mu.Unlock()
		return
	}
	s.state.Modal = ModalState{}
	s.notifyLocked()
}

// ShowToast appends a toast to the queue and returns its id. A positive
// duration schedules automatic dismissal; zero keeps the toast until
// DismissToast or ClearToasts removes it.
func (s *Store) ShowToast(message string, severity Severity, duration time.Duration) string {
	if severity == "" {
		severity = SeverityInfo
	}
	if duration < 0 {
		duration = 0
	}

	toast := Toast{
		ID:        newToastID(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.state.Toasts = append(copyToasts(s.state.Toasts), toast)
	if duration > 0 {
		id := toast.ID
		s.timers[id] = time.AfterFunc(duration, func() {
			s.DismissToast(id)
		})
	}
	s.notifyLocked()
	return toast.ID
}

// Notify shows a toast with the default duration.
func (s *Store) Notify(message string, severity Severity) string {
	return s.ShowToast(message, severity, DefaultToastDuration)
}

// DismissToast removes the toast with the given id. Dismissing an id that is
// no longer queued, including a late auto-dismiss for a toast already cleared,
// is a no-op.
func (s *Store) DismissToast(id string) {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	index := -1
	for i, toast := range s.state.Toasts {
		if toast.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return
	}

	remaining := make([]Toast, 0, len(s.state.Toasts)-1)
	remaining = append(remaining, s.state.Toasts[:index]...)
	remaining = append(remaining, s.state.Toasts[index+1:]...)
	s.state.Toasts = remaining
	s.notifyLocked()
}

// ClearToasts empties the queue and stops every pending auto-dismiss timer.
func (s *Store) ClearToasts() {
	s.mu.Lock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	if len(s.state.Toasts) == 0 {
		s.mu.Unlock()
		return
	}
	s.state.Toasts = nil
	s.notifyLocked()
}

// ToggleSidebar flips the sidebar collapse flag.
func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	s.state.SidebarCollapsed = !s.state.SidebarCollapsed
	s.notifyLocked()
}

// SetSidebarCollapsed sets the sidebar collapse flag.
func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.mu.Lock()
	s.state.SidebarCollapsed = collapsed
	s.notifyLocked()
}

// ToggleTheme flips between light and dark mode.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	if s.state.ThemeMode == ThemeDark {
		s.state.ThemeMode = ThemeLight
	} else {
		s.state.ThemeMode = ThemeDark
	}
	s.notifyLocked()
}

// SetThemeMode sets the theme mode explicitly.
func (s *Store) SetThemeMode(mode ThemeMode) {
	if mode != ThemeLight && mode != ThemeDark {
		return
	}
	s.mu.Lock()
	s.state.ThemeMode = mode
	s.notifyLocked()
}

// notifyLocked snapshots the state, releases the lock and fans the snapshot
// out to listeners. Callers must hold the lock.
func (s *Store) notifyLocked() {
	snapshot := s.snapshotLocked()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() UIState {
	snapshot := s.state
	snapshot.Toasts = copyToasts(s.state.Toasts)
	return snapshot
}

func copyToasts(toasts []Toast) []Toast {
	if len(toasts) == 0 {
		return nil
	}
	out := make([]Toast, len(toasts))
	copy(out, toasts)
	return out
}
