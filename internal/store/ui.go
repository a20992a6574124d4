package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/marketfy/storefront/internal/storage"
)

// Severity classifies a toast message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultToastDuration applies when a toast is added without one.
const DefaultToastDuration = 5 * time.Second

// Display themes persisted as the theme preference.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Toast is an ephemeral in-memory notification; the queue is append-only
// with removal by id.
type Toast struct {
	ID       string
	Message  string
	Severity Severity
	Duration time.Duration
}

// UIState is the ui slice snapshot.
type UIState struct {
	IsGlobalLoading bool
	Toasts          []Toast
	SidebarOpen     bool
	Theme           string
}

// UISlice holds cross-cutting presentation state. Purely synchronous. The
// theme preference survives restarts; everything else is session-scoped.
type UISlice struct {
	s     *sliceState[UIState]
	prefs storage.Store
}

func newUISlice(n *notifier, prefs storage.Store) *UISlice {
	initial := UIState{Theme: ThemeLight}
	if prefs != nil {
		if theme := prefs.GetString(storage.KeyTheme); theme != "" {
			initial.Theme = theme
		}
	}
	return &UISlice{s: newSliceState(n, initial), prefs: prefs}
}

// State returns the current snapshot.
func (u *UISlice) State() *UIState {
	return u.s.get()
}

// SetGlobalLoading flips the global busy indicator. Driven by the remote
// layer's in-flight counter.
func (u *UISlice) SetGlobalLoading(loading bool) {
	u.s.reduce(func(st UIState) UIState {
		st.IsGlobalLoading = loading
		return st
	})
}

// AddToast appends a toast, assigning an id and defaulting the duration.
// The assigned id is returned for later removal.
func (u *UISlice) AddToast(message string, severity Severity, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	toast := Toast{
		ID:       uuid.New().String(),
		Message:  message,
		Severity: severity,
		Duration: duration,
	}
	u.s.reduce(func(st UIState) UIState {
		toasts := make([]Toast, len(st.Toasts), len(st.Toasts)+1)
		copy(toasts, st.Toasts)
		st.Toasts = append(toasts, toast)
		return st
	})
	return toast.ID
}

// RemoveToast drops the toast with the given id; unknown ids are a no-op.
func (u *UISlice) RemoveToast(id string) {
	u.s.reduce(func(st UIState) UIState {
		toasts := make([]Toast, 0, len(st.Toasts))
		for _, t := range st.Toasts {
			if t.ID != id {
				toasts = append(toasts, t)
			}
		}
		st.Toasts = toasts
		return st
	})
}

// ClearToasts empties the queue.
func (u *UISlice) ClearToasts() {
	u.s.reduce(func(st UIState) UIState {
		st.Toasts = nil
		return st
	})
}

// ShowSuccess appends a success toast with the default duration.
func (u *UISlice) ShowSuccess(message string) string {
	return u.AddToast(message, SeveritySuccess, 0)
}

// ShowError appends an error toast with the default duration.
func (u *UISlice) ShowError(message string) string {
	return u.AddToast(message, SeverityError, 0)
}

// ShowWarning appends a warning toast with the default duration.
func (u *UISlice) ShowWarning(message string) string {
	return u.AddToast(message, SeverityWarning, 0)
}

// ShowInfo appends an info toast with the default duration.
func (u *UISlice) ShowInfo(message string) string {
	return u.AddToast(message, SeverityInfo, 0)
}

// SetTheme switches the display theme and persists the choice so it
// survives restarts.
func (u *UISlice) SetTheme(theme string) {
	if u.prefs != nil {
		u.prefs.SetString(storage.KeyTheme, theme)
	}
	u.s.reduce(func(st UIState) UIState {
		st.Theme = theme
		return st
	})
}

// ToggleTheme flips between the light and dark themes.
func (u *UISlice) ToggleTheme() {
	next := ThemeLight
	if u.State().Theme == ThemeLight {
		next = ThemeDark
	}
	u.SetTheme(next)
}

// ToggleSidebar flips the sidebar flag.
func (u *UISlice) ToggleSidebar() {
	u.s.reduce(func(st UIState) UIState {
		st.SidebarOpen = !st.SidebarOpen
		return st
	})
}

// SetSidebar sets the sidebar flag.
func (u *UISlice) SetSidebar(open bool) {
	u.s.reduce(func(st UIState) UIState {
		st.SidebarOpen = open
		return st
	})
}
