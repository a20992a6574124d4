package feature

import (
	"github.com/marketfy/storefront/internal/store"
)

// Toast is the thin convenience wrapper over the ui slice's toast queue.
type Toast struct {
	ui *store.UISlice
}

// NewToast creates the toast feature.
func NewToast(ui *store.UISlice) *Toast {
	return &Toast{ui: ui}
}

// Success shows a success toast.
func (t *Toast) Success(message string) { t.ui.ShowSuccess(message) }

// Error shows an error toast.
func (t *Toast) Error(message string) { t.ui.ShowError(message) }

// Warning shows a warning toast.
func (t *Toast) Warning(message string) { t.ui.ShowWarning(message) }

// Info shows an info toast.
func (t *Toast) Info(message string) { t.ui.ShowInfo(message) }
