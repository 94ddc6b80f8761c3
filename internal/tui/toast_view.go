package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/toasts/internal/core/styles"
	"github.com/colonyops/toasts/internal/core/toast"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders the manager's toasts as a vertical stack.
type ToastView struct {
	manager    *toast.Manager
	controller *ToastController
}

func NewToastView(manager *toast.Manager, controller *ToastController) *ToastView {
	return &ToastView{manager: manager, controller: controller}
}

// View renders the toast stack, oldest at top and newest at bottom. Returns
// an empty string when there is nothing to show.
func (v *ToastView) View(width int) string {
	toasts := v.manager.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	w := toastWidth
	if width > 0 && width-2 < w {
		w = max(width-2, 10)
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, v.renderToast(t, w))
	}

	return strings.Join(rendered, "\n")
}

// Place right-aligns the toast stack within width.
func (v *ToastView) Place(width int) string {
	content := v.View(width)
	if content == "" {
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, content)
}

func (v *ToastView) renderToast(t toast.Toast, width int) string {
	icon, style := categoryStyle(t.Category)

	lines := []string{icon + " " + styles.ToastMessageStyle.Render(t.Message)}
	if t.Description != "" {
		lines = append(lines, styles.ToastDescriptionStyle.Render(t.Description))
	}
	lines = append(lines, styles.ToastMetaStyle.Render(v.meta(t)))

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (v *ToastView) meta(t toast.Toast) string {
	if t.Persistent() {
		return styles.IconPersistent + " " + t.ID + " · pinned"
	}
	left := t.Duration
	if v.controller != nil {
		if d, ok := v.controller.Remaining(t.ID); ok {
			left = d
		}
	}
	secs := int(math.Ceil(left.Seconds()))
	return fmt.Sprintf("%s · %ds", t.ID, secs)
}

func categoryStyle(c toast.Category) (string, lipgloss.Style) {
	switch c {
	case toast.CategorySuccess:
		return styles.IconToastSuccess, styles.ToastSuccessStyle
	case toast.CategoryError:
		return styles.IconToastError, styles.ToastErrorStyle
	case toast.CategoryWarning:
		return styles.IconToastWarning, styles.ToastWarningStyle
	default:
		return styles.IconToastInfo, styles.ToastInfoStyle
	}
}
