package toast

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestManager(opts ...Option) *Manager {
	return NewManager(append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func ids(toasts []Toast) []string {
	out := make([]string, len(toasts))
	for i, t := range toasts {
		out[i] = t.ID
	}
	return out
}

func TestManager_EndToEnd(t *testing.T) {
	m := newTestManager()

	id := m.Success("Saved", "")
	assert.Equal(t, "toast-0", id)

	toasts := m.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "toast-0", toasts[0].ID)
	assert.Equal(t, CategorySuccess, toasts[0].Category)
	assert.Equal(t, "Saved", toasts[0].Message)
	assert.Empty(t, toasts[0].Description)
	assert.Equal(t, 5000*time.Millisecond, toasts[0].Duration)

	id = m.Error("Failed", "disk full")
	assert.Equal(t, "toast-1", id)

	toasts = m.Toasts()
	require.Len(t, toasts, 2)
	assert.Equal(t, "toast-1", toasts[1].ID)
	assert.Equal(t, CategoryError, toasts[1].Category)
	assert.Equal(t, "Failed", toasts[1].Message)
	assert.Equal(t, "disk full", toasts[1].Description)
	assert.Equal(t, 7000*time.Millisecond, toasts[1].Duration)

	m.Remove("toast-0")
	assert.Equal(t, []string{"toast-1"}, ids(m.Toasts()))

	m.Remove("toast-0")
	assert.Equal(t, []string{"toast-1"}, ids(m.Toasts()))
}

func TestManager_Add_preserves_insertion_order(t *testing.T) {
	m := newTestManager()

	var want []string
	for i := range 20 {
		cat := Categories()[i%len(Categories())]
		want = append(want, m.Add(cat, fmt.Sprintf("msg %d", i)))
	}

	got := m.Toasts()
	assert.Equal(t, want, ids(got))
	for i, tt := range got {
		assert.Equal(t, fmt.Sprintf("msg %d", i), tt.Message)
	}
}

func TestManager_Add_ids_are_unique(t *testing.T) {
	m := newTestManager()
	seen := map[string]bool{}

	for range 50 {
		id := m.Info("x", "")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	// Removal never frees an identifier for reuse.
	m.Clear()
	id := m.Info("after clear", "")
	assert.False(t, seen[id])
	assert.Equal(t, "toast-50", id)
}

func TestManager_Add_independent_counters(t *testing.T) {
	a := newTestManager()
	b := newTestManager()

	assert.Equal(t, "toast-0", a.Info("a", ""))
	assert.Equal(t, "toast-1", a.Info("a", ""))
	assert.Equal(t, "toast-0", b.Info("b", ""))
}

func TestManager_Add_options(t *testing.T) {
	m := newTestManager()

	id := m.Add(CategoryWarning, "low disk", WithDescription("3% left"), WithDuration(0))

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, CategoryWarning, got.Category)
	assert.Equal(t, "3% left", got.Description)
	assert.Equal(t, time.Duration(0), got.Duration)
	assert.True(t, got.Persistent())
	assert.Equal(t, fixedNow, got.CreatedAt)
}

func TestManager_Add_default_duration(t *testing.T) {
	m := newTestManager()

	id := m.Add(CategoryInfo, "hello")

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, DefaultDuration, got.Duration)
	assert.False(t, got.Persistent())
}

func TestManager_Add_negative_duration_clamped(t *testing.T) {
	m := newTestManager()

	id := m.Add(CategoryInfo, "hello", WithDuration(-time.Second))

	got, _ := m.Get(id)
	assert.Equal(t, time.Duration(0), got.Duration)
}

func TestManager_Add_unknown_category_falls_back_to_info(t *testing.T) {
	m := newTestManager()

	id := m.Add(Category("fatal"), "boom")

	got, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, CategoryInfo, got.Category)
}

func TestManager_Helpers(t *testing.T) {
	tests := []struct {
		name     string
		add      func(m *Manager) string
		category Category
		duration time.Duration
	}{
		{"success", func(m *Manager) string { return m.Success("m", "d") }, CategorySuccess, 5 * time.Second},
		{"error", func(m *Manager) string { return m.Error("m", "d") }, CategoryError, 7 * time.Second},
		{"info", func(m *Manager) string { return m.Info("m", "d") }, CategoryInfo, 5 * time.Second},
		{"warning", func(m *Manager) string { return m.Warning("m", "d") }, CategoryWarning, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()

			id := tt.add(m)

			got, ok := m.Get(id)
			require.True(t, ok)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, "m", got.Message)
			assert.Equal(t, "d", got.Description)
			assert.Equal(t, tt.duration, got.Duration)
		})
	}
}

func TestManager_Helpers_configured_durations(t *testing.T) {
	m := newTestManager(WithDefaultDuration(2*time.Second), WithErrorDuration(10*time.Second))

	s, _ := m.Get(m.Success("s", ""))
	e, _ := m.Get(m.Error("e", ""))

	assert.Equal(t, 2*time.Second, s.Duration)
	assert.Equal(t, 10*time.Second, e.Duration)
}

func TestManager_Remove_present(t *testing.T) {
	m := newTestManager()
	a := m.Info("a", "")
	b := m.Info("b", "")
	c := m.Info("c", "")

	m.Remove(b)

	assert.Equal(t, []string{a, c}, ids(m.Toasts()))
	_, ok := m.Get(b)
	assert.False(t, ok)
}

func TestManager_Remove_absent_is_noop(t *testing.T) {
	m := newTestManager()
	m.Info("a", "")
	before := m.Toasts()

	calls := 0
	m.Subscribe(func([]Toast) { calls++ })

	assert.NotPanics(t, func() { m.Remove("toast-99") })
	assert.Equal(t, ids(before), ids(m.Toasts()))
	assert.Zero(t, calls, "no-op removal should not notify subscribers")
}

func TestManager_Remove_empty(t *testing.T) {
	m := newTestManager()
	assert.NotPanics(t, func() { m.Remove("toast-0") })
	assert.Zero(t, m.Len())
}

func TestToast_Dismiss(t *testing.T) {
	m := newTestManager()
	m.Info("keep", "")
	id := m.Warning("drop", "")

	got, ok := m.Get(id)
	require.True(t, ok)

	got.Dismiss()
	got.Dismiss()

	assert.Equal(t, []string{"toast-0"}, ids(m.Toasts()))
}

func TestToast_Dismiss_zero_value(t *testing.T) {
	assert.NotPanics(t, func() { Toast{ID: "toast-0"}.Dismiss() })
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager()
	m.Info("a", "")
	m.Info("b", "")

	m.Clear()

	assert.Zero(t, m.Len())
	assert.Empty(t, m.Toasts())
}

func TestManager_MaxToasts_evicts_oldest(t *testing.T) {
	m := newTestManager(WithMaxToasts(3))

	for i := range 5 {
		m.Info(fmt.Sprintf("%d", i), "")
	}

	assert.Equal(t, []string{"toast-2", "toast-3", "toast-4"}, ids(m.Toasts()))
}

func TestManager_Toasts_returns_copy(t *testing.T) {
	m := newTestManager()
	m.Info("original", "")

	snap := m.Toasts()
	snap[0].Message = "mutated"

	got, _ := m.Get("toast-0")
	assert.Equal(t, "original", got.Message)
}

func TestManager_Subscribe(t *testing.T) {
	m := newTestManager()

	var snapshots [][]string
	unsubscribe := m.Subscribe(func(toasts []Toast) {
		snapshots = append(snapshots, ids(toasts))
	})

	m.Success("a", "")
	m.Error("b", "")
	m.Remove("toast-0")
	m.Clear()

	unsubscribe()
	m.Info("c", "")

	assert.Equal(t, [][]string{
		{"toast-0"},
		{"toast-0", "toast-1"},
		{"toast-1"},
		{},
	}, snapshots)
}

func TestManager_Subscribe_callback_may_reenter(t *testing.T) {
	m := newTestManager()

	// Dismiss every warning as soon as it appears.
	m.Subscribe(func(toasts []Toast) {
		for _, t := range toasts {
			if t.Category == CategoryWarning {
				t.Dismiss()
			}
		}
	})

	m.Info("stay", "")
	m.Warning("go away", "")

	assert.Equal(t, []string{"toast-0"}, ids(m.Toasts()))
}

func TestManager_Subscribe_reentrant_change_reaches_later_subscribers_last(t *testing.T) {
	m := newTestManager()

	m.Subscribe(func(toasts []Toast) {
		for _, t := range toasts {
			if t.Category == CategoryWarning {
				t.Dismiss()
			}
		}
	})

	var first, second [][]string
	m.Subscribe(func(toasts []Toast) { first = append(first, ids(toasts)) })
	m.Subscribe(func(toasts []Toast) { second = append(second, ids(toasts)) })

	m.Warning("w", "")

	want := [][]string{{"toast-0"}, {}}
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
	assert.Equal(t, ids(m.Toasts()), second[len(second)-1])
}

func TestManager_Subscribe_reentrant_add_keeps_order(t *testing.T) {
	m := newTestManager()

	m.Subscribe(func(toasts []Toast) {
		if len(toasts) == 1 && toasts[0].Category == CategoryError {
			m.Info("follow-up", "")
		}
	})

	var seen [][]string
	m.Subscribe(func(toasts []Toast) { seen = append(seen, ids(toasts)) })

	m.Error("boom", "")

	assert.Equal(t, [][]string{
		{"toast-0"},
		{"toast-0", "toast-1"},
	}, seen)
}

func TestManager_Subscribe_recovers_after_panic(t *testing.T) {
	m := newTestManager()

	boom := true
	m.Subscribe(func([]Toast) {
		if boom {
			boom = false
			panic("subscriber failed")
		}
	})

	var seen [][]string
	m.Subscribe(func(toasts []Toast) { seen = append(seen, ids(toasts)) })

	assert.Panics(t, func() { m.Info("a", "") })

	m.Info("b", "")
	assert.Equal(t, [][]string{{"toast-0", "toast-1"}}, seen)
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("").Valid())
	assert.False(t, Category("debug").Valid())
}
