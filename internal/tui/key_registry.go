package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Label       string
	Handler     KeyHandler
	Description string
	Screens     []Screen
	Priority    int
}

func (b KeyBinding) AppliesTo(s Screen) bool {
	if len(b.Screens) == 0 {
		return true
	}
	for _, v := range b.Screens {
		if v == s {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesTo(m.screen) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(s Screen) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(s) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(s Screen) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(s) {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		label := b.Label
		if label == "" {
			label = b.Keys[0]
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Keys:     []string{"ctrl+c"},
		Handler:  handleQuit,
		Priority: 100,
	})
	r.Register(KeyBinding{
		Keys:        []string{"q"},
		Handler:     handleQuit,
		Description: "quit",
		Priority:    90,
	})
	r.Register(KeyBinding{
		Keys:        []string{"enter", " "},
		Label:       "enter",
		Handler:     handleStart,
		Description: "start",
		Screens:     []Screen{ScreenIntro},
	})
	r.Register(KeyBinding{
		Keys:        []string{" ", "p"},
		Label:       "space",
		Handler:     handleTogglePause,
		Description: "pause/resume",
		Screens:     []Screen{ScreenRoutine},
	})
	r.Register(KeyBinding{
		Keys:        []string{"n", "right"},
		Label:       "n",
		Handler:     handleSkip,
		Description: "skip",
		Screens:     []Screen{ScreenRoutine},
	})
	r.Register(KeyBinding{
		Keys:        []string{"esc"},
		Handler:     handleAbandon,
		Description: "back",
		Screens:     []Screen{ScreenRoutine},
	})
	r.Register(KeyBinding{
		Keys:        []string{"r", "enter"},
		Label:       "r",
		Handler:     handleRestart,
		Description: "again",
		Screens:     []Screen{ScreenEnd},
	})
	r.Register(KeyBinding{
		Keys:        []string{"c"},
		Handler:     handleCelebrate,
		Description: "confetti",
		Screens:     []Screen{ScreenEnd},
	})
	return r
}
