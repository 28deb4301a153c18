// Package router keeps a stack of screens and routes messages to the one
// on top. Screens navigate by emitting the *ScreenMsg messages below.
package router

import (
	"github.com/priyankc/mentora/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg asks the router to push Screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to discard the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg asks the router to swap the top screen for Screen
// without changing stack depth.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

type Router struct {
	stack []screen.Screen
}

// New creates a router with initial as its only screen.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

func (r *Router) top() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Push makes s the active screen and runs its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the active screen. The bottom screen is never popped.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the active screen for s and runs its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active returns the screen currently receiving messages.
func (r *Router) Active() screen.Screen {
	return r.top()
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update consumes navigation messages itself and forwards everything
// else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.top()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen at the given dimensions.
func (r *Router) View(width, height int) string {
	if active := r.top(); active != nil {
		return active.View(width, height)
	}
	return ""
}
