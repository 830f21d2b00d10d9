package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Toast is one emitted side-effect message.
type Toast struct {
	Title   string
	Message string
	// Success is true for success toasts, false for titled notification
	// toasts.
	Success bool
}

// Printer renders toasts to a writer as styled lines. It is the Toaster
// used by the CLI commands.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w; nil means stdout.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Success prints a success toast line.
func (p *Printer) Success(message string) {
	fmt.Fprintln(p.w, FormatSuccess(message))
}

// Show prints a titled notification toast.
func (p *Printer) Show(title, message string) {
	fmt.Fprintln(p.w, BellIcon+" "+BoldStyle.Render(title)+" "+SubtleStyle.Render(message))
}

// Recorder collects toasts instead of rendering them. The TUI drains it
// after each mutation to feed its status line; tests assert on it.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

// Success implements service.Toaster.
func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, Toast{Message: message, Success: true})
}

// Show implements service.Toaster.
func (r *Recorder) Show(title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, Toast{Title: title, Message: message})
}

// Drain returns all recorded toasts and clears the buffer.
func (r *Recorder) Drain() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.toasts
	r.toasts = nil
	return out
}
