// Package scene tracks which level is active and which one the game loop
// should load next.
package scene

import (
	"errors"
	"fmt"
	"log"
)

var ErrNoScenes = errors.New("scene: no scenes")

// RequestKind says how the target scene was chosen.
type RequestKind int

const (
	RequestStart RequestKind = iota
	RequestNext
	RequestReload
)

func (k RequestKind) String() string {
	switch k {
	case RequestStart:
		return "start"
	case RequestNext:
		return "next"
	case RequestReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Request is a pending scene change resolved to a level index.
type Request struct {
	Kind  RequestKind
	Index int
	Name  string
}

// Loader records scene change requests. It does no IO itself: the game loop
// takes the pending request after the world update and rebuilds the level.
type Loader struct {
	names   []string
	current int
	pending *Request
	log     *log.Logger
}

// NewLoader creates a loader over the ordered scene names with start as the
// active index.
func NewLoader(names []string, start int) (*Loader, error) {
	if len(names) == 0 {
		return nil, ErrNoScenes
	}
	if start < 0 || start >= len(names) {
		return nil, fmt.Errorf("scene: start index %d out of range [0,%d)", start, len(names))
	}
	return &Loader{names: append([]string(nil), names...), current: start, log: log.Default()}, nil
}

// SetLogger redirects the loader's diagnostics. nil restores the default
// logger.
func (l *Loader) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	l.log = logger
}

// LoadStartScene requests the first scene.
func (l *Loader) LoadStartScene() {
	l.request(RequestStart, 0)
}

// LoadNextScene requests the scene after the current one, wrapping to the
// first after the last.
func (l *Loader) LoadNextScene() {
	l.request(RequestNext, (l.current+1)%len(l.names))
}

// ReloadCurrent requests the active scene again.
func (l *Loader) ReloadCurrent() {
	l.request(RequestReload, l.current)
}

func (l *Loader) request(kind RequestKind, index int) {
	req := &Request{Kind: kind, Index: index, Name: l.names[index]}
	if l.pending != nil {
		l.log.Printf("scene: %s request for %q replaces pending %s request", kind, req.Name, l.pending.Kind)
	}
	l.pending = req
}

// Take returns the most recent pending request, makes its scene current and
// clears it.
func (l *Loader) Take() (Request, bool) {
	if l.pending == nil {
		return Request{}, false
	}
	req := *l.pending
	l.pending = nil
	l.current = req.Index
	return req, true
}

func (l *Loader) Current() int {
	return l.current
}

func (l *Loader) CurrentName() string {
	return l.names[l.current]
}

func (l *Loader) Len() int {
	return len(l.names)
}

// IndexOf returns the index of name, or -1.
func (l *Loader) IndexOf(name string) int {
	for i, n := range l.names {
		if n == name {
			return i
		}
	}
	return -1
}
