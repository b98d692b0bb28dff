package status

import "sync/atomic"

// Label is an atomically replaced short string, such as the current state name
// Zero value is ready to use and reads as ""
type Label struct {
	ptr atomic.Pointer[string]
}

// Store replaces the label
func (l *Label) Store(val string) {
	l.ptr.Store(&val)
}

// Swap replaces the label and returns the previous value
func (l *Label) Swap(val string) string {
	if p := l.ptr.Swap(&val); p != nil {
		return *p
	}
	return ""
}

// Load returns the current label
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
