package stderr

import "sync"

// Shared guards a Logger with a mutex so it can be used from several
// goroutines. Each call holds the lock for the whole record, so output from
// different goroutines never interleaves within one record.
type Shared struct {
	mu sync.Mutex
	l  *Logger
}

// NewShared wraps l. The caller must not use l directly afterwards.
func NewShared(l *Logger) *Shared {
	return &Shared{l: l}
}

var (
	defaultOnce   sync.Once
	defaultShared *Shared
)

// Default returns the process-wide Shared logger, creating it from the
// environment on first use.
func Default() *Shared {
	defaultOnce.Do(func() {
		defaultShared = NewShared(New())
	})
	return defaultShared
}

// Do runs fn with exclusive access to the Logger. Trace scopes and
// confirmations that span several calls belong inside one Do.
func (s *Shared) Do(fn func(l *Logger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.l)
}

// Log writes msg at level.
func (s *Shared) Log(level Level, msg string) {
	s.Do(func(l *Logger) { l.Log(level, msg) })
}

func (s *Shared) Error(msg string)  { s.Log(LevelError, msg) }
func (s *Shared) Warn(msg string)   { s.Log(LevelWarn, msg) }
func (s *Shared) Info(msg string)   { s.Log(LevelInfo, msg) }
func (s *Shared) Okay(msg string)   { s.Log(LevelOkay, msg) }
func (s *Shared) Note(msg string)   { s.Log(LevelNote, msg) }
func (s *Shared) Debug(msg string)  { s.Log(LevelDebug, msg) }
func (s *Shared) Trace(msg string)  { s.Log(LevelTrace, msg) }
func (s *Shared) Magic(msg string)  { s.Log(LevelMagic, msg) }
func (s *Shared) Silly(msg string)  { s.Log(LevelSilly, msg) }
func (s *Shared) DevLog(msg string) { s.Log(LevelDevLog, msg) }

// TraceFn records a trace step under the lock.
func (s *Shared) TraceFn(name, msg string) (err error) {
	s.Do(func(l *Logger) { err = l.TraceFn(name, msg) })
	return err
}

// SetContext updates the context under the lock.
func (s *Shared) SetContext(ctx string) (err error) {
	s.Do(func(l *Logger) { err = l.SetContext(ctx) })
	return err
}
