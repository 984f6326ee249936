package stderr

import "iter"

// ListSeq writes bullet items from seq as they arrive, one write per item.
// It stops at the first write error. In quiet mode seq is still drained so
// a producer feeding it is not left blocked.
func (l *Logger) ListSeq(seq iter.Seq[string], bullet string) error {
	var streamErr error
	seq(func(item string) bool {
		if l.cfg.Quiet {
			return true
		}
		if err := l.sink.write(bullet + " " + item + "\n"); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// ListChan writes bullet items received from ch until it is closed.
// It is a thin wrapper around [Logger.ListSeq].
func (l *Logger) ListChan(ch <-chan string, bullet string) error {
	return l.ListSeq(chanToIter(ch), bullet)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
