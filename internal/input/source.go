package input

import (
	"bufio"
	"io"
)

// Source is a named, forward-only stream of text lines. Content is read
// lazily and incrementally; the underlying reader is owned by the
// Source until Close.
type Source struct {
	Name string

	r      *bufio.Reader
	closer io.Closer
	closed bool
}

// NewSource wraps rc as a line source displayed under name.
func NewSource(name string, rc io.ReadCloser) *Source {
	return &Source{
		Name:   name,
		r:      bufio.NewReaderSize(rc, 64*1024),
		closer: rc,
	}
}

// ReadLine returns the next raw line including its trailing terminator.
// The last line of a stream with no terminator is returned as-is with
// err == io.EOF; callers must process text before inspecting err.
func (s *Source) ReadLine() (string, error) {
	return s.r.ReadString('\n')
}

// Close releases the underlying reader. Safe to call more than once;
// only the first call closes.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.closer.Close()
}
