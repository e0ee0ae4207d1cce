package output

import "github.com/seb/sebgrep/internal/matcher"

// Formatter renders one emitted line into bytes for output.
// buf is a reusable buffer — implementations append to it and return the
// result. Callers can pass buf[:0] to reuse the underlying array.
type Formatter interface {
	Format(buf []byte, line matcher.Line) []byte
}
